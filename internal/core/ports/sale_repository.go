// internal/core/ports/sale_repository.go
package ports

import (
	"context"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

// SaleRepository is the persistence port of the sale engine. Every
// mutation runs inside WithinTx; the callback's error rolls everything back.
type SaleRepository interface {
	WithinTx(ctx context.Context, fn func(tx SaleTx) error) error
	GetSaleEvent(ctx context.Context, id int64) (*domain.SaleEvent, error)
	ListSaleEvents(ctx context.Context, params domain.SaleListParams) ([]domain.SaleEvent, int64, error)
}

// SaleTx exposes the statements the sale engine composes inside one
// transaction.
type SaleTx interface {
	// LockLots takes FOR UPDATE locks in domain.CompareLotRefs order and
	// returns the current rows. Missing lots are absent from the map.
	LockLots(ctx context.Context, refs []domain.LotRef) (map[domain.LotRef]domain.Lot, error)
	SaveLotQuantity(ctx context.Context, lot domain.Lot) error

	InsertSaleEvent(ctx context.Context, event *domain.SaleEvent) error
	InsertSupplyUsage(ctx context.Context, usage *domain.SaleSupplyUsage) error
	InsertLineItem(ctx context.Context, item *domain.SaleLineItem) error
	UpdateSaleEvent(ctx context.Context, event *domain.SaleEvent) error

	// LockSaleEvent locks the event and its child rows and loads them.
	// Returns a KindNotFound error when the event does not exist.
	LockSaleEvent(ctx context.Context, id int64) (*domain.SaleEvent, error)
	DeleteSaleLines(ctx context.Context, eventID int64) error
	DeleteSaleEvent(ctx context.Context, id int64) error
}
