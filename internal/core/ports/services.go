// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

// SaleService is the sale transaction engine
type SaleService interface {
	RecordSale(ctx context.Context, req *domain.SaleRequest) (*domain.SaleResult, error)
	DeleteSale(ctx context.Context, id int64) (*domain.SaleResult, error)
	EditSale(ctx context.Context, id int64, req *domain.SaleRequest) (*domain.SaleResult, error)
	GetSale(ctx context.Context, id int64) (*domain.SaleEvent, error)
	ListSales(ctx context.Context, params domain.SaleListParams) ([]domain.SaleEvent, int64, error)
}

// LotService stocks and browses inventory lots
type LotService interface {
	UpsertLot(ctx context.Context, lot domain.Lot) (domain.UpsertResult, error)
	AddSupplyBatch(ctx context.Context, batch *domain.SupplyBatch) (domain.UpsertResult, error)
	GetLot(ctx context.Context, ref domain.LotRef) (domain.Lot, error)
	ListLots(ctx context.Context, params domain.LotListParams) ([]domain.Lot, int64, error)
	DeleteLot(ctx context.Context, ref domain.LotRef) error
}

// MassUpdateService is the mass adjustment engine
type MassUpdateService interface {
	MassUpdate(ctx context.Context, req domain.MassUpdateRequest) (*domain.MassUpdateResult, error)
}

// PresetService manages shipping supply presets
type PresetService interface {
	CreatePreset(ctx context.Context, preset *domain.SupplyPreset) error
	GetPreset(ctx context.Context, id int64) (*domain.SupplyPreset, error)
	ListPresets(ctx context.Context) ([]domain.SupplyPreset, error)
	DeletePreset(ctx context.Context, id int64) error
}

// FinanceService manages financial entries
type FinanceService interface {
	AddEntry(ctx context.Context, entry *domain.FinancialEntry) error
	ListEntries(ctx context.Context, params domain.SaleListParams) ([]domain.FinancialEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// ReportService serves cached read models
type ReportService interface {
	SalesSummary(ctx context.Context, params domain.SaleListParams) (*domain.SalesSummary, error)
	InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error)
	Refresh(ctx context.Context) error
}
