// internal/core/ports/lot_repository.go
package ports

import (
	"context"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

// LotRepository defines the persistence port for the three inventory collections
type LotRepository interface {
	// Upsert merges quantity into the lot with identical identity
	// attributes, or inserts a new lot.
	Upsert(ctx context.Context, lot domain.Lot) (domain.UpsertResult, error)
	// AddSupplyBatch upserts the supply lot and records its expense in one transaction.
	AddSupplyBatch(ctx context.Context, supply *domain.ShippingSupply, entry *domain.FinancialEntry) (domain.UpsertResult, error)
	FindByRef(ctx context.Context, ref domain.LotRef) (domain.Lot, error)
	List(ctx context.Context, params domain.LotListParams) ([]domain.Lot, int64, error)
	Delete(ctx context.Context, ref domain.LotRef) error
}

// MassUpdateRepository applies mass update plans in a single transaction
// and returns rows affected per table.
type MassUpdateRepository interface {
	Apply(ctx context.Context, plans []domain.MassUpdatePlan) (map[string]int64, error)
}

// PresetRepository persists shipping supply presets
type PresetRepository interface {
	Create(ctx context.Context, preset *domain.SupplyPreset) error
	FindByID(ctx context.Context, id int64) (*domain.SupplyPreset, error)
	List(ctx context.Context) ([]domain.SupplyPreset, error)
	Delete(ctx context.Context, id int64) error
}

// FinanceRepository persists manual and automatic financial entries
type FinanceRepository interface {
	Create(ctx context.Context, entry *domain.FinancialEntry) error
	List(ctx context.Context, params domain.SaleListParams) ([]domain.FinancialEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ReportRepository computes read-only aggregates
type ReportRepository interface {
	SalesSummary(ctx context.Context, params domain.SaleListParams) (*domain.SalesSummary, error)
	InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error)
}
