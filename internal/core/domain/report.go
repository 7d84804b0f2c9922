// internal/core/domain/report.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates sale events over a date range
type SalesSummary struct {
	From              *time.Time      `json:"from,omitempty"`
	To                *time.Time      `json:"to,omitempty"`
	SaleCount         int64           `json:"sale_count"`
	ItemsSold         int64           `json:"items_sold"`
	Revenue           decimal.Decimal `json:"revenue"`
	ItemsProfitLoss   decimal.Decimal `json:"items_profit_loss"`
	ShippingCollected decimal.Decimal `json:"shipping_collected"`
	ShippingSpent     decimal.Decimal `json:"shipping_spent"`
	SuppliesCost      decimal.Decimal `json:"supplies_cost"`
	PlatformFees      decimal.Decimal `json:"platform_fees"`
	TotalProfitLoss   decimal.Decimal `json:"total_profit_loss"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// KindValuation is the stock on hand of one collection
type KindValuation struct {
	Kind      LotKind         `json:"kind"`
	Lots      int64           `json:"lots"`
	Units     int64           `json:"units"`
	CostBasis decimal.Decimal `json:"cost_basis"`
}

// InventoryValuation is stock on hand across every collection
type InventoryValuation struct {
	Kinds       []KindValuation `json:"kinds"`
	TotalUnits  int64           `json:"total_units"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	GeneratedAt time.Time       `json:"generated_at"`
}
