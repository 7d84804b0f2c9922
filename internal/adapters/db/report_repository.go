// internal/adapters/db/report_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// reportRepository computes read-only aggregates over database/sql
type reportRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewReportRepository creates a reporting repository. Pass Database.SQLDB().
func NewReportRepository(db *sql.DB, logger *slog.Logger) ports.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "report")),
	}
}

const salesSummaryQuery = `
	SELECT
		COUNT(*),
		COALESCE(SUM(items.sold), 0),
		COALESCE(SUM(items.revenue), 0),
		COALESCE(SUM(items.profit_loss), 0),
		COALESCE(SUM(e.customer_shipping_charge), 0),
		COALESCE(SUM(e.total_shipping_cost), 0),
		COALESCE(SUM(e.total_supplies_cost), 0),
		COALESCE(SUM(e.platform_fee), 0),
		COALESCE(SUM(e.total_profit_loss), 0)
	FROM sale_events e
	LEFT JOIN LATERAL (
		SELECT
			SUM(si.quantity_sold) AS sold,
			SUM(si.sell_price_per_item * si.quantity_sold) AS revenue,
			SUM(si.item_profit_loss) AS profit_loss
		FROM sale_items si
		WHERE si.sale_event_id = e.id
	) items ON TRUE
	WHERE ($1::date IS NULL OR e.sale_date >= $1::date)
	  AND ($2::date IS NULL OR e.sale_date <= $2::date)`

// SalesSummary aggregates sale events in the optional date range
func (r *reportRepository) SalesSummary(ctx context.Context, params domain.SaleListParams) (*domain.SalesSummary, error) {
	summary := &domain.SalesSummary{From: params.From, To: params.To}

	err := r.db.QueryRowContext(ctx, salesSummaryQuery, nullDate(params.From), nullDate(params.To)).Scan(
		&summary.SaleCount,
		&summary.ItemsSold,
		&summary.Revenue,
		&summary.ItemsProfitLoss,
		&summary.ShippingCollected,
		&summary.ShippingSpent,
		&summary.SuppliesCost,
		&summary.PlatformFees,
		&summary.TotalProfitLoss,
	)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to compute sales summary: %w", err))
	}

	summary.GeneratedAt = time.Now().UTC()
	return summary, nil
}

const valuationQuery = `
	SELECT 'card', COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * buy_price), 0)
	FROM cards WHERE quantity > 0
	UNION ALL
	SELECT 'sealed_product', COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(quantity * buy_price), 0)
	FROM sealed_products WHERE quantity > 0
	UNION ALL
	SELECT 'shipping_supply', COUNT(*), COALESCE(SUM(quantity_on_hand), 0), COALESCE(SUM(quantity_on_hand * cost_per_unit), 0)
	FROM shipping_supplies_inventory WHERE quantity_on_hand > 0`

// InventoryValuation sums stock on hand at cost per collection
func (r *reportRepository) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	rows, err := r.db.QueryContext(ctx, valuationQuery)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to compute inventory valuation: %w", err))
	}
	defer rows.Close()

	valuation := &domain.InventoryValuation{TotalCost: decimal.Zero}
	for rows.Next() {
		var (
			kv   domain.KindValuation
			kind string
		)
		if err := rows.Scan(&kind, &kv.Lots, &kv.Units, &kv.CostBasis); err != nil {
			return nil, classify(fmt.Errorf("failed to scan valuation row: %w", err))
		}
		kv.Kind = domain.LotKind(kind)
		valuation.Kinds = append(valuation.Kinds, kv)
		valuation.TotalUnits += kv.Units
		valuation.TotalCost = valuation.TotalCost.Add(kv.CostBasis)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	valuation.GeneratedAt = time.Now().UTC()
	return valuation, nil
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
