// internal/core/services/report.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

const (
	summaryKey   = "summary"
	valuationKey = "valuation"
)

// ReportService serves sales and inventory aggregates through the cache
type ReportService struct {
	repo   ports.ReportRepository
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(repo ports.ReportRepository, cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *ReportService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "report")),
	}
}

// SalesSummary aggregates sale events in the optional date range
func (s *ReportService) SalesSummary(ctx context.Context, params domain.SaleListParams) (*domain.SalesSummary, error) {
	fetch := func() (interface{}, error) {
		return s.repo.SalesSummary(ctx, params)
	}
	if s.cache == nil {
		v, err := fetch()
		if err != nil {
			return nil, fmt.Errorf("failed to load sales summary: %w", err)
		}
		return v.(*domain.SalesSummary), nil
	}

	var summary domain.SalesSummary
	key := ports.CacheKey(ports.CachePrefixReports, summaryKey, dateKey(params.From), dateKey(params.To))
	if err := s.cache.GetOrSet(ctx, key, &summary, fetch, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to load sales summary: %w", err)
	}
	return &summary, nil
}

// InventoryValuation sums stock on hand at cost
func (s *ReportService) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	fetch := func() (interface{}, error) {
		return s.repo.InventoryValuation(ctx)
	}
	if s.cache == nil {
		v, err := fetch()
		if err != nil {
			return nil, fmt.Errorf("failed to load inventory valuation: %w", err)
		}
		return v.(*domain.InventoryValuation), nil
	}

	var valuation domain.InventoryValuation
	key := ports.CacheKey(ports.CachePrefixReports, valuationKey)
	if err := s.cache.GetOrSet(ctx, key, &valuation, fetch, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to load inventory valuation: %w", err)
	}
	return &valuation, nil
}

// Refresh recomputes the all-time summary and the valuation and overwrites
// their cache entries.
func (s *ReportService) Refresh(ctx context.Context) error {
	summary, err := s.repo.SalesSummary(ctx, domain.SaleListParams{})
	if err != nil {
		return fmt.Errorf("failed to refresh sales summary: %w", err)
	}
	valuation, err := s.repo.InventoryValuation(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh inventory valuation: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, ports.CacheKey(ports.CachePrefixReports, summaryKey, dateKey(nil), dateKey(nil)), summary, s.ttl); err != nil {
			return fmt.Errorf("failed to cache sales summary: %w", err)
		}
		if err := s.cache.SetWithTTL(ctx, ports.CacheKey(ports.CachePrefixReports, valuationKey), valuation, s.ttl); err != nil {
			return fmt.Errorf("failed to cache inventory valuation: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "refreshed reports",
		slog.Int64("sale_count", summary.SaleCount),
		slog.String("total_profit_loss", summary.TotalProfitLoss.StringFixed(2)))
	return nil
}

func dateKey(t *time.Time) string {
	if t == nil {
		return "any"
	}
	return t.Format(domain.SaleDateLayout)
}
