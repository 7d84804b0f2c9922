// internal/core/services/lot.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// LotService handles stock-in and lot browsing
type LotService struct {
	repo     ports.LotRepository
	resolver ports.CardResolver
	cache    ports.CacheRepository
	logger   *slog.Logger
}

var _ ports.LotService = (*LotService)(nil)

// NewLotService creates a new lot service. resolver and cache may be nil.
func NewLotService(repo ports.LotRepository, resolver ports.CardResolver, cache ports.CacheRepository, logger *slog.Logger) *LotService {
	return &LotService{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		logger:   logger.With(slog.String("service", "lot")),
	}
}

// UpsertLot stocks a lot: identical identity attributes merge quantity
// into the existing row, anything else inserts a new lot.
func (s *LotService) UpsertLot(ctx context.Context, lot domain.Lot) (domain.UpsertResult, error) {
	if lot == nil {
		return domain.UpsertResult{}, domain.ValidationErrorf("Lot is required.")
	}
	if card, ok := lot.(*domain.Card); ok && card.Name == "" {
		s.resolveCard(ctx, card)
	}

	domain.NormalizeLot(lot)
	if err := lot.Validate(); err != nil {
		return domain.UpsertResult{}, domain.WrapError(domain.KindValidation, err, "validation failed: %s", err)
	}
	if lot.Quantity() <= 0 {
		return domain.UpsertResult{}, domain.ValidationErrorf("Quantity must be a positive integer.")
	}

	res, err := s.repo.Upsert(ctx, lot)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("failed to stock lot: %w", err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "stocked lot",
		slog.String("ref", res.Ref.String()),
		slog.Bool("merged", res.Merged),
		slog.Int("quantity", res.Quantity))

	return res, nil
}

// AddSupplyBatch stocks a supply purchase and records its expense
func (s *LotService) AddSupplyBatch(ctx context.Context, batch *domain.SupplyBatch) (domain.UpsertResult, error) {
	if batch == nil {
		return domain.UpsertResult{}, domain.ValidationErrorf("Supply batch is required.")
	}
	supply, entry, err := batch.ToSupply()
	if err != nil {
		return domain.UpsertResult{}, err
	}

	res, err := s.repo.AddSupplyBatch(ctx, supply, entry)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("failed to add supply batch: %w", err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "added shipping supply batch",
		slog.String("ref", res.Ref.String()),
		slog.String("cost_per_unit", supply.CostPerUnit.StringFixed(2)),
		slog.Int("quantity", batch.Quantity))

	return res, nil
}

// GetLot retrieves one lot
func (s *LotService) GetLot(ctx context.Context, ref domain.LotRef) (domain.Lot, error) {
	lot, err := s.repo.FindByRef(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}
	return lot, nil
}

// ListLots lists lots of one kind
func (s *LotService) ListLots(ctx context.Context, params domain.LotListParams) ([]domain.Lot, int64, error) {
	if params.Kind.Table() == "" {
		return nil, 0, domain.ValidationErrorf("Invalid item type '%s'.", params.Kind)
	}
	params.Limit = domain.PageLimit(params.Limit)
	params.Offset = max(params.Offset, 0)
	lots, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list lots: %w", err)
	}
	return lots, total, nil
}

// DeleteLot removes a lot. Sale line items keep their snapshot; a supply
// still referenced by a sale cannot be removed.
func (s *LotService) DeleteLot(ctx context.Context, ref domain.LotRef) error {
	if err := s.repo.Delete(ctx, ref); err != nil {
		return fmt.Errorf("failed to delete lot: %w", err)
	}

	s.invalidate(ctx)
	s.logger.InfoContext(ctx, "deleted lot", slog.String("ref", ref.String()))
	return nil
}

func (s *LotService) resolveCard(ctx context.Context, card *domain.Card) {
	if s.resolver == nil {
		return
	}
	meta, err := s.resolver.Lookup(ctx, domain.CardLookup{SetCode: card.SetCode, CollectorNumber: card.CollectorNumber})
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "card lookup failed",
				slog.String("set_code", card.SetCode),
				slog.String("collector_number", card.CollectorNumber),
				slog.String("error", err.Error()))
		}
		return
	}
	meta.ApplyTo(card)
}

func (s *LotService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, ports.CacheKey(ports.CachePrefixReports, "*")); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate report cache",
			slog.String("error", err.Error()))
	}
}
