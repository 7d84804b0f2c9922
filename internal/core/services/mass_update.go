// internal/core/services/mass_update.go
package services

import (
	"context"
	"log/slog"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

// MassUpdateService is the mass adjustment engine
type MassUpdateService struct {
	repo    ports.MassUpdateRepository
	cache   ports.CacheRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ ports.MassUpdateService = (*MassUpdateService)(nil)

// NewMassUpdateService creates a new mass update service
func NewMassUpdateService(repo ports.MassUpdateRepository, cache ports.CacheRepository, m *metrics.Metrics, logger *slog.Logger) *MassUpdateService {
	return &MassUpdateService{
		repo:    repo,
		cache:   cache,
		metrics: m,
		logger:  logger.With(slog.String("service", "mass_update")),
	}
}

// MassUpdate validates the request against the field allow-list, then
// applies one bulk UPDATE per affected collection in a single transaction.
func (s *MassUpdateService) MassUpdate(ctx context.Context, req domain.MassUpdateRequest) (*domain.MassUpdateResult, error) {
	plans, err := domain.BuildMassUpdatePlans(req)
	if err != nil {
		return nil, err
	}

	perTable, err := s.repo.Apply(ctx, plans)
	if err != nil {
		s.logger.ErrorContext(ctx, "mass update rolled back",
			slog.String("kind", string(domain.KindOf(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	var total int64
	for _, n := range perTable {
		total += n
	}

	s.metrics.MassUpdated(perTable)
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, ports.CacheKey(ports.CachePrefixReports, "*")); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate report cache",
				slog.String("error", err.Error()))
		}
	}

	result := &domain.MassUpdateResult{
		Updated:  total,
		PerTable: perTable,
		Message:  domain.MassUpdateMessage(plans, perTable),
		Plans:    plans,
	}

	s.logger.InfoContext(ctx, "mass update completed",
		slog.Int64("updated", total),
		slog.Int("tables", len(plans)))

	return result, nil
}
