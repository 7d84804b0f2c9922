// internal/core/services/catalog.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// PresetService manages shipping supply presets
type PresetService struct {
	repo   ports.PresetRepository
	lots   ports.LotRepository
	logger *slog.Logger
}

var _ ports.PresetService = (*PresetService)(nil)

// NewPresetService creates a new preset service
func NewPresetService(repo ports.PresetRepository, lots ports.LotRepository, logger *slog.Logger) *PresetService {
	return &PresetService{
		repo:   repo,
		lots:   lots,
		logger: logger.With(slog.String("service", "preset")),
	}
}

// CreatePreset stores a preset after checking every supply exists
func (s *PresetService) CreatePreset(ctx context.Context, preset *domain.SupplyPreset) error {
	if preset == nil {
		return domain.ValidationErrorf("Preset is required.")
	}
	if err := preset.Validate(); err != nil {
		return err
	}

	for i, item := range preset.Items {
		lot, err := s.lots.FindByRef(ctx, domain.LotRef{Kind: domain.LotKindSupply, ID: item.SupplyID})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrLotNotFound) {
				return domain.NewError(domain.KindLotNotFound, "Shipping supply %d not found.", item.SupplyID)
			}
			return fmt.Errorf("failed to check supply %d: %w", item.SupplyID, err)
		}
		preset.Items[i].SupplyName = lot.DisplayName()
	}

	if err := s.repo.Create(ctx, preset); err != nil {
		return fmt.Errorf("failed to create preset: %w", err)
	}

	s.logger.InfoContext(ctx, "created shipping supply preset",
		slog.Int64("preset_id", preset.ID),
		slog.String("name", preset.Name),
		slog.Int("items", len(preset.Items)))
	return nil
}

func (s *PresetService) GetPreset(ctx context.Context, id int64) (*domain.SupplyPreset, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PresetService) ListPresets(ctx context.Context) ([]domain.SupplyPreset, error) {
	return s.repo.List(ctx)
}

func (s *PresetService) DeletePreset(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	s.logger.InfoContext(ctx, "deleted shipping supply preset", slog.Int64("preset_id", id))
	return nil
}

// FinanceService manages manual financial entries
type FinanceService struct {
	repo   ports.FinanceRepository
	logger *slog.Logger
}

var _ ports.FinanceService = (*FinanceService)(nil)

// NewFinanceService creates a new finance service
func NewFinanceService(repo ports.FinanceRepository, logger *slog.Logger) *FinanceService {
	return &FinanceService{
		repo:   repo,
		logger: logger.With(slog.String("service", "finance")),
	}
}

// AddEntry validates and stores an entry
func (s *FinanceService) AddEntry(ctx context.Context, entry *domain.FinancialEntry) error {
	if entry == nil {
		return domain.ValidationErrorf("Financial entry is required.")
	}
	if entry.EntryDate.IsZero() {
		entry.EntryDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if err := entry.Validate(); err != nil {
		return domain.WrapError(domain.KindValidation, err, "validation failed: %s", err)
	}
	entry.Amount = entry.Amount.Round(2)

	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to add financial entry: %w", err)
	}

	s.logger.InfoContext(ctx, "added financial entry",
		slog.Int64("entry_id", entry.ID),
		slog.String("entry_type", string(entry.EntryType)),
		slog.String("amount", entry.Amount.StringFixed(2)))
	return nil
}

func (s *FinanceService) ListEntries(ctx context.Context, params domain.SaleListParams) ([]domain.FinancialEntry, error) {
	return s.repo.List(ctx, params)
}

func (s *FinanceService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete financial entry: %w", err)
	}
	return nil
}
