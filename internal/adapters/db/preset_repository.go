// internal/adapters/db/preset_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// presetRepository implements ports.PresetRepository
type presetRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPresetRepository creates a new shipping supply preset repository
func NewPresetRepository(db *Database, logger *slog.Logger) ports.PresetRepository {
	return &presetRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "preset")),
	}
}

// Create stores the preset and its items in one transaction
func (r *presetRepository) Create(ctx context.Context, preset *domain.SupplyPreset) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO shipping_supply_presets (name, description)
			VALUES ($1, $2)
			RETURNING id, date_created`,
			preset.Name, preset.Description,
		).Scan(&preset.ID, &preset.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert preset: %w", err)
		}

		batch := &pgx.Batch{}
		for _, item := range preset.Items {
			batch.Queue(`INSERT INTO shipping_preset_items (preset_id, supply_id, quantity) VALUES ($1, $2, $3)`,
				preset.ID, item.SupplyID, item.Quantity)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert preset items: %w", err)
		}
		return nil
	})
}

func (r *presetRepository) FindByID(ctx context.Context, id int64) (*domain.SupplyPreset, error) {
	var p domain.SupplyPreset
	err := r.db.QueryRow(ctx,
		"SELECT id, name, description, date_created FROM shipping_supply_presets WHERE id = $1", id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, "Shipping supply preset %d not found.", id)
		}
		return nil, classify(fmt.Errorf("failed to get preset: %w", err))
	}

	items, err := r.items(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	p.Items = items[id]
	return &p, nil
}

func (r *presetRepository) List(ctx context.Context) ([]domain.SupplyPreset, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, description, date_created FROM shipping_supply_presets ORDER BY name")
	if err != nil {
		return nil, classify(fmt.Errorf("failed to list presets: %w", err))
	}
	presets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SupplyPreset, error) {
		var p domain.SupplyPreset
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, classify(fmt.Errorf("failed to scan presets: %w", err))
	}

	ids := make([]int64, len(presets))
	for i := range presets {
		ids[i] = presets[i].ID
	}
	items, err := r.items(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range presets {
		presets[i].Items = items[presets[i].ID]
	}
	return presets, nil
}

func (r *presetRepository) items(ctx context.Context, presetIDs []int64) (map[int64][]domain.SupplyPresetItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pi.preset_id, pi.supply_id, pi.quantity, s.supply_name
		FROM shipping_preset_items pi
		JOIN shipping_supplies_inventory s ON s.id = pi.supply_id
		WHERE pi.preset_id = ANY($1)
		ORDER BY pi.preset_id, pi.id`, presetIDs)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to load preset items: %w", err))
	}
	defer rows.Close()

	out := make(map[int64][]domain.SupplyPresetItem, len(presetIDs))
	for rows.Next() {
		var (
			presetID int64
			item     domain.SupplyPresetItem
		)
		if err := rows.Scan(&presetID, &item.SupplyID, &item.Quantity, &item.SupplyName); err != nil {
			return nil, classify(fmt.Errorf("failed to scan preset item: %w", err))
		}
		out[presetID] = append(out[presetID], item)
	}
	return out, classify(rows.Err())
}

func (r *presetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM shipping_supply_presets WHERE id = $1", id)
	if err != nil {
		return classify(fmt.Errorf("failed to delete preset: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, "Shipping supply preset %d not found.", id)
	}
	return nil
}
