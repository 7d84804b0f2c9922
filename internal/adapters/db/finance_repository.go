// internal/adapters/db/finance_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// financeRepository implements ports.FinanceRepository
type financeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewFinanceRepository creates a new financial entry repository
func NewFinanceRepository(db *Database, logger *slog.Logger) ports.FinanceRepository {
	return &financeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "finance")),
	}
}

func (r *financeRepository) Create(ctx context.Context, entry *domain.FinancialEntry) error {
	return classify(insertFinancialEntry(ctx, r.db.Pool(), entry))
}

func insertFinancialEntry(ctx context.Context, q querier, entry *domain.FinancialEntry) error {
	err := q.QueryRow(ctx, `
		INSERT INTO financial_entries (entry_date, description, category, entry_type, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, date_recorded`,
		entry.EntryDate, entry.Description, entry.Category, string(entry.EntryType), entry.Amount, entry.Notes,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert financial entry: %w", err)
	}
	return nil
}

// List returns entries in the optional date range, newest first
func (r *financeRepository) List(ctx context.Context, params domain.SaleListParams) ([]domain.FinancialEntry, error) {
	q := psql.Select("id", "entry_date", "description", "category", "entry_type", "amount", "notes", "date_recorded").
		From("financial_entries").
		OrderBy("entry_date DESC", "id DESC")
	if params.From != nil {
		q = q.Where(squirrel.GtOrEq{"entry_date": *params.From})
	}
	if params.To != nil {
		q = q.Where(squirrel.LtOrEq{"entry_date": *params.To})
	}
	if params.Limit > 0 {
		q = q.Limit(uint64(params.Limit)).Offset(uint64(params.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to list financial entries: %w", err))
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FinancialEntry, error) {
		var (
			e         domain.FinancialEntry
			entryType string
		)
		err := row.Scan(&e.ID, &e.EntryDate, &e.Description, &e.Category, &entryType, &e.Amount, &e.Notes, &e.CreatedAt)
		e.EntryType = domain.EntryType(entryType)
		return e, err
	})
	if err != nil {
		return nil, classify(fmt.Errorf("failed to scan financial entries: %w", err))
	}
	return entries, nil
}

func (r *financeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM financial_entries WHERE id = $1", id)
	if err != nil {
		return classify(fmt.Errorf("failed to delete financial entry: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, "Financial entry %d not found.", id)
	}
	return nil
}
