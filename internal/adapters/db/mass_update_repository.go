// internal/adapters/db/mass_update_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// massUpdateRepository implements ports.MassUpdateRepository
type massUpdateRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewMassUpdateRepository creates a new mass update repository
func NewMassUpdateRepository(db *Database, logger *slog.Logger) ports.MassUpdateRepository {
	return &massUpdateRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "mass_update")),
	}
}

// Apply runs one UPDATE per plan inside a single transaction. Any failure
// rolls back every table.
func (r *massUpdateRepository) Apply(ctx context.Context, plans []domain.MassUpdatePlan) (map[string]int64, error) {
	perTable := make(map[string]int64, len(plans))

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, plan := range plans {
			query, args, err := BuildMassUpdate(plan)
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", plan.Kind.Table(), err)
			}
			perTable[plan.Kind.Table()] = tag.RowsAffected()

			r.logger.DebugContext(ctx, "mass update applied",
				slog.String("table", plan.Kind.Table()),
				slog.Int64("rows", tag.RowsAffected()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return perTable, nil
}

// massTextColumns are searched by the free-text filter, per collection
var massTextColumns = map[domain.LotKind][]string{
	domain.LotKindCard:   {"name", "set_code", "location", "collector_number", "rarity", "language"},
	domain.LotKindSealed: {"product_name", "set_name", "location", "product_type", "language"},
	domain.LotKindSupply: {"supply_name", "description", "location", "unit_of_measure"},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsMatch is a case-insensitive substring predicate on col. The
// LIKE wildcards in s match literally.
func containsMatch(col, s string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER("+col+") LIKE ? ESCAPE '\\'",
		"%"+likeEscaper.Replace(strings.ToLower(s))+"%")
}

// BuildMassUpdate renders one plan as a parameterized UPDATE. Only
// in-stock rows are touched.
func BuildMassUpdate(plan domain.MassUpdatePlan) (string, []any, error) {
	kind := plan.Kind
	if kind.Table() == "" {
		return "", nil, domain.ValidationErrorf("Invalid item type specified for mass update.")
	}
	if len(plan.Assignments) == 0 {
		return "", nil, domain.ValidationErrorf("No update fields provided.")
	}

	q := psql.Update(kind.Table())
	for _, a := range plan.Assignments {
		if a.Percentage {
			q = q.Set(a.Column, squirrel.Expr(
				fmt.Sprintf("ROUND(COALESCE(%s, 0) * (1 + ?::numeric / 100.0), 2)", a.Column), a.Value))
			continue
		}
		q = q.Set(a.Column, a.Value)
	}
	q = q.Set("last_updated", squirrel.Expr("CURRENT_TIMESTAMP"))

	where, err := massUpdateWhere(kind, plan.Filter)
	if err != nil {
		return "", nil, err
	}
	return q.Where(where).ToSql()
}

func massUpdateWhere(kind domain.LotKind, f domain.MassUpdateFilter) (squirrel.And, error) {
	where := squirrel.And{}

	if text := strings.TrimSpace(f.Text); text != "" {
		or := squirrel.Or{}
		for _, col := range massTextColumns[kind] {
			or = append(or, containsMatch(col, text))
		}
		where = append(where, or)
	}
	if domain.IsFilterSet(f.Location) {
		where = append(where, squirrel.Expr("LOWER(location) = LOWER(?)", f.Location))
	}

	switch kind {
	case domain.LotKindCard:
		if domain.IsFilterSet(f.Set) {
			where = append(where, squirrel.Expr("LOWER(set_code) = LOWER(?)", f.Set))
		}
		if domain.IsFilterSet(f.Foil) {
			foil, err := domain.ParseYesNo(f.Foil)
			if err != nil {
				return nil, err
			}
			where = append(where, squirrel.Eq{"is_foil": foil})
		}
		if domain.IsFilterSet(f.Rarity) {
			where = append(where, squirrel.Expr("LOWER(rarity) = LOWER(?)", f.Rarity))
		}
		if domain.IsFilterSet(f.CardLang) {
			where = append(where, squirrel.Expr("LOWER(language) = LOWER(?)", f.CardLang))
		}
		if domain.IsFilterSet(f.Condition) {
			where = append(where, squirrel.Expr("LOWER(condition) = LOWER(?)", f.Condition))
		}
	case domain.LotKindSealed:
		if domain.IsFilterSet(f.Set) {
			where = append(where, squirrel.Expr("LOWER(set_name) = LOWER(?)", f.Set))
		}
		if domain.IsFilterSet(f.Collector) {
			collector, err := domain.ParseYesNo(f.Collector)
			if err != nil {
				return nil, err
			}
			where = append(where, squirrel.Eq{"is_collectors_item": collector})
		}
		if domain.IsFilterSet(f.SealedLang) {
			where = append(where, squirrel.Expr("LOWER(language) = LOWER(?)", f.SealedLang))
		}
	}

	where = append(where, squirrel.Gt{kind.QuantityColumn(): 0})
	return where, nil
}
