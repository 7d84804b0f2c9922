package db_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

func TestBuildMassUpdate(t *testing.T) {
	tests := []struct {
		name     string
		plan     domain.MassUpdatePlan
		wantSQL  string
		wantArgs []any
		wantErr  domain.ErrorKind
	}{
		{
			name: "card_location_with_set_filter",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKindCard,
				Assignments: []domain.Assignment{{Column: "location", Value: "Binder 2"}},
				Filter:      domain.MassUpdateFilter{Set: "MH3"},
			},
			wantSQL: "UPDATE cards SET location = $1, last_updated = CURRENT_TIMESTAMP " +
				"WHERE (LOWER(set_code) = LOWER($2) AND quantity > $3)",
			wantArgs: []any{"Binder 2", "MH3", 0},
		},
		{
			name: "sealed_percentage_change",
			plan: domain.MassUpdatePlan{
				Kind: domain.LotKindSealed,
				Assignments: []domain.Assignment{
					{Column: "sell_price", Value: decimal.NewFromInt(10), Percentage: true},
				},
			},
			wantSQL: "UPDATE sealed_products SET sell_price = ROUND(COALESCE(sell_price, 0) * (1 + $1::numeric / 100.0), 2), " +
				"last_updated = CURRENT_TIMESTAMP WHERE (quantity > $2)",
			wantArgs: []any{decimal.NewFromInt(10), 0},
		},
		{
			name: "supply_text_filter",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKindSupply,
				Assignments: []domain.Assignment{{Column: "location", Value: "Shelf"}},
				Filter:      domain.MassUpdateFilter{Text: " Mailer "},
			},
			wantSQL: "UPDATE shipping_supplies_inventory SET location = $1, last_updated = CURRENT_TIMESTAMP " +
				"WHERE ((LOWER(supply_name) LIKE $2 ESCAPE '\\' OR LOWER(description) LIKE $3 ESCAPE '\\' " +
				"OR LOWER(location) LIKE $4 ESCAPE '\\' OR LOWER(unit_of_measure) LIKE $5 ESCAPE '\\') " +
				"AND quantity_on_hand > $6)",
			wantArgs: []any{"Shelf", "%mailer%", "%mailer%", "%mailer%", "%mailer%", 0},
		},
		{
			name: "text_filter_wildcards_match_literally",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKindSupply,
				Assignments: []domain.Assignment{{Column: "location", Value: "Shelf"}},
				Filter:      domain.MassUpdateFilter{Text: `100%_Recycled\`},
			},
			wantSQL: "UPDATE shipping_supplies_inventory SET location = $1, last_updated = CURRENT_TIMESTAMP " +
				"WHERE ((LOWER(supply_name) LIKE $2 ESCAPE '\\' OR LOWER(description) LIKE $3 ESCAPE '\\' " +
				"OR LOWER(location) LIKE $4 ESCAPE '\\' OR LOWER(unit_of_measure) LIKE $5 ESCAPE '\\') " +
				"AND quantity_on_hand > $6)",
			wantArgs: []any{"Shelf",
				`%100\%\_recycled\\%`, `%100\%\_recycled\\%`, `%100\%\_recycled\\%`, `%100\%\_recycled\\%`, 0},
		},
		{
			name: "card_foil_filter",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKindCard,
				Assignments: []domain.Assignment{{Column: "condition", Value: "LP"}},
				Filter:      domain.MassUpdateFilter{Foil: "yes", Location: "all"},
			},
			wantSQL: "UPDATE cards SET condition = $1, last_updated = CURRENT_TIMESTAMP " +
				"WHERE (is_foil = $2 AND quantity > $3)",
			wantArgs: []any{"LP", true, 0},
		},
		{
			name: "rejects_bad_foil_flag",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKindCard,
				Assignments: []domain.Assignment{{Column: "condition", Value: "LP"}},
				Filter:      domain.MassUpdateFilter{Foil: "maybe"},
			},
			wantErr: domain.KindValidation,
		},
		{
			name:    "rejects_empty_assignments",
			plan:    domain.MassUpdatePlan{Kind: domain.LotKindCard},
			wantErr: domain.KindValidation,
		},
		{
			name: "rejects_unknown_kind",
			plan: domain.MassUpdatePlan{
				Kind:        domain.LotKind("weapons"),
				Assignments: []domain.Assignment{{Column: "location", Value: "x"}},
			},
			wantErr: domain.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := db.BuildMassUpdate(tt.plan)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, domain.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
