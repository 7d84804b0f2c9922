// internal/adapters/db/lot_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// lotRepository implements ports.LotRepository
type lotRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLotRepository creates a new lot repository
func NewLotRepository(db *Database, logger *slog.Logger) ports.LotRepository {
	return &lotRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "lot")),
	}
}

// Upsert inserts the lot or merges its quantity into the row with the same
// identity attributes. xmax = 0 distinguishes a fresh insert.
func (r *lotRepository) Upsert(ctx context.Context, lot domain.Lot) (domain.UpsertResult, error) {
	res, err := upsertLot(ctx, r.db.Pool(), lot)
	if err != nil {
		return domain.UpsertResult{}, classify(err)
	}

	r.logger.DebugContext(ctx, "lot upserted",
		slog.String("ref", res.Ref.String()),
		slog.Bool("merged", res.Merged))
	return res, nil
}

// AddSupplyBatch upserts the supply and records its purchase expense together
func (r *lotRepository) AddSupplyBatch(ctx context.Context, supply *domain.ShippingSupply, entry *domain.FinancialEntry) (domain.UpsertResult, error) {
	var res domain.UpsertResult
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var err error
		if res, err = upsertLot(ctx, tx, supply); err != nil {
			return err
		}
		return insertFinancialEntry(ctx, tx, entry)
	})
	if err != nil {
		return domain.UpsertResult{}, err
	}
	return res, nil
}

func upsertLot(ctx context.Context, q querier, lot domain.Lot) (domain.UpsertResult, error) {
	var (
		query string
		args  []any
	)

	switch l := lot.(type) {
	case *domain.Card:
		query = `
			INSERT INTO cards (
				set_code, collector_number, name, quantity, buy_price, is_foil,
				market_price_usd, foil_market_price_usd, image_uri, sell_price,
				location, rarity, language, condition, scryfall_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT ON CONSTRAINT cards_identity_key DO UPDATE SET
				quantity = cards.quantity + EXCLUDED.quantity,
				market_price_usd = COALESCE(EXCLUDED.market_price_usd, cards.market_price_usd),
				foil_market_price_usd = COALESCE(EXCLUDED.foil_market_price_usd, cards.foil_market_price_usd),
				sell_price = COALESCE(EXCLUDED.sell_price, cards.sell_price),
				image_uri = COALESCE(NULLIF(EXCLUDED.image_uri, ''), cards.image_uri),
				scryfall_id = COALESCE(NULLIF(EXCLUDED.scryfall_id, ''), cards.scryfall_id),
				last_updated = CURRENT_TIMESTAMP
			RETURNING id, quantity, (xmax <> 0)`
		args = []any{
			l.SetCode, l.CollectorNumber, l.Name, l.Qty, l.BuyPrice, l.IsFoil,
			toNull(l.MarketPriceUSD), toNull(l.FoilMarketPriceUSD), l.ImageURI, toNull(l.SellPrice),
			l.Location, l.Rarity, l.Language, l.Condition, l.ScryfallID,
		}
	case *domain.SealedProduct:
		query = `
			INSERT INTO sealed_products (
				product_name, set_name, product_type, language, is_collectors_item,
				quantity, buy_price, manual_market_price, sell_price, image_uri, location
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT ON CONSTRAINT sealed_products_identity_key DO UPDATE SET
				quantity = sealed_products.quantity + EXCLUDED.quantity,
				manual_market_price = COALESCE(EXCLUDED.manual_market_price, sealed_products.manual_market_price),
				sell_price = COALESCE(EXCLUDED.sell_price, sealed_products.sell_price),
				image_uri = COALESCE(NULLIF(EXCLUDED.image_uri, ''), sealed_products.image_uri),
				last_updated = CURRENT_TIMESTAMP
			RETURNING id, quantity, (xmax <> 0)`
		args = []any{
			l.ProductName, l.SetName, l.ProductType, l.Language, l.IsCollectorsItem,
			l.Qty, l.BuyPrice, toNull(l.ManualMarketPrice), toNull(l.SellPrice), l.ImageURI, l.Location,
		}
	case *domain.ShippingSupply:
		query = `
			INSERT INTO shipping_supplies_inventory (
				supply_name, description, unit_of_measure, purchase_date,
				quantity_on_hand, cost_per_unit, location
			) VALUES ($1, $2, $3, COALESCE($4, CURRENT_DATE), $5, $6, $7)
			ON CONFLICT ON CONSTRAINT shipping_supplies_identity_key DO UPDATE SET
				quantity_on_hand = shipping_supplies_inventory.quantity_on_hand + EXCLUDED.quantity_on_hand,
				purchase_date = GREATEST(shipping_supplies_inventory.purchase_date, EXCLUDED.purchase_date),
				last_updated = CURRENT_TIMESTAMP
			RETURNING id, quantity_on_hand, (xmax <> 0)`
		args = []any{
			l.SupplyName, l.Description, l.UnitOfMeasure, l.PurchaseDate,
			l.Qty, l.CostPerUnit, l.Location,
		}
	default:
		return domain.UpsertResult{}, domain.ValidationErrorf("Unsupported lot type %T.", lot)
	}

	var res domain.UpsertResult
	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id, &res.Quantity, &res.Merged); err != nil {
		return domain.UpsertResult{}, fmt.Errorf("failed to upsert %s: %w", lot.Kind().Table(), err)
	}
	res.Ref = domain.LotRef{Kind: lot.Kind(), ID: id}
	return res, nil
}

// FindByRef loads one lot
func (r *lotRepository) FindByRef(ctx context.Context, ref domain.LotRef) (domain.Lot, error) {
	if ref.Kind.Table() == "" {
		return nil, domain.ValidationErrorf("Invalid item type '%s'.", ref.Kind)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectList(ref.Kind), ref.Kind.Table())
	lot, err := scanLot(ref.Kind, r.db.QueryRow(ctx, query, ref.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindLotNotFound, "Inventory item not found: %s id %d.", ref.Kind, ref.ID)
		}
		return nil, classify(fmt.Errorf("failed to get %s: %w", ref, err))
	}
	return lot, nil
}

var lotSearchColumns = map[domain.LotKind][]string{
	domain.LotKindCard:   {"name", "set_code", "collector_number"},
	domain.LotKindSealed: {"product_name", "set_name", "product_type"},
	domain.LotKindSupply: {"supply_name", "description"},
}

var lotSortColumns = map[domain.LotKind]map[string]string{
	domain.LotKindCard: {
		"name": "name", "set_code": "set_code", "quantity": "quantity",
		"buy_price": "buy_price", "date_added": "date_added", "market_price": "market_price_usd",
	},
	domain.LotKindSealed: {
		"name": "product_name", "set_name": "set_name", "quantity": "quantity",
		"buy_price": "buy_price", "date_added": "date_added",
	},
	domain.LotKindSupply: {
		"name": "supply_name", "quantity": "quantity_on_hand",
		"cost_per_unit": "cost_per_unit", "date_added": "date_added",
	},
}

// listQuery builds the filtered listing of one collection
func listQuery(params domain.LotListParams) squirrel.SelectBuilder {
	kind := params.Kind
	q := psql.Select(selectList(kind)).From(kind.Table())
	return q.Where(lotFilter(params))
}

func lotFilter(params domain.LotListParams) squirrel.And {
	kind := params.Kind
	where := squirrel.And{}
	if s := strings.TrimSpace(params.Search); s != "" {
		or := squirrel.Or{}
		for _, col := range lotSearchColumns[kind] {
			or = append(or, containsMatch(col, s))
		}
		where = append(where, or)
	}
	if loc := strings.TrimSpace(params.Location); loc != "" {
		where = append(where, squirrel.Expr("LOWER(location) = LOWER(?)", loc))
	}
	if params.InStock {
		where = append(where, squirrel.Gt{kind.QuantityColumn(): 0})
	}
	return where
}

// List returns one page of lots and the total matching count
func (r *lotRepository) List(ctx context.Context, params domain.LotListParams) ([]domain.Lot, int64, error) {
	kind := params.Kind
	if kind.Table() == "" {
		return nil, 0, domain.ValidationErrorf("Invalid item type '%s'.", kind)
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From(kind.Table()).Where(lotFilter(params)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, classify(fmt.Errorf("failed to count %s: %w", kind.Table(), err))
	}

	sortCol, ok := lotSortColumns[kind][params.SortBy]
	if !ok {
		sortCol = "id"
	}
	order := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") {
		order = "DESC"
	}

	query, args, err := listQuery(params).
		OrderBy(sortCol+" "+order, "id "+order).
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(fmt.Errorf("failed to list %s: %w", kind.Table(), err))
	}
	defer rows.Close()

	lots := make([]domain.Lot, 0, params.Limit)
	for rows.Next() {
		lot, err := scanLot(kind, rows)
		if err != nil {
			return nil, 0, classify(fmt.Errorf("failed to scan %s row: %w", kind.Table(), err))
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify(err)
	}

	return lots, total, nil
}

// Delete removes a lot. A supply still referenced by a sale usage is
// rejected by the foreign key.
func (r *lotRepository) Delete(ctx context.Context, ref domain.LotRef) error {
	if ref.Kind.Table() == "" {
		return domain.ValidationErrorf("Invalid item type '%s'.", ref.Kind)
	}
	tag, err := r.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", ref.Kind.Table()), ref.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to delete %s: %w", ref, err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindLotNotFound, "Inventory item not found: %s id %d.", ref.Kind, ref.ID)
	}
	return nil
}
