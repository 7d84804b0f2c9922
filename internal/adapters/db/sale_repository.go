// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const saleEventColumns = `id, sale_date, total_shipping_cost, customer_shipping_charge,
	platform_fee, total_supplies_cost, total_profit_loss, notes, date_recorded`

const saleItemColumns = `id, sale_event_id, inventory_item_id, item_type, original_item_name,
	original_item_details, quantity_sold, sell_price_per_item, buy_price_per_item, item_profit_loss`

const saleSupplyColumns = `id, sale_event_id, supply_id, quantity_used, cost_per_unit_snapshot,
	supply_name_snapshot, supply_description_snapshot`

// querier is satisfied by both the pool and a transaction
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sale")),
	}
}

// WithinTx runs fn in one READ COMMITTED transaction with the configured
// lock timeout. Any error from fn rolls everything back.
func (r *saleRepository) WithinTx(ctx context.Context, fn func(tx ports.SaleTx) error) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(&saleTx{tx: tx, logger: r.logger})
	})
}

// GetSaleEvent loads an event with its line items and supply usages
func (r *saleRepository) GetSaleEvent(ctx context.Context, id int64) (*domain.SaleEvent, error) {
	event, err := loadSaleEvent(ctx, r.db.Pool(), id, false)
	if err != nil {
		return nil, classify(err)
	}
	return event, nil
}

// ListSaleEvents pages through events, newest first. Child rows are not loaded.
func (r *saleRepository) ListSaleEvents(ctx context.Context, params domain.SaleListParams) ([]domain.SaleEvent, int64, error) {
	where := squirrel.And{}
	if params.From != nil {
		where = append(where, squirrel.GtOrEq{"sale_date": *params.From})
	}
	if params.To != nil {
		where = append(where, squirrel.LtOrEq{"sale_date": *params.To})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("sale_events").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, classify(fmt.Errorf("failed to count sale events: %w", err))
	}

	query, args, err := psql.Select(saleEventColumns).
		From("sale_events").
		Where(where).
		OrderBy("sale_date DESC", "id DESC").
		Limit(uint64(params.Limit)).
		Offset(uint64(params.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classify(fmt.Errorf("failed to list sale events: %w", err))
	}
	defer rows.Close()

	events := make([]domain.SaleEvent, 0, params.Limit)
	for rows.Next() {
		event, err := scanSaleEvent(rows)
		if err != nil {
			return nil, 0, classify(fmt.Errorf("failed to scan sale event: %w", err))
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, classify(err)
	}

	return events, total, nil
}

// saleTx implements ports.SaleTx over one pgx transaction
type saleTx struct {
	tx     pgx.Tx
	logger *slog.Logger
}

// LockLots locks rows table by table in lock order, ids ascending within
// each table.
func (t *saleTx) LockLots(ctx context.Context, refs []domain.LotRef) (map[domain.LotRef]domain.Lot, error) {
	refs = domain.SortedUniqueRefs(refs)
	lots := make(map[domain.LotRef]domain.Lot, len(refs))

	for start := 0; start < len(refs); {
		kind := refs[start].Kind
		end := start
		ids := make([]int64, 0, len(refs)-start)
		for end < len(refs) && refs[end].Kind == kind {
			ids = append(ids, refs[end].ID)
			end++
		}

		query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1) ORDER BY id FOR UPDATE",
			selectList(kind), kind.Table())
		rows, err := t.tx.Query(ctx, query, ids)
		if err != nil {
			return nil, classify(fmt.Errorf("failed to lock %s: %w", kind.Table(), err))
		}
		for rows.Next() {
			lot, err := scanLot(kind, rows)
			if err != nil {
				rows.Close()
				return nil, classify(fmt.Errorf("failed to scan %s row: %w", kind.Table(), err))
			}
			lots[lot.Ref()] = lot
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, classify(err)
		}

		start = end
	}

	t.logger.DebugContext(ctx, "locked lots",
		slog.Int("requested", len(refs)),
		slog.Int("found", len(lots)))

	return lots, nil
}

// SaveLotQuantity writes back the lot's current quantity
func (t *saleTx) SaveLotQuantity(ctx context.Context, lot domain.Lot) error {
	kind := lot.Kind()
	query := fmt.Sprintf("UPDATE %s SET %s = $1, last_updated = CURRENT_TIMESTAMP WHERE id = $2",
		kind.Table(), kind.QuantityColumn())
	tag, err := t.tx.Exec(ctx, query, lot.Quantity(), lot.Ref().ID)
	if err != nil {
		return classify(fmt.Errorf("failed to update %s quantity: %w", kind.Table(), err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindLotNotFound, "Inventory item not found: %s id %d.", kind, lot.Ref().ID)
	}
	return nil
}

func (t *saleTx) InsertSaleEvent(ctx context.Context, event *domain.SaleEvent) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO sale_events (
			sale_date, total_shipping_cost, customer_shipping_charge, platform_fee,
			total_supplies_cost, total_profit_loss, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, date_recorded`,
		event.SaleDate, event.OurShippingCost, event.CustomerShippingCharge, event.PlatformFee,
		event.TotalSuppliesCost, event.TotalProfitLoss, event.Notes,
	).Scan(&event.ID, &event.DateRecorded)
	if err != nil {
		return classify(fmt.Errorf("failed to insert sale event: %w", err))
	}
	return nil
}

func (t *saleTx) InsertSupplyUsage(ctx context.Context, usage *domain.SaleSupplyUsage) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO sale_event_shipping_supplies (
			sale_event_id, supply_id, quantity_used, cost_per_unit_snapshot,
			supply_name_snapshot, supply_description_snapshot
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		usage.SaleEventID, usage.SupplyID, usage.QuantityUsed, usage.CostPerUnitSnapshot,
		usage.SupplyNameSnapshot, usage.SupplyDescriptionSnapshot,
	).Scan(&usage.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to insert supply usage: %w", err))
	}
	return nil
}

func (t *saleTx) InsertLineItem(ctx context.Context, item *domain.SaleLineItem) error {
	err := t.tx.QueryRow(ctx, `
		INSERT INTO sale_items (
			sale_event_id, inventory_item_id, item_type, original_item_name,
			original_item_details, quantity_sold, sell_price_per_item,
			buy_price_per_item, item_profit_loss
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		item.SaleEventID, item.InventoryItemID, item.Kind.SaleItemType(), item.ItemName,
		item.ItemDetails, item.QuantitySold, item.SellPricePerItem,
		item.BuyPricePerItem, item.ItemProfitLoss,
	).Scan(&item.ID)
	if err != nil {
		return classify(fmt.Errorf("failed to insert sale item: %w", err))
	}
	return nil
}

// UpdateSaleEvent rewrites the header and derived totals
func (t *saleTx) UpdateSaleEvent(ctx context.Context, event *domain.SaleEvent) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE sale_events SET
			sale_date = $1, total_shipping_cost = $2, customer_shipping_charge = $3,
			platform_fee = $4, total_supplies_cost = $5, total_profit_loss = $6, notes = $7
		WHERE id = $8`,
		event.SaleDate, event.OurShippingCost, event.CustomerShippingCharge,
		event.PlatformFee, event.TotalSuppliesCost, event.TotalProfitLoss, event.Notes,
		event.ID,
	)
	if err != nil {
		return classify(fmt.Errorf("failed to update sale event: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, "Sale event ID %d not found.", event.ID)
	}
	return nil
}

func (t *saleTx) LockSaleEvent(ctx context.Context, id int64) (*domain.SaleEvent, error) {
	event, err := loadSaleEvent(ctx, t.tx, id, true)
	if err != nil {
		return nil, classify(err)
	}
	return event, nil
}

// DeleteSaleLines removes an event's supply usages, then its line items
func (t *saleTx) DeleteSaleLines(ctx context.Context, eventID int64) error {
	if _, err := t.tx.Exec(ctx, "DELETE FROM sale_event_shipping_supplies WHERE sale_event_id = $1", eventID); err != nil {
		return classify(fmt.Errorf("failed to delete supply usages: %w", err))
	}
	if _, err := t.tx.Exec(ctx, "DELETE FROM sale_items WHERE sale_event_id = $1", eventID); err != nil {
		return classify(fmt.Errorf("failed to delete sale items: %w", err))
	}
	return nil
}

func (t *saleTx) DeleteSaleEvent(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, "DELETE FROM sale_events WHERE id = $1", id)
	if err != nil {
		return classify(fmt.Errorf("failed to delete sale event: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewError(domain.KindNotFound, "Sale event ID %d not found.", id)
	}
	return nil
}

func loadSaleEvent(ctx context.Context, q querier, id int64, lock bool) (*domain.SaleEvent, error) {
	suffix := ""
	if lock {
		suffix = " FOR UPDATE"
	}

	event, err := scanSaleEvent(q.QueryRow(ctx,
		"SELECT "+saleEventColumns+" FROM sale_events WHERE id = $1"+suffix, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, "Sale event ID %d not found.", id)
		}
		return nil, fmt.Errorf("failed to load sale event: %w", err)
	}

	rows, err := q.Query(ctx,
		"SELECT "+saleItemColumns+" FROM sale_items WHERE sale_event_id = $1 ORDER BY id"+suffix, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SaleLineItem, error) {
		return scanSaleItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale items: %w", err)
	}

	rows, err = q.Query(ctx,
		"SELECT "+saleSupplyColumns+" FROM sale_event_shipping_supplies WHERE sale_event_id = $1 ORDER BY id"+suffix, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load supply usages: %w", err)
	}
	supplies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SaleSupplyUsage, error) {
		var u domain.SaleSupplyUsage
		err := row.Scan(&u.ID, &u.SaleEventID, &u.SupplyID, &u.QuantityUsed, &u.CostPerUnitSnapshot,
			&u.SupplyNameSnapshot, &u.SupplyDescriptionSnapshot)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan supply usages: %w", err)
	}

	event.Items = items
	event.Supplies = supplies
	return event, nil
}

func scanSaleEvent(row rowScanner) (*domain.SaleEvent, error) {
	var e domain.SaleEvent
	err := row.Scan(&e.ID, &e.SaleDate, &e.OurShippingCost, &e.CustomerShippingCharge,
		&e.PlatformFee, &e.TotalSuppliesCost, &e.TotalProfitLoss, &e.Notes, &e.DateRecorded)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanSaleItem(row rowScanner) (domain.SaleLineItem, error) {
	var (
		li       domain.SaleLineItem
		itemType string
	)
	err := row.Scan(&li.ID, &li.SaleEventID, &li.InventoryItemID, &itemType, &li.ItemName,
		&li.ItemDetails, &li.QuantitySold, &li.SellPricePerItem, &li.BuyPricePerItem, &li.ItemProfitLoss)
	if err != nil {
		return li, err
	}
	kind, err := domain.ParseLotKind(itemType)
	if err != nil {
		return li, fmt.Errorf("unknown sale item type %q", itemType)
	}
	li.Kind = kind
	return li, nil
}
