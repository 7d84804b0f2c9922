// internal/core/services/sale.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

const (
	opRecord = "record"
	opDelete = "delete"
	opEdit   = "edit"
)

// SaleService is the sale transaction engine. It owns the record, delete
// and edit algorithms; the repository only supplies tx-scoped statements.
type SaleService struct {
	repo    ports.SaleRepository
	presets ports.PresetRepository
	cache   ports.CacheRepository
	tasks   ports.TaskQueue
	metrics *metrics.Metrics
	logger  *slog.Logger
}

var _ ports.SaleService = (*SaleService)(nil)

// NewSaleService creates a new sale service. cache, tasks and m may be nil.
func NewSaleService(
	repo ports.SaleRepository,
	presets ports.PresetRepository,
	cache ports.CacheRepository,
	tasks ports.TaskQueue,
	m *metrics.Metrics,
	logger *slog.Logger,
) *SaleService {
	return &SaleService{
		repo:    repo,
		presets: presets,
		cache:   cache,
		tasks:   tasks,
		metrics: m,
		logger:  logger.With(slog.String("service", "sale")),
	}
}

// RecordSale deducts every line item and supply usage and persists the
// sale event, all in one transaction.
func (s *SaleService) RecordSale(ctx context.Context, req *domain.SaleRequest) (*domain.SaleResult, error) {
	if err := s.prepare(ctx, req); err != nil {
		s.metrics.SaleFailed(opRecord, err)
		return nil, err
	}

	var event *domain.SaleEvent
	err := s.repo.WithinTx(ctx, func(tx ports.SaleTx) error {
		lots, err := tx.LockLots(ctx, req.LotRefs())
		if err != nil {
			return err
		}
		ledger := newLotLedger(lots)

		event = domain.NewSaleEvent(req)
		if err := s.deduct(ctx, tx, req, event, ledger, true); err != nil {
			return err
		}
		return ledger.save(ctx, tx)
	})
	if err != nil {
		s.metrics.SaleFailed(opRecord, err)
		s.logger.WarnContext(ctx, "sale not recorded",
			slog.String("kind", string(domain.KindOf(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	result := &domain.SaleResult{
		SaleEventID:       event.ID,
		Message:           "Sale event recorded successfully.",
		TotalProfitLoss:   event.TotalProfitLoss,
		TotalSuppliesCost: event.TotalSuppliesCost,
	}
	s.metrics.SaleRecorded(result)
	s.afterCommit(ctx)

	s.logger.InfoContext(ctx, "recorded sale event",
		slog.Int64("sale_event_id", event.ID),
		slog.Int("items", len(event.Items)),
		slog.Int("supplies", len(event.Supplies)),
		slog.String("total_profit_loss", event.TotalProfitLoss.StringFixed(2)))

	return result, nil
}

// DeleteSale restocks everything the sale consumed and removes the event
// with its line items and supply usages.
func (s *SaleService) DeleteSale(ctx context.Context, id int64) (*domain.SaleResult, error) {
	var notes restockNotes
	err := s.repo.WithinTx(ctx, func(tx ports.SaleTx) error {
		event, err := tx.LockSaleEvent(ctx, id)
		if err != nil {
			return err
		}

		lots, err := tx.LockLots(ctx, saleEventRefs(event))
		if err != nil {
			return err
		}
		ledger := newLotLedger(lots)

		if notes, err = restock(event, ledger); err != nil {
			return err
		}
		if err := ledger.save(ctx, tx); err != nil {
			return err
		}
		if err := tx.DeleteSaleLines(ctx, id); err != nil {
			return err
		}
		return tx.DeleteSaleEvent(ctx, id)
	})
	if err != nil {
		s.metrics.SaleFailed(opDelete, err)
		s.logger.WarnContext(ctx, "sale not deleted",
			slog.Int64("sale_event_id", id),
			slog.String("kind", string(domain.KindOf(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.SaleDeleted()
	s.afterCommit(ctx)

	s.logger.InfoContext(ctx, "deleted sale event",
		slog.Int64("sale_event_id", id),
		slog.Int("warnings", len(notes.warnings)))

	return &domain.SaleResult{
		SaleEventID: id,
		Message:     notes.message(fmt.Sprintf("Sale event ID %d deleted.", id)),
		Warnings:    notes.warnings,
	}, nil
}

// EditSale replaces a sale's lines in place: prior items and supplies are
// restocked, then the new request is deducted under the same event id.
// Both phases share one transaction.
func (s *SaleService) EditSale(ctx context.Context, id int64, req *domain.SaleRequest) (*domain.SaleResult, error) {
	if err := s.prepare(ctx, req); err != nil {
		s.metrics.SaleFailed(opEdit, err)
		return nil, err
	}

	var (
		event *domain.SaleEvent
		notes restockNotes
	)
	err := s.repo.WithinTx(ctx, func(tx ports.SaleTx) error {
		prior, err := tx.LockSaleEvent(ctx, id)
		if err != nil {
			return err
		}

		refs := append(saleEventRefs(prior), req.LotRefs()...)
		lots, err := tx.LockLots(ctx, domain.SortedUniqueRefs(refs))
		if err != nil {
			return err
		}
		ledger := newLotLedger(lots)

		if notes, err = restock(prior, ledger); err != nil {
			return err
		}
		if err := tx.DeleteSaleLines(ctx, id); err != nil {
			return err
		}

		event = domain.NewSaleEvent(req)
		event.ID = prior.ID
		event.DateRecorded = prior.DateRecorded
		if err := s.deduct(ctx, tx, req, event, ledger, false); err != nil {
			return err
		}
		return ledger.save(ctx, tx)
	})
	if err != nil {
		s.metrics.SaleFailed(opEdit, err)
		s.logger.WarnContext(ctx, "sale not edited",
			slog.Int64("sale_event_id", id),
			slog.String("kind", string(domain.KindOf(err))),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.SaleEdited()
	s.afterCommit(ctx)

	s.logger.InfoContext(ctx, "edited sale event",
		slog.Int64("sale_event_id", id),
		slog.String("total_profit_loss", event.TotalProfitLoss.StringFixed(2)))

	return &domain.SaleResult{
		SaleEventID:       id,
		Message:           notes.message(fmt.Sprintf("Sale event ID %d updated.", id)),
		Warnings:          notes.warnings,
		TotalProfitLoss:   event.TotalProfitLoss,
		TotalSuppliesCost: event.TotalSuppliesCost,
	}, nil
}

// GetSale returns a sale event with its lines
func (s *SaleService) GetSale(ctx context.Context, id int64) (*domain.SaleEvent, error) {
	event, err := s.repo.GetSaleEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale event: %w", err)
	}
	return event, nil
}

// ListSales lists sale events, newest first
func (s *SaleService) ListSales(ctx context.Context, params domain.SaleListParams) ([]domain.SaleEvent, int64, error) {
	params.Limit = domain.PageLimit(params.Limit)
	params.Offset = max(params.Offset, 0)
	events, total, err := s.repo.ListSaleEvents(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sale events: %w", err)
	}
	return events, total, nil
}

// prepare expands an optional supply preset and validates the request.
// Nothing here takes a lock.
func (s *SaleService) prepare(ctx context.Context, req *domain.SaleRequest) error {
	if req == nil {
		return domain.ValidationErrorf("Sale request is required.")
	}
	if req.PresetID != nil {
		if s.presets == nil {
			return domain.ValidationErrorf("Shipping supply presets are not available.")
		}
		preset, err := s.presets.FindByID(ctx, *req.PresetID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ValidationErrorf("Shipping supply preset %d not found.", *req.PresetID)
			}
			return err
		}
		req.Supplies = append(req.Supplies, preset.Usages()...)
		req.PresetID = nil
	}
	return req.Validate()
}

// deduct re-validates stock against the locked rows, writes the event and
// its audit rows, and decrements the ledger. insert selects between a new
// event row and rewriting the existing one.
func (s *SaleService) deduct(ctx context.Context, tx ports.SaleTx, req *domain.SaleRequest, event *domain.SaleEvent, ledger *lotLedger, insert bool) error {
	demand := req.Demand()
	for _, ref := range req.LotRefs() {
		need := demand[ref]
		lot, ok := ledger.lots[ref]
		if !ok {
			return lotNotFound(ref)
		}
		if need > lot.Quantity() {
			// Decrement reports the kind-specific shortage without mutating
			return lot.Decrement(need)
		}
	}

	if insert {
		if err := tx.InsertSaleEvent(ctx, event); err != nil {
			return err
		}
	}

	for _, u := range req.Supplies {
		supply, ok := ledger.lots[u.Ref()].(*domain.ShippingSupply)
		if !ok {
			return domain.NewError(domain.KindPersistence, "Inventory row %s is not a shipping supply.", u.Ref())
		}
		usage := domain.NewSaleSupplyUsage(supply, u.QuantityUsed)
		usage.SaleEventID = event.ID
		if err := tx.InsertSupplyUsage(ctx, &usage); err != nil {
			return err
		}
		if err := supply.Decrement(u.QuantityUsed); err != nil {
			return err
		}
		event.Supplies = append(event.Supplies, usage)
	}

	for _, item := range req.Items {
		lot := ledger.lots[item.Lot]
		line := domain.NewSaleLineItem(lot, item)
		line.SaleEventID = event.ID
		if err := tx.InsertLineItem(ctx, &line); err != nil {
			return err
		}
		if err := lot.Decrement(item.QuantitySold); err != nil {
			return err
		}
		event.Items = append(event.Items, line)
	}

	event.Settle()
	return tx.UpdateSaleEvent(ctx, event)
}

// afterCommit drops cached read models and schedules their refresh. Both
// are best effort; the sale is already committed.
func (s *SaleService) afterCommit(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, ports.CacheKey(ports.CachePrefixReports, "*")); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate report cache",
				slog.String("error", err.Error()))
		}
	}
	if s.tasks != nil {
		if err := s.tasks.EnqueueSummaryRefresh(ctx); err != nil {
			s.logger.WarnContext(ctx, "failed to enqueue summary refresh",
				slog.String("error", err.Error()))
		}
	}
}

// restock increments every lot the event consumed. Line items whose lot
// is gone are reported as warnings; a missing supply aborts.
func restock(event *domain.SaleEvent, ledger *lotLedger) (restockNotes, error) {
	var notes restockNotes

	for _, li := range event.Items {
		ref, ok := li.LotRef()
		if !ok {
			notes.warn(fmt.Sprintf("Warning: Sold item '%s' had no inventory ID linked; cannot restock.", li.ItemName))
			continue
		}
		lot, ok := ledger.lots[ref]
		if !ok {
			notes.warn(fmt.Sprintf("Warning: Sold item '%s' (%s) is no longer in inventory; cannot restock.", li.ItemName, ref))
			continue
		}
		lot.Increment(li.QuantitySold)
		notes.add(fmt.Sprintf("Restocked %d of '%s'.", li.QuantitySold, li.ItemName))
	}

	for _, u := range event.Supplies {
		ref := domain.LotRef{Kind: domain.LotKindSupply, ID: u.SupplyID}
		lot, ok := ledger.lots[ref]
		if !ok {
			return notes, domain.NewError(domain.KindRestockTargetMissing,
				"Failed to restock shipping supply '%s' (ID: %d): supply not found in inventory.", u.Label(), u.SupplyID)
		}
		lot.Increment(u.QuantityUsed)
		notes.add(fmt.Sprintf("Restocked %d of '%s'.", u.QuantityUsed, u.Label()))
	}

	return notes, nil
}

// saleEventRefs lists the lots an existing event references
func saleEventRefs(event *domain.SaleEvent) []domain.LotRef {
	refs := make([]domain.LotRef, 0, len(event.Items)+len(event.Supplies))
	for _, li := range event.Items {
		if ref, ok := li.LotRef(); ok {
			refs = append(refs, ref)
		}
	}
	for _, u := range event.Supplies {
		refs = append(refs, domain.LotRef{Kind: domain.LotKindSupply, ID: u.SupplyID})
	}
	return domain.SortedUniqueRefs(refs)
}

func lotNotFound(ref domain.LotRef) error {
	return domain.NewError(domain.KindLotNotFound, "Inventory item not found: %s id %d.", ref.Kind, ref.ID)
}

// lotLedger tracks the locked lots of one transaction and writes back
// only the quantities that changed.
type lotLedger struct {
	lots   map[domain.LotRef]domain.Lot
	before map[domain.LotRef]int
}

func newLotLedger(lots map[domain.LotRef]domain.Lot) *lotLedger {
	before := make(map[domain.LotRef]int, len(lots))
	for ref, lot := range lots {
		before[ref] = lot.Quantity()
	}
	return &lotLedger{lots: lots, before: before}
}

func (l *lotLedger) save(ctx context.Context, tx ports.SaleTx) error {
	refs := make([]domain.LotRef, 0, len(l.lots))
	for ref := range l.lots {
		refs = append(refs, ref)
	}
	for _, ref := range domain.SortedUniqueRefs(refs) {
		lot := l.lots[ref]
		if lot.Quantity() == l.before[ref] {
			continue
		}
		if err := tx.SaveLotQuantity(ctx, lot); err != nil {
			return err
		}
	}
	return nil
}

type restockNotes struct {
	lines    []string
	warnings []string
}

func (n *restockNotes) add(line string) {
	n.lines = append(n.lines, line)
}

func (n *restockNotes) warn(line string) {
	n.lines = append(n.lines, line)
	n.warnings = append(n.warnings, line)
}

func (n restockNotes) message(head string) string {
	if len(n.lines) == 0 {
		return head
	}
	return head + " " + strings.Join(n.lines, " ")
}
