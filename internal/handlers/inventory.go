// internal/handlers/inventory.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// InventoryHandler handles lot stocking, browsing and mass adjustment
type InventoryHandler struct {
	responder
	lots ports.LotService
	mass ports.MassUpdateService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(lots ports.LotService, mass ports.MassUpdateService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		responder: responder{logger: logger.With(slog.String("handler", "inventory"))},
		lots:      lots,
		mass:      mass,
	}
}

// UpsertLot handles POST /api/v1/inventory/{kind}. A lot matching an
// existing identity is merged into it.
func (h *InventoryHandler) UpsertLot(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLotKind(r.PathValue("kind"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	lot, err := domain.NewLot(kind)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := decodeJSON(w, r, lot); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.lots.UpsertLot(r.Context(), lot)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "lot stocked",
		slog.String("lot", result.Ref.String()),
		slog.Bool("merged", result.Merged),
		slog.Int("quantity", result.Quantity))

	status := http.StatusCreated
	if result.Merged {
		status = http.StatusOK
	}
	h.respondJSON(w, status, result)
}

// ListLots handles GET /api/v1/inventory/{kind}
func (h *InventoryHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseLotKind(r.PathValue("kind"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	params := h.parseListParams(r)
	params.Kind = kind

	lots, total, err := h.lots.ListLots(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if lots == nil {
		lots = []domain.Lot{}
	}

	h.respondJSON(w, http.StatusOK, ListResponse[domain.Lot]{
		Items:  lots,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetLot handles GET /api/v1/inventory/{kind}/{id}
func (h *InventoryHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	ref, err := lotRef(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	lot, err := h.lots.GetLot(r.Context(), ref)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lot)
}

// DeleteLot handles DELETE /api/v1/inventory/{kind}/{id}
func (h *InventoryHandler) DeleteLot(w http.ResponseWriter, r *http.Request) {
	ref, err := lotRef(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.lots.DeleteLot(r.Context(), ref); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "lot deleted", slog.String("lot", ref.String()))
	w.WriteHeader(http.StatusNoContent)
}

// MassUpdate handles POST /api/v1/inventory/mass-update
func (h *InventoryHandler) MassUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.MassUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.mass.MassUpdate(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AddSupplyBatch handles POST /api/v1/supplies/batches
func (h *InventoryHandler) AddSupplyBatch(w http.ResponseWriter, r *http.Request) {
	var batch domain.SupplyBatch
	if err := decodeJSON(w, r, &batch); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.lots.AddSupplyBatch(r.Context(), &batch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

func (h *InventoryHandler) parseListParams(r *http.Request) domain.LotListParams {
	q := r.URL.Query()
	limit, offset := paging(r)

	params := domain.LotListParams{
		Search:    q.Get("search"),
		Location:  q.Get("location"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Limit:     limit,
		Offset:    offset,
	}
	if v, err := strconv.ParseBool(q.Get("in_stock")); err == nil {
		params.InStock = v
	}
	return params
}

func lotRef(r *http.Request) (domain.LotRef, error) {
	kind, err := domain.ParseLotKind(r.PathValue("kind"))
	if err != nil {
		return domain.LotRef{}, err
	}
	id, err := pathID(r)
	if err != nil {
		return domain.LotRef{}, err
	}
	return domain.LotRef{Kind: kind, ID: id}, nil
}
