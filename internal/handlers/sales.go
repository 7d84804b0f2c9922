// internal/handlers/sales.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/logger"
)

// SaleHandler exposes the sale transaction engine
type SaleHandler struct {
	responder
	service ports.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service ports.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		responder: responder{logger: logger.With(slog.String("handler", "sale"))},
		service:   service,
	}
}

// RecordSale handles POST /api/v1/sales
func (h *SaleHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req domain.SaleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.RecordSale(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, result)
}

// ListSales handles GET /api/v1/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	params, err := saleListParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	events, total, err := h.service.ListSales(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.SaleEvent{}
	}

	h.respondJSON(w, http.StatusOK, ListResponse[domain.SaleEvent]{
		Items:  events,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetSale handles GET /api/v1/sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	event, err := h.service.GetSale(saleContext(r, id), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, event)
}

// EditSale handles PUT /api/v1/sales/{id}
func (h *SaleHandler) EditSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req domain.SaleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.EditSale(saleContext(r, id), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// DeleteSale handles DELETE /api/v1/sales/{id}. The body reports what was
// restocked and any warnings.
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.service.DeleteSale(saleContext(r, id), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func saleContext(r *http.Request, id int64) context.Context {
	return context.WithValue(r.Context(), logger.ContextKeySaleID, id)
}
