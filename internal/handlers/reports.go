// internal/handlers/reports.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// ReportHandler serves the cached sales and inventory read models
type ReportHandler struct {
	responder
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		responder: responder{logger: logger.With(slog.String("handler", "report"))},
		reports:   reports,
	}
}

// SalesSummary handles GET /api/v1/reports/summary?from=&to=
func (h *ReportHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRange(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	summary, err := h.reports.SalesSummary(r.Context(), domain.SaleListParams{From: from, To: to})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=30")
	h.respondJSON(w, http.StatusOK, summary)
}

// InventoryValuation handles GET /api/v1/reports/valuation
func (h *ReportHandler) InventoryValuation(w http.ResponseWriter, r *http.Request) {
	valuation, err := h.reports.InventoryValuation(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=30")
	h.respondJSON(w, http.StatusOK, valuation)
}
