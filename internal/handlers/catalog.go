// internal/handlers/catalog.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// CatalogHandler serves supply presets and financial entries
type CatalogHandler struct {
	responder
	presets ports.PresetService
	finance ports.FinanceService
}

func NewCatalogHandler(presets ports.PresetService, finance ports.FinanceService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		responder: responder{logger: logger.With(slog.String("handler", "catalog"))},
		presets:   presets,
		finance:   finance,
	}
}

// CreatePreset handles POST /api/v1/presets
func (h *CatalogHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	var preset domain.SupplyPreset
	if err := decodeJSON(w, r, &preset); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.presets.CreatePreset(r.Context(), &preset); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, preset)
}

// ListPresets handles GET /api/v1/presets
func (h *CatalogHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.presets.ListPresets(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if presets == nil {
		presets = []domain.SupplyPreset{}
	}

	h.respondJSON(w, http.StatusOK, presets)
}

// GetPreset handles GET /api/v1/presets/{id}
func (h *CatalogHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	preset, err := h.presets.GetPreset(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, preset)
}

// DeletePreset handles DELETE /api/v1/presets/{id}
func (h *CatalogHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.presets.DeletePreset(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddEntry handles POST /api/v1/finance/entries
func (h *CatalogHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	entry, err := req.ToDomain()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.finance.AddEntry(r.Context(), entry); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, entry)
}

// ListEntries handles GET /api/v1/finance/entries?from=&to=
func (h *CatalogHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	params, err := saleListParams(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	entries, err := h.finance.ListEntries(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.FinancialEntry{}
	}

	h.respondJSON(w, http.StatusOK, entries)
}

// DeleteEntry handles DELETE /api/v1/finance/entries/{id}
func (h *CatalogHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.finance.DeleteEntry(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EntryRequest is the body of POST /finance/entries. An empty date means today.
type EntryRequest struct {
	EntryDate   string           `json:"entry_date"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	EntryType   domain.EntryType `json:"entry_type"`
	Amount      decimal.Decimal  `json:"amount"`
	Notes       string           `json:"notes"`
}

func (r *EntryRequest) ToDomain() (*domain.FinancialEntry, error) {
	entry := &domain.FinancialEntry{
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		EntryType:   domain.EntryType(strings.ToLower(strings.TrimSpace(string(r.EntryType)))),
		Amount:      r.Amount,
		Notes:       r.Notes,
	}
	if raw := strings.TrimSpace(r.EntryDate); raw != "" {
		d, err := time.Parse(domain.SaleDateLayout, raw)
		if err != nil {
			return nil, domain.ValidationErrorf("Invalid entry date '%s'. Expected YYYY-MM-DD.", r.EntryDate)
		}
		entry.EntryDate = d
	}
	return entry, nil
}
