// internal/handlers/cards.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// CardHandler looks up card printings for the stocking form
type CardHandler struct {
	responder
	resolver ports.CardResolver
}

// NewCardHandler creates a card lookup handler. resolver may be nil when
// the catalogue lookup is disabled.
func NewCardHandler(resolver ports.CardResolver, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		responder: responder{logger: logger.With(slog.String("handler", "card"))},
		resolver:  resolver,
	}
}

// Lookup handles GET /api/v1/cards/lookup?set=&number=
func (h *CardHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if h.resolver == nil {
		h.respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "Card lookup is disabled.",
			Kind:  domain.KindPersistence,
		})
		return
	}

	lookup := domain.CardLookup{
		SetCode:         r.URL.Query().Get("set"),
		CollectorNumber: r.URL.Query().Get("number"),
	}

	meta, err := h.resolver.Lookup(r.Context(), lookup)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, meta)
}
