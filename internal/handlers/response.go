// internal/handlers/response.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

const maxJSONBody = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string           `json:"error"`
	Kind      domain.ErrorKind `json:"kind"`
	Retryable bool             `json:"retryable,omitempty"`
}

// ListResponse wraps a page of results
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// StatusForKind maps an engine error kind to an HTTP status code
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindInvalidField:
		return http.StatusBadRequest
	case domain.KindLotNotFound, domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientStock, domain.KindTransactionConflict:
		return http.StatusConflict
	case domain.KindRestockTargetMissing:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// responder carries the JSON helpers shared by every handler
type responder struct {
	logger *slog.Logger
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// respondError writes err with the status of its kind. Engine messages are
// surfaced verbatim. Unclassified errors never leak their text.
func (h responder) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := StatusForKind(kind)

	msg := "Internal server error"
	var derr *domain.Error
	if errors.As(err, &derr) {
		msg = derr.Message
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
	} else {
		h.logger.DebugContext(r.Context(), "request rejected",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
	}

	h.respondJSON(w, status, ErrorResponse{
		Error:     msg,
		Kind:      kind,
		Retryable: domain.IsRetryable(err),
	})
}

// decodeJSON reads a single JSON document into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	return nil
}

// decodeError turns a decoder failure into a message naming the JSON
// field at fault, never the Go type
func decodeError(err error) error {
	var (
		domainErr *domain.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.Is(err, io.EOF):
		return domain.ValidationErrorf("Request body is empty.")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.WrapError(domain.KindValidation, err, "Request body is not valid JSON.")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return domain.WrapError(domain.KindValidation, err, "Request body has the wrong shape.")
		}
		return domain.WrapError(domain.KindValidation, err, "Field '%s' has the wrong type.", typeErr.Field)
	case errors.As(err, &sizeErr):
		return domain.WrapError(domain.KindValidation, err, "Request body is larger than %d bytes.", sizeErr.Limit)
	default:
		return domain.WrapError(domain.KindValidation, err, "Request body could not be read.")
	}
}

// pathID parses the numeric {id} path value
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrorf("Invalid id '%s'.", raw)
	}
	return id, nil
}

// dateRange parses the optional from/to query values as YYYY-MM-DD
func dateRange(r *http.Request) (from, to *time.Time, err error) {
	parse := func(name string) (*time.Time, error) {
		raw := strings.TrimSpace(r.URL.Query().Get(name))
		if raw == "" {
			return nil, nil
		}
		t, err := time.Parse(domain.SaleDateLayout, raw)
		if err != nil {
			return nil, domain.ValidationErrorf("Invalid %s date '%s'. Expected YYYY-MM-DD.", name, raw)
		}
		return &t, nil
	}

	if from, err = parse("from"); err != nil {
		return nil, nil, err
	}
	if to, err = parse("to"); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, domain.ValidationErrorf("The 'to' date must not be before the 'from' date.")
	}
	return from, to, nil
}

// paging reads limit and offset. The limit is bounded the same way the
// services bound it, so the echoed limit is the one applied.
func paging(r *http.Request) (limit, offset int) {
	q := r.URL.Query()

	limit = domain.DefaultPageSize
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = domain.PageLimit(v)
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// saleListParams combines the date range and paging query values
func saleListParams(r *http.Request) (domain.SaleListParams, error) {
	from, to, err := dateRange(r)
	if err != nil {
		return domain.SaleListParams{}, err
	}
	limit, offset := paging(r)
	return domain.SaleListParams{From: from, To: to, Limit: limit, Offset: offset}, nil
}
