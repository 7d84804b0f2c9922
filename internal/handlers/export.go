// internal/handlers/export.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

// JobStore reads the status of background exports and imports
type JobStore interface {
	LoadExport(ctx context.Context, id string) (*domain.ExportJob, error)
	LoadImport(ctx context.Context, id string) (*domain.ImportJob, error)
}

// ExportHandler queues sales workbook exports and hands out download links
type ExportHandler struct {
	responder
	queue         ports.JobQueue
	jobs          JobStore
	store         ports.ObjectStore
	presignExpiry time.Duration
}

// NewExportHandler creates an export handler. store may be nil when object
// storage is not configured; completed jobs then carry no download URL.
func NewExportHandler(queue ports.JobQueue, jobs JobStore, store ports.ObjectStore, presignExpiry time.Duration, logger *slog.Logger) *ExportHandler {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &ExportHandler{
		responder:     responder{logger: logger.With(slog.String("handler", "export"))},
		queue:         queue,
		jobs:          jobs,
		store:         store,
		presignExpiry: presignExpiry,
	}
}

// ExportSales handles POST /api/v1/exports/sales?from=&to=
func (h *ExportHandler) ExportSales(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "Exports are disabled: no object storage is configured.",
			Kind:  domain.KindPersistence,
		})
		return
	}

	from, to, err := dateRange(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	job := &domain.ExportJob{
		ID:        uuid.New().String(),
		Status:    domain.JobQueued,
		From:      from,
		To:        to,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.queue.EnqueueSalesExport(r.Context(), job); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "sales export queued", slog.String("job_id", job.ID))

	w.Header().Set("Location", "/api/v1/exports/"+job.ID)
	h.respondJSON(w, http.StatusAccepted, job)
}

// ExportStatus handles GET /api/v1/exports/{id}
func (h *ExportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.LoadExport(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if job.Status == domain.JobCompleted && job.ObjectKey != "" && h.store != nil {
		url, err := h.store.GetPresignedURL(r.Context(), job.ObjectKey, h.presignExpiry)
		if err != nil {
			h.respondError(w, r, domain.WrapError(domain.KindPersistence, err, "Failed to sign the download link."))
			return
		}
		job.DownloadURL = url
	}

	h.respondJSON(w, http.StatusOK, job)
}
