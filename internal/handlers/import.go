// internal/handlers/import.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/workers"
)

// ImportHandler accepts lot workbooks and queues them for import
type ImportHandler struct {
	responder
	queue       ports.JobQueue
	jobs        JobStore
	maxFileSize int64
	uploadDir   string
}

func NewImportHandler(queue ports.JobQueue, jobs JobStore, maxFileSize int64, uploadDir string, logger *slog.Logger) *ImportHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &ImportHandler{
		responder:   responder{logger: logger.With(slog.String("handler", "import"))},
		queue:       queue,
		jobs:        jobs,
		maxFileSize: maxFileSize,
		uploadDir:   uploadDir,
	}
}

// ImportLots handles POST /api/v1/imports/lots (multipart, field "file")
func (h *ImportHandler) ImportLots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "The workbook exceeds the upload size limit.",
				Kind:  domain.KindValidation,
			})
			return
		}
		h.respondError(w, r, domain.WrapError(domain.KindValidation, err, "Failed to parse form data."))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, domain.ValidationErrorf("A workbook file is required."))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		h.respondError(w, r, domain.ValidationErrorf("Only .xlsx workbooks are accepted, got '%s'.", header.Filename))
		return
	}

	dst, err := os.CreateTemp(h.uploadDir, workers.ImportTempPattern)
	if err != nil {
		h.respondError(w, r, domain.WrapError(domain.KindPersistence, err, "Failed to save upload."))
		return
	}
	_, err = io.Copy(dst, file)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst.Name())
		h.respondError(w, r, domain.WrapError(domain.KindPersistence, err, "Failed to save upload."))
		return
	}

	job := &domain.ImportJob{
		ID:        uuid.New().String(),
		Status:    domain.JobQueued,
		FileName:  filepath.Base(header.Filename),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.queue.EnqueueLotImport(ctx, job, dst.Name()); err != nil {
		os.Remove(dst.Name())
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "lot import queued",
		slog.String("job_id", job.ID),
		slog.String("file_name", job.FileName),
		slog.Int64("size", header.Size))

	w.Header().Set("Location", "/api/v1/imports/"+job.ID)
	h.respondJSON(w, http.StatusAccepted, job)
}

// ImportStatus handles GET /api/v1/imports/{id}
func (h *ImportHandler) ImportStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.LoadImport(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, job)
}
