// internal/handlers/jobs_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/cdi-tracker/internal/adapters/redis_adapter"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/handlers"
	"github.com/ammerola/cdi-tracker/internal/workers"
	"github.com/ammerola/cdi-tracker/test/helpers"
	"github.com/ammerola/cdi-tracker/test/mocks"
)

func newJobTracker(t *testing.T) *workers.JobTracker {
	t.Helper()
	r := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(r.Client, time.Hour, helpers.TestLogger())
	return workers.NewJobTracker(cache, time.Hour)
}

func TestExportHandler_ExportSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockJobQueue(ctrl)
	store := mocks.NewMockObjectStore(ctrl)
	hs := &handlers.Handlers{
		Exports: handlers.NewExportHandler(queue, newJobTracker(t), store, time.Minute, helpers.TestLogger()),
	}

	queue.EXPECT().EnqueueSalesExport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job *domain.ExportJob) error {
			assert.NotEmpty(t, job.ID)
			assert.Equal(t, domain.JobQueued, job.Status)
			require.NotNil(t, job.From)
			assert.Equal(t, "2026-03-01", job.From.Format(domain.SaleDateLayout))
			return nil
		})

	w := serve(t, hs, http.MethodPost, "/api/v1/exports/sales?from=2026-03-01", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var job domain.ExportJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, "/api/v1/exports/"+job.ID, w.Header().Get("Location"))

	t.Run("invalid_range", func(t *testing.T) {
		w := serve(t, hs, http.MethodPost, "/api/v1/exports/sales?from=2026-03-10&to=2026-03-01", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage_disabled", func(t *testing.T) {
		disabled := &handlers.Handlers{
			Exports: handlers.NewExportHandler(queue, newJobTracker(t), nil, 0, helpers.TestLogger()),
		}
		w := serve(t, disabled, http.MethodPost, "/api/v1/exports/sales", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestExportHandler_ExportStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockObjectStore(ctrl)
	tracker := newJobTracker(t)
	hs := &handlers.Handlers{
		Exports: handlers.NewExportHandler(mocks.NewMockJobQueue(ctrl), tracker, store, time.Minute, helpers.TestLogger()),
	}
	ctx := context.Background()

	running := &domain.ExportJob{ID: "job-running", Status: domain.JobRunning}
	done := &domain.ExportJob{ID: "job-done", Status: domain.JobCompleted, ObjectKey: "exports/job-done.xlsx", Events: 3}
	require.NoError(t, tracker.SaveExport(ctx, running))
	require.NoError(t, tracker.SaveExport(ctx, done))

	store.EXPECT().GetPresignedURL(gomock.Any(), "exports/job-done.xlsx", time.Minute).
		Return("https://bucket.example/exports/job-done.xlsx?sig=1", nil)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedURL    string
	}{
		{name: "running_has_no_link", id: "job-running", expectedStatus: http.StatusOK},
		{name: "completed_is_signed", id: "job-done", expectedStatus: http.StatusOK, expectedURL: "https://bucket.example/exports/job-done.xlsx?sig=1"},
		{name: "unknown_job", id: "missing", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, hs, http.MethodGet, "/api/v1/exports/"+tt.id, nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var job domain.ExportJob
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
			assert.Equal(t, tt.expectedURL, job.DownloadURL)
		})
	}
}

func multipartUpload(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/lots", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportHandler_ImportLots(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		filename       string
		size           int
		enqueueErr     error
		expectEnqueue  bool
		expectedStatus int
	}{
		{name: "queued", field: "file", filename: "lots.xlsx", size: 64, expectEnqueue: true, expectedStatus: http.StatusAccepted},
		{name: "upper_case_extension", field: "file", filename: "LOTS.XLSX", size: 64, expectEnqueue: true, expectedStatus: http.StatusAccepted},
		{name: "wrong_extension", field: "file", filename: "lots.csv", size: 64, expectedStatus: http.StatusBadRequest},
		{name: "missing_field", field: "upload", filename: "lots.xlsx", size: 64, expectedStatus: http.StatusBadRequest},
		{name: "too_large", field: "file", filename: "lots.xlsx", size: 3 << 20, expectedStatus: http.StatusRequestEntityTooLarge},
		{
			name: "queue_unavailable", field: "file", filename: "lots.xlsx", size: 64,
			enqueueErr:     domain.NewError(domain.KindPersistence, "Failed to queue the import."),
			expectEnqueue:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := mocks.NewMockJobQueue(ctrl)
			uploadDir := t.TempDir()

			var savedPath string
			if tt.expectEnqueue {
				queue.EXPECT().EnqueueLotImport(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, job *domain.ImportJob, path string) error {
						savedPath = path
						assert.Equal(t, tt.filename, job.FileName)
						assert.Equal(t, domain.JobQueued, job.Status)
						return tt.enqueueErr
					})
			}

			mux := http.NewServeMux()
			(&handlers.Handlers{
				Imports: handlers.NewImportHandler(queue, newJobTracker(t), 1<<20, uploadDir, helpers.TestLogger()),
			}).Register(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, multipartUpload(t, tt.field, tt.filename, bytes.Repeat([]byte("x"), tt.size)))
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if !tt.expectEnqueue {
				return
			}
			assert.Equal(t, uploadDir, filepath.Dir(savedPath))
			assert.True(t, workers.IsImportTempFile(filepath.Base(savedPath)))

			_, statErr := os.Stat(savedPath)
			if tt.enqueueErr != nil {
				assert.True(t, os.IsNotExist(statErr), "upload should be removed when queueing fails")
				return
			}
			require.NoError(t, statErr)
			assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/api/v1/imports/"))
		})
	}
}

func TestImportHandler_ImportStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := newJobTracker(t)
	hs := &handlers.Handlers{
		Imports: handlers.NewImportHandler(mocks.NewMockJobQueue(ctrl), tracker, 1<<20, t.TempDir(), helpers.TestLogger()),
	}

	require.NoError(t, tracker.SaveImport(context.Background(), &domain.ImportJob{
		ID:       "imp-1",
		Status:   domain.JobCompleted,
		FileName: "lots.xlsx",
		Rows:     3,
		Inserted: 2,
		Errors:   []string{"Cards row 4: Quantity must be a positive integer."},
	}))

	w := serve(t, hs, http.MethodGet, "/api/v1/imports/imp-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var job domain.ImportJob
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, 2, job.Inserted)
	assert.Len(t, job.Errors, 1)

	w = serve(t, hs, http.MethodGet, "/api/v1/imports/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
