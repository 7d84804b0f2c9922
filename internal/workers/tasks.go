// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
)

const (
	TypeSummaryRefresh   = "summary:refresh"
	TypeSalesExport      = "sales:export"
	TypeLotImport        = "lots:import"
	TypeCleanupExports   = "cleanup:exports"
	TypeCleanupTempFiles = "cleanup:temp_files"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// summaryRefreshID coalesces refresh requests while one is still pending
const summaryRefreshID = "summary-refresh"

// ExportPayload is the sales:export task body
type ExportPayload struct {
	JobID string     `json:"job_id"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
}

// ImportPayload is the lots:import task body
type ImportPayload struct {
	JobID    string `json:"job_id"`
	FilePath string `json:"file_path"`
}

// Enqueuer schedules tasks on asynq
type Enqueuer struct {
	client *asynq.Client
	jobs   *JobTracker
	logger *slog.Logger
}

var (
	_ ports.TaskQueue = (*Enqueuer)(nil)
	_ ports.JobQueue  = (*Enqueuer)(nil)
)

// NewEnqueuer creates an enqueuer over an asynq client
func NewEnqueuer(client *asynq.Client, jobs *JobTracker, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		client: client,
		jobs:   jobs,
		logger: logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueueSummaryRefresh asks the worker to recompute cached reports.
// A refresh that is already pending absorbs the request.
func (e *Enqueuer) EnqueueSummaryRefresh(ctx context.Context) error {
	task := asynq.NewTask(TypeSummaryRefresh, nil)
	_, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueLow),
		asynq.TaskID(summaryRefreshID),
		asynq.MaxRetry(2),
		asynq.Timeout(time.Minute))
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		e.logger.DebugContext(ctx, "summary refresh already pending")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue summary refresh: %w", err)
	}
	return nil
}

// EnqueueSalesExport records the job as queued and schedules it
func (e *Enqueuer) EnqueueSalesExport(ctx context.Context, job *domain.ExportJob) error {
	job.Status = domain.JobQueued
	if err := e.jobs.SaveExport(ctx, job); err != nil {
		return err
	}

	payload, err := json.Marshal(ExportPayload{JobID: job.ID, From: job.From, To: job.To})
	if err != nil {
		return fmt.Errorf("failed to marshal export payload: %w", err)
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(TypeSalesExport, payload),
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to enqueue sales export: %w", err)
	}

	e.logger.InfoContext(ctx, "sales export enqueued",
		slog.String("job_id", job.ID),
		slog.String("task_id", info.ID))
	return nil
}

// EnqueueLotImport records the job as queued and schedules it
func (e *Enqueuer) EnqueueLotImport(ctx context.Context, job *domain.ImportJob, filePath string) error {
	job.Status = domain.JobQueued
	if err := e.jobs.SaveImport(ctx, job); err != nil {
		return err
	}

	payload, err := json.Marshal(ImportPayload{JobID: job.ID, FilePath: filePath})
	if err != nil {
		return fmt.Errorf("failed to marshal import payload: %w", err)
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(TypeLotImport, payload),
		asynq.Queue(QueueCritical),
		// rows already upserted would merge twice on a retry
		asynq.MaxRetry(0),
		asynq.Timeout(10*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to enqueue lot import: %w", err)
	}

	e.logger.InfoContext(ctx, "lot import enqueued",
		slog.String("job_id", job.ID),
		slog.String("task_id", info.ID))
	return nil
}

// JobTracker keeps export and import job status in the cache
type JobTracker struct {
	cache ports.CacheRepository
	ttl   time.Duration
}

// NewJobTracker creates a tracker whose records expire after ttl
func NewJobTracker(cache ports.CacheRepository, ttl time.Duration) *JobTracker {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JobTracker{cache: cache, ttl: ttl}
}

// SaveExport stores an export job record
func (t *JobTracker) SaveExport(ctx context.Context, job *domain.ExportJob) error {
	if err := t.cache.SetWithTTL(ctx, ports.ExportJobKey(job.ID), job, t.ttl); err != nil {
		return fmt.Errorf("failed to save export job %s: %w", job.ID, err)
	}
	return nil
}

// LoadExport reads an export job record. Unknown ids are NotFound.
func (t *JobTracker) LoadExport(ctx context.Context, id string) (*domain.ExportJob, error) {
	var job domain.ExportJob
	if err := t.cache.Get(ctx, ports.ExportJobKey(id), &job); err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return nil, domain.NewError(domain.KindNotFound, "Export job %s not found.", id)
		}
		return nil, fmt.Errorf("failed to load export job %s: %w", id, err)
	}
	return &job, nil
}

// SaveImport stores an import job record
func (t *JobTracker) SaveImport(ctx context.Context, job *domain.ImportJob) error {
	if err := t.cache.SetWithTTL(ctx, ports.ImportJobKey(job.ID), job, t.ttl); err != nil {
		return fmt.Errorf("failed to save import job %s: %w", job.ID, err)
	}
	return nil
}

// LoadImport reads an import job record. Unknown ids are NotFound.
func (t *JobTracker) LoadImport(ctx context.Context, id string) (*domain.ImportJob, error) {
	var job domain.ImportJob
	if err := t.cache.Get(ctx, ports.ImportJobKey(id), &job); err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return nil, domain.NewError(domain.KindNotFound, "Import job %s not found.", id)
		}
		return nil, fmt.Errorf("failed to load import job %s: %w", id, err)
	}
	return &job, nil
}
