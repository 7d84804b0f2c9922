// internal/workers/import_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

// maxImportErrors caps the per-row errors kept on the job record
const maxImportErrors = 50

// ImportProcessor stocks lots from an uploaded workbook
type ImportProcessor struct {
	lots    ports.LotService
	jobs    *JobTracker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(lots ports.LotService, jobs *JobTracker, m *metrics.Metrics, logger *slog.Logger) *ImportProcessor {
	return &ImportProcessor{
		lots:    lots,
		jobs:    jobs,
		metrics: m,
		logger:  logger.With(slog.String("processor", "import")),
	}
}

// ProcessImport handles lots:import. Each row is upserted on its own, so
// one bad row does not stop the rest.
func (p *ImportProcessor) ProcessImport(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { p.metrics.TaskProcessed(t.Type(), err) }()

	var payload ImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	defer os.Remove(payload.FilePath)

	job := &domain.ImportJob{ID: payload.JobID, CreatedAt: time.Now().UTC()}
	if existing, loadErr := p.jobs.LoadImport(ctx, payload.JobID); loadErr == nil {
		job = existing
	}
	job.Status = domain.JobRunning
	p.save(ctx, job)

	p.logger.InfoContext(ctx, "importing lots",
		slog.String("job_id", job.ID),
		slog.String("file_path", payload.FilePath))

	data, err := os.ReadFile(payload.FilePath)
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("failed to read import file: %w", err))
	}
	rows, err := ReadLotWorkbook(data)
	if err != nil {
		return p.fail(ctx, job, err)
	}

	for _, row := range rows {
		if ctx.Err() != nil {
			return p.fail(ctx, job, ctx.Err())
		}
		job.Rows++

		rowErr := row.Err
		if rowErr == nil {
			var res domain.UpsertResult
			res, rowErr = p.lots.UpsertLot(ctx, row.Lot)
			if rowErr == nil {
				if res.Merged {
					job.Merged++
				} else {
					job.Inserted++
				}
				continue
			}
		}
		p.rowError(job, row, rowErr)
	}

	now := time.Now().UTC()
	job.Status = domain.JobCompleted
	job.CompletedAt = &now
	p.save(ctx, job)

	p.logger.InfoContext(ctx, "lot import completed",
		slog.String("job_id", job.ID),
		slog.Int("rows", job.Rows),
		slog.Int("inserted", job.Inserted),
		slog.Int("merged", job.Merged),
		slog.Int("errors", job.Rows-job.Inserted-job.Merged))
	return nil
}

func (p *ImportProcessor) rowError(job *domain.ImportJob, row LotRow, err error) {
	if len(job.Errors) >= maxImportErrors {
		return
	}
	msg := err.Error()
	var derr *domain.Error
	if errors.As(err, &derr) {
		msg = derr.Message
	}
	job.Errors = append(job.Errors, fmt.Sprintf("%s row %d: %s", row.Sheet, row.Row, msg))
}

func (p *ImportProcessor) fail(ctx context.Context, job *domain.ImportJob, err error) error {
	job.Status = domain.JobFailed
	job.Errors = append(job.Errors, err.Error())
	p.save(ctx, job)
	p.logger.ErrorContext(ctx, "lot import failed",
		slog.String("job_id", job.ID),
		slog.String("error", err.Error()))
	return err
}

func (p *ImportProcessor) save(ctx context.Context, job *domain.ImportJob) {
	if err := p.jobs.SaveImport(ctx, job); err != nil {
		p.logger.WarnContext(ctx, "failed to record import status",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
	}
}
