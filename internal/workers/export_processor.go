// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

const exportPageSize = 200

// ExportProcessor writes sales workbooks to object storage
type ExportProcessor struct {
	sales   ports.SaleService
	store   ports.ObjectStore
	jobs    *JobTracker
	prefix  string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(sales ports.SaleService, store ports.ObjectStore, jobs *JobTracker,
	prefix string, m *metrics.Metrics, logger *slog.Logger) *ExportProcessor {
	if prefix == "" {
		prefix = "exports"
	}
	return &ExportProcessor{
		sales:   sales,
		store:   store,
		jobs:    jobs,
		prefix:  prefix,
		metrics: m,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ExportKey is the object key of an export job's workbook
func ExportKey(prefix, jobID string) string {
	return path.Join(prefix, jobID+".xlsx")
}

// ProcessExport handles sales:export
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { p.metrics.TaskProcessed(t.Type(), err) }()

	var payload ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	job := &domain.ExportJob{ID: payload.JobID, From: payload.From, To: payload.To, CreatedAt: time.Now().UTC()}
	if existing, loadErr := p.jobs.LoadExport(ctx, payload.JobID); loadErr == nil {
		job = existing
	}
	job.Status = domain.JobRunning
	p.save(ctx, job)

	p.logger.InfoContext(ctx, "exporting sales", slog.String("job_id", job.ID))

	events, err := p.collect(ctx, domain.SaleListParams{From: payload.From, To: payload.To})
	if err != nil {
		return p.fail(ctx, job, err)
	}

	data, err := BuildSalesWorkbook(events)
	if err != nil {
		return p.fail(ctx, job, err)
	}

	key := ExportKey(p.prefix, job.ID)
	if _, err := p.store.Upload(ctx, key, bytes.NewReader(data), xlsxContentType); err != nil {
		return p.fail(ctx, job, err)
	}

	now := time.Now().UTC()
	job.Status = domain.JobCompleted
	job.ObjectKey = key
	job.Events = len(events)
	job.Error = ""
	job.CompletedAt = &now
	p.save(ctx, job)

	p.logger.InfoContext(ctx, "sales export completed",
		slog.String("job_id", job.ID),
		slog.String("key", key),
		slog.Int("events", len(events)))
	return nil
}

// collect pages through the events and loads each one's children
func (p *ExportProcessor) collect(ctx context.Context, params domain.SaleListParams) ([]domain.SaleEvent, error) {
	params.Limit = exportPageSize
	var events []domain.SaleEvent

	for {
		page, total, err := p.sales.ListSales(ctx, params)
		if err != nil {
			return nil, err
		}
		for _, summary := range page {
			event, err := p.sales.GetSale(ctx, summary.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load sale event %d: %w", summary.ID, err)
			}
			events = append(events, *event)
		}
		params.Offset += len(page)
		if len(page) == 0 || int64(params.Offset) >= total {
			return events, nil
		}
	}
}

func (p *ExportProcessor) fail(ctx context.Context, job *domain.ExportJob, err error) error {
	job.Status = domain.JobFailed
	job.Error = err.Error()
	p.save(ctx, job)
	p.logger.ErrorContext(ctx, "sales export failed",
		slog.String("job_id", job.ID),
		slog.String("error", err.Error()))
	return err
}

func (p *ExportProcessor) save(ctx context.Context, job *domain.ExportJob) {
	if err := p.jobs.SaveExport(ctx, job); err != nil {
		p.logger.WarnContext(ctx, "failed to record export status",
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()))
	}
}
