// internal/workers/summary_processor.go
package workers

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

// SummaryProcessor recomputes cached reports after sale mutations
type SummaryProcessor struct {
	reports ports.ReportService
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewSummaryProcessor creates a new summary processor
func NewSummaryProcessor(reports ports.ReportService, m *metrics.Metrics, logger *slog.Logger) *SummaryProcessor {
	return &SummaryProcessor{
		reports: reports,
		metrics: m,
		logger:  logger.With(slog.String("processor", "summary")),
	}
}

// RefreshSummary handles summary:refresh
func (p *SummaryProcessor) RefreshSummary(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { p.metrics.TaskProcessed(t.Type(), err) }()

	if err = p.reports.Refresh(ctx); err != nil {
		p.logger.ErrorContext(ctx, "summary refresh failed", slog.String("error", err.Error()))
		return err
	}

	p.logger.InfoContext(ctx, "summary refreshed")
	return nil
}
