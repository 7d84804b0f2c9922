// internal/core/ports/collaborators.go
package ports

import (
	"context"

	"github.com/ammerola/cdi-tracker/internal/core/domain"
)

// CardResolver looks up card metadata from an external catalogue.
// Returns a KindNotFound error for unknown printings.
type CardResolver interface {
	Lookup(ctx context.Context, lookup domain.CardLookup) (*domain.CardMetadata, error)
}

// TaskQueue schedules background work that follows a committed change
type TaskQueue interface {
	EnqueueSummaryRefresh(ctx context.Context) error
}

// JobQueue schedules user-requested exports and imports
type JobQueue interface {
	EnqueueSalesExport(ctx context.Context, job *domain.ExportJob) error
	EnqueueLotImport(ctx context.Context, job *domain.ImportJob, filePath string) error
}
