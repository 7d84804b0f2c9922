// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
)

// CleanupConfig sets what the cleanup tasks remove
type CleanupConfig struct {
	ExportPrefix    string
	ExportRetention time.Duration
	TempDir         string
	TempFileMaxAge  time.Duration
}

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	store   ports.ObjectStore
	cfg     CleanupConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewCleanupProcessor creates a new cleanup processor. store may be nil
// when S3 is not configured.
func NewCleanupProcessor(store ports.ObjectStore, cfg CleanupConfig, m *metrics.Metrics, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		store:   store,
		cfg:     cfg,
		metrics: m,
		logger:  logger.With(slog.String("processor", "cleanup")),
		now:     time.Now,
	}
}

// CleanupExports removes export workbooks older than the retention period
func (p *CleanupProcessor) CleanupExports(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { p.metrics.TaskProcessed(t.Type(), err) }()

	if p.store == nil {
		p.logger.DebugContext(ctx, "no object store configured, skipping export cleanup")
		return nil
	}

	cutoff := p.now().Add(-p.cfg.ExportRetention)
	keys, err := p.store.ListOlderThan(ctx, p.cfg.ExportPrefix+"/", cutoff)
	if err != nil {
		return fmt.Errorf("failed to list exports: %w", err)
	}
	if err := p.store.DeleteMultiple(ctx, keys); err != nil {
		return fmt.Errorf("failed to delete exports: %w", err)
	}

	p.logger.InfoContext(ctx, "old exports cleaned up",
		slog.Int("files_deleted", len(keys)),
		slog.Time("cutoff", cutoff))
	return nil
}

// CleanupTempFiles removes stale uploaded import workbooks
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, t *asynq.Task) (err error) {
	defer func() { p.metrics.TaskProcessed(t.Type(), err) }()

	var deletedCount int
	err = filepath.Walk(p.cfg.TempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !IsImportTempFile(info.Name()) {
			return nil
		}
		if p.now().Sub(info.ModTime()) <= p.cfg.TempFileMaxAge {
			return nil
		}
		if err := os.Remove(path); err != nil {
			p.logger.WarnContext(ctx, "failed to delete temp file",
				slog.String("file", path),
				slog.String("error", err.Error()))
			return nil
		}
		deletedCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))
	return nil
}

// ImportTempPattern names uploaded workbooks waiting for import, for os.CreateTemp
const ImportTempPattern = "lot-import-*.xlsx"

// IsImportTempFile reports whether name was created from ImportTempPattern
func IsImportTempFile(name string) bool {
	return strings.HasPrefix(name, "lot-import-") && strings.HasSuffix(name, ".xlsx")
}
