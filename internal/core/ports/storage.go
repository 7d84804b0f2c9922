// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStore holds generated export workbooks
type ObjectStore interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error)
	ListOlderThan(ctx context.Context, prefix string, cutoff time.Time) ([]string, error)
	DeleteMultiple(ctx context.Context, keys []string) error
}
