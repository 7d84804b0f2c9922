// internal/core/ports/cache.go
package ports

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// Cache key prefixes
const (
	CachePrefixReports = "reports"
	CachePrefixCards   = "cards"
	CachePrefixExport  = "export"
	CachePrefixImport  = "import"
)

// CacheKey joins a prefix and parts into a cache key
func CacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// ExportJobKey is where an export job's status lives
func ExportJobKey(id string) string { return CacheKey(CachePrefixExport, id) }

// ImportJobKey is where an import job's status lives
func ImportJobKey(id string) string { return CacheKey(CachePrefixImport, id) }

// CacheRepository defines the interface for cache operations
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, keys ...string) (bool, error)

	// GetOrSet loads key into dest, calling fetch and storing its result on a miss.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Ping(ctx context.Context) error
}
