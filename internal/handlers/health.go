// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/pkg/config"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// HealthHandler reports on the database, the cache and the task queue
type HealthHandler struct {
	db        ports.Database
	redis     *redis.Client
	asynq     *asynq.Inspector
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. asynqInspector may be nil.
func NewHealthHandler(
	database ports.Database,
	redisClient *redis.Client,
	asynqInspector *asynq.Inspector,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		redis:     redisClient,
		asynq:     asynqInspector,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	Features    map[string]bool        `json:"features"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo is the state of one dependency
type ServiceInfo struct {
	Status       string         `json:"status"`
	Message      string         `json:"message,omitempty"`
	ResponseTime string         `json:"response_time,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion      string `json:"go_version"`
	NumGoroutines  int    `json:"num_goroutines"`
	NumCPU         int    `json:"num_cpu"`
	MemoryAllocMB  uint64 `json:"memory_alloc_mb"`
	MemorySysMB    uint64 `json:"memory_sys_mb"`
	GCPauseTotalMs uint64 `json:"gc_pause_total_ms"`
	NumGC          uint32 `json:"num_gc"`
}

type dependencyCheck func(ctx context.Context) ServiceInfo

// Health handles GET /health. Checks run concurrently; any unhealthy
// dependency degrades the whole report to 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]dependencyCheck{
		"database": h.checkDatabase,
		"redis":    h.checkRedis,
	}
	if h.asynq != nil {
		checks["asynq"] = h.checkAsynq
	}

	var (
		mu       sync.Mutex
		services = make(map[string]ServiceInfo, len(checks))
		g        errgroup.Group
	)
	for name, check := range checks {
		g.Go(func() error {
			info := timed(ctx, check)
			mu.Lock()
			services[name] = info
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	health := HealthStatus{
		Status:      statusHealthy,
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now().UTC(),
		Services:    services,
		Features: map[string]bool{
			"sales_exports": h.config.AWS.S3Bucket != "",
			"card_lookup":   h.config.Scryfall.Enabled,
		},
		System: h.getSystemInfo(),
	}
	for name, info := range services {
		if info.Status != statusHealthy {
			health.Status = statusDegraded
			h.logger.WarnContext(ctx, "dependency unhealthy",
				slog.String("dependency", name),
				slog.String("error", info.Message))
		}
	}

	statusCode := http.StatusOK
	if health.Status != statusHealthy {
		statusCode = http.StatusServiceUnavailable
	}
	h.write(w, r, statusCode, health)
}

// Readiness handles GET /ready: the API can serve once the database and
// Redis answer a ping.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	details := map[string]string{"database": "ready", "redis": "ready"}
	ready := true

	if err := h.db.Ping(ctx); err != nil {
		ready = false
		details["database"] = "not ready"
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		ready = false
		details["redis"] = "not ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	h.write(w, r, statusCode, map[string]any{
		"ready":   ready,
		"details": details,
	})
}

func (h *HealthHandler) write(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

func timed(ctx context.Context, check dependencyCheck) ServiceInfo {
	start := time.Now()
	info := check(ctx)
	info.ResponseTime = time.Since(start).String()
	return info
}

func unhealthy(err error) ServiceInfo {
	return ServiceInfo{Status: statusUnhealthy, Message: err.Error()}
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ServiceInfo {
	if err := h.db.Ping(ctx); err != nil {
		return unhealthy(err)
	}
	return ServiceInfo{Status: statusHealthy, Details: h.db.Health(ctx)}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ServiceInfo {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return unhealthy(err)
	}

	stats := h.redis.PoolStats()
	return ServiceInfo{
		Status: statusHealthy,
		Details: map[string]any{
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"stale_conns": stats.StaleConns,
			"timeouts":    stats.Timeouts,
		},
	}
}

// checkAsynq reports the depth of every queue the worker consumes
func (h *HealthHandler) checkAsynq(ctx context.Context) ServiceInfo {
	queues, err := h.asynq.Queues()
	if err != nil {
		return unhealthy(err)
	}

	depths := make(map[string]any, len(queues))
	for _, queue := range queues {
		q, err := h.asynq.GetQueueInfo(queue)
		if err != nil {
			continue
		}
		depths[queue] = map[string]any{
			"size":     q.Size,
			"active":   q.Active,
			"pending":  q.Pending,
			"retry":    q.Retry,
			"archived": q.Archived,
			"paused":   q.Paused,
		}
	}

	details := map[string]any{"queues": depths}
	if servers, err := h.asynq.Servers(); err == nil {
		details["servers"] = len(servers)
	}
	return ServiceInfo{Status: statusHealthy, Details: details}
}

// getSystemInfo returns system-level information
func (h *HealthHandler) getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:      runtime.Version(),
		NumGoroutines:  runtime.NumGoroutine(),
		NumCPU:         runtime.NumCPU(),
		MemoryAllocMB:  memStats.Alloc / 1024 / 1024,
		MemorySysMB:    memStats.Sys / 1024 / 1024,
		GCPauseTotalMs: memStats.PauseTotalNs / 1000 / 1000,
		NumGC:          memStats.NumGC,
	}
}
