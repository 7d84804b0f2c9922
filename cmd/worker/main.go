// cmd/worker/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	redis_a "github.com/ammerola/cdi-tracker/internal/adapters/redis_adapter"
	"github.com/ammerola/cdi-tracker/internal/adapters/storage"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/internal/pkg/config"
	"github.com/ammerola/cdi-tracker/internal/pkg/logger"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
	"github.com/ammerola/cdi-tracker/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()
	database, err := initDatabase(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisClient.Close()
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger.Logger)

	var store ports.ObjectStore
	if cfg.AWS.S3Bucket != "" {
		s3, err := storage.NewS3Storage(ctx, &storage.S3Config{
			Region:          cfg.AWS.Region,
			Bucket:          cfg.AWS.S3Bucket,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.S3Endpoint,
			UsePathStyle:    cfg.AWS.UsePathStyle,
		}, slogger.Logger)
		if err != nil {
			slogger.Error("failed to initialize object storage", slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = s3
	}

	m := metrics.NewDefault()
	jobs := workers.NewJobTracker(cache, cfg.Export.Retention)

	saleRepo := db.NewSaleRepository(database, slogger.Logger)
	presetRepo := db.NewPresetRepository(database, slogger.Logger)
	lotRepo := db.NewLotRepository(database, slogger.Logger)
	reportRepo := db.NewReportRepository(database.SQLDB(), slogger.Logger)

	// The worker never records sales, so the service needs no task queue
	saleService := services.NewSaleService(saleRepo, presetRepo, cache, nil, m, slogger.Logger)
	lotService := services.NewLotService(lotRepo, nil, cache, slogger.Logger)
	reportService := services.NewReportService(reportRepo, cache, cfg.Sales.SummaryCacheTTL, slogger.Logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:              cfg.Asynq.Concurrency,
		Queues:                   cfg.Asynq.Queues,
		StrictPriority:           cfg.Asynq.StrictPriority,
		ErrorHandler:             asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:           exponentialBackoff,
		ShutdownTimeout:          cfg.Asynq.ShutdownTimeout,
		HealthCheckFunc:          healthCheck,
		HealthCheckInterval:      cfg.Asynq.HealthCheckInterval,
		DelayedTaskCheckInterval: cfg.Asynq.DelayedTaskCheckTime,
		Logger:                   newAsynqLogger(slogger.Logger),
	})

	mux := asynq.NewServeMux()
	mux.Use(taskContext)

	summaryProcessor := workers.NewSummaryProcessor(reportService, m, slogger.Logger)
	mux.HandleFunc(workers.TypeSummaryRefresh, summaryProcessor.RefreshSummary)

	importProcessor := workers.NewImportProcessor(lotService, jobs, m, slogger.Logger)
	mux.HandleFunc(workers.TypeLotImport, importProcessor.ProcessImport)

	if store != nil {
		exportProcessor := workers.NewExportProcessor(saleService, store, jobs, cfg.Export.Prefix, m, slogger.Logger)
		mux.HandleFunc(workers.TypeSalesExport, exportProcessor.ProcessExport)
	}

	cleanupProcessor := workers.NewCleanupProcessor(store, workers.CleanupConfig{
		ExportPrefix:    cfg.Export.Prefix,
		ExportRetention: cfg.Export.Retention,
		TempDir:         cfg.Export.TempDir,
		TempFileMaxAge:  cfg.Export.TempFileMaxAge,
	}, m, slogger.Logger)
	mux.HandleFunc(workers.TypeCleanupExports, cleanupProcessor.CleanupExports)
	mux.HandleFunc(workers.TypeCleanupTempFiles, cleanupProcessor.CleanupTempFiles)

	scheduler, err := newScheduler(redisOpt, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to register cleanup schedule", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
		}
	}()

	var metricsServer *http.Server
	if cfg.Asynq.MetricsAddr != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("GET /metrics", m.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Asynq.MetricsAddr,
			Handler:           metricsMux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slogger.Error("metrics server error", slog.String("error", err.Error()))
			}
		}()
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.Bool("exports", store != nil))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		metricsServer.Shutdown(shutdownCtx)
	}
	slogger.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
		LockTimeout:        cfg.Sales.LockTimeout,
		StatementTimeout:   cfg.Sales.StatementTimeout,
	}

	return db.NewDatabase(ctx, dbConfig, logger)
}

// newScheduler enqueues both cleanup tasks every CleanupInterval
func newScheduler(redisOpt asynq.RedisClientOpt, cfg *config.Config, logger *slog.Logger) (*asynq.Scheduler, error) {
	interval := cfg.Export.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger:   newAsynqLogger(logger),
		Location: time.UTC,
	})

	spec := fmt.Sprintf("@every %s", interval)
	for _, taskType := range []string{workers.TypeCleanupExports, workers.TypeCleanupTempFiles} {
		if _, err := scheduler.Register(spec, asynq.NewTask(taskType, nil),
			asynq.Queue(workers.QueueLow),
			asynq.MaxRetry(1),
			asynq.Unique(interval)); err != nil {
			return nil, fmt.Errorf("failed to schedule %s: %w", taskType, err)
		}
	}
	return scheduler, nil
}

// taskContext tags the context so task logs carry the type and id
func taskContext(next asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())
		if id, ok := asynq.GetTaskID(ctx); ok {
			ctx = context.WithValue(ctx, logger.ContextKeyTaskID, id)
		}
		return next.ProcessTask(ctx, t)
	})
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	logger.FromContext(ctx).Error("task processing failed",
		slog.String("type", task.Type()),
		slog.Int("retried", retried),
		slog.Int("max_retry", maxRetry),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
