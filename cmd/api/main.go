// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	redis_a "github.com/ammerola/cdi-tracker/internal/adapters/redis_adapter"
	"github.com/ammerola/cdi-tracker/internal/adapters/scryfall"
	"github.com/ammerola/cdi-tracker/internal/adapters/storage"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/internal/handlers"
	"github.com/ammerola/cdi-tracker/internal/handlers/middleware"
	"github.com/ammerola/cdi-tracker/internal/pkg/config"
	"github.com/ammerola/cdi-tracker/internal/pkg/logger"
	"github.com/ammerola/cdi-tracker/internal/pkg/metrics"
	"github.com/ammerola/cdi-tracker/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting cdi tracker api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.NewLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		Output:         "stdout",
		Environment:    cfg.App.Environment,
		ServiceName:    cfg.App.Name,
		ServiceVersion: Version,
	}, nil)
	slog.SetDefault(slogger.Logger)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	metrics        *metrics.Metrics
	handlers       *handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{metrics: metrics.NewDefault()}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, databaseConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddr(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	})
	deps.redisClient = redisClient
	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	jobs := workers.NewJobTracker(cache, cfg.Export.Retention)
	enqueuer := workers.NewEnqueuer(deps.asynqClient, jobs, logger)

	var resolver ports.CardResolver
	if cfg.Scryfall.Enabled {
		resolver = scryfall.NewClient(scryfall.Config{
			BaseURL:           cfg.Scryfall.BaseURL,
			RequestsPerSecond: cfg.Scryfall.RequestsPerSecond,
			Timeout:           cfg.Scryfall.Timeout,
			CacheTTL:          cfg.Scryfall.CacheTTL,
			UserAgent:         cfg.Scryfall.UserAgent,
		}, cache, deps.metrics, logger)
	}

	var store ports.ObjectStore
	if cfg.AWS.S3Bucket != "" {
		s3, err := storage.NewS3Storage(ctx, s3Config(cfg), logger)
		if err != nil {
			deps.cleanup()
			return nil, fmt.Errorf("failed to initialize object storage: %w", err)
		}
		store = s3
	} else {
		logger.Warn("no S3 bucket configured, sales exports are disabled")
	}

	// Repositories
	saleRepo := db.NewSaleRepository(database, logger)
	lotRepo := db.NewLotRepository(database, logger)
	presetRepo := db.NewPresetRepository(database, logger)
	financeRepo := db.NewFinanceRepository(database, logger)
	massRepo := db.NewMassUpdateRepository(database, logger)
	reportRepo := db.NewReportRepository(database.SQLDB(), logger)

	// Services
	saleService := services.NewSaleService(saleRepo, presetRepo, cache, enqueuer, deps.metrics, logger)
	lotService := services.NewLotService(lotRepo, resolver, cache, logger)
	massService := services.NewMassUpdateService(massRepo, cache, deps.metrics, logger)
	presetService := services.NewPresetService(presetRepo, lotRepo, logger)
	financeService := services.NewFinanceService(financeRepo, logger)
	reportService := services.NewReportService(reportRepo, cache, cfg.Sales.SummaryCacheTTL, logger)

	maxFileSize := int64(cfg.Export.ImportMaxSizeMB) << 20

	deps.handlers = &handlers.Handlers{
		Sales:     handlers.NewSaleHandler(saleService, logger),
		Inventory: handlers.NewInventoryHandler(lotService, massService, logger),
		Catalog:   handlers.NewCatalogHandler(presetService, financeService, logger),
		Reports:   handlers.NewReportHandler(reportService, logger),
		Exports:   handlers.NewExportHandler(enqueuer, jobs, store, cfg.Export.PresignExpiry, logger),
		Imports:   handlers.NewImportHandler(enqueuer, jobs, maxFileSize, cfg.Export.TempDir, logger),
		Cards:     handlers.NewCardHandler(resolver, logger),
	}
	if cfg.Server.EnableHealthCheck {
		deps.handlers.Health = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, cfg, logger)
	}

	logger.Info("all dependencies initialized successfully",
		slog.Bool("card_resolver", resolver != nil),
		slog.Bool("object_storage", store != nil))
	return deps, nil
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, l *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.handlers.Register(mux)

	if cfg.Server.EnableMetrics {
		mux.Handle("GET /metrics", deps.metrics.Handler())
	}

	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", pprof.Index)
		mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	}

	mws := []func(http.Handler) http.Handler{
		middleware.Recovery(l.Logger),
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(l),
		middleware.Metrics(deps.metrics),
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	if cfg.Security.RateLimitRequests > 0 {
		rl := middleware.NewRateLimiter(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)
		go rl.Run(ctx)
		mws = append(mws, middleware.RateLimit(rl))
	}
	if cfg.Server.WriteTimeout > 0 {
		mws = append(mws, middleware.Timeout(cfg.Server.WriteTimeout))
	}
	mws = append(mws, middleware.Compression)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(l.Handler(), slog.LevelError),
	}
}

func databaseConfig(cfg *config.Config) *db.Config {
	return &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
		LockTimeout:        cfg.Sales.LockTimeout,
		StatementTimeout:   cfg.Sales.StatementTimeout,
	}
}

func s3Config(cfg *config.Config) *storage.S3Config {
	return &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
