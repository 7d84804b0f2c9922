// internal/pkg/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig marks a required value that was never provided
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Database
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Asynq
	Asynq AsynqConfig

	// AWS
	AWS AWSConfig

	// Card metadata resolver
	Scryfall ScryfallConfig

	// Sale engine
	Sales SalesConfig

	// Workbook exports and imports
	Export ExportConfig

	// Security
	Security SecurityConfig

	// Server
	Server ServerConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `required:"true"`
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	Debug       bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host               string `required:"true"`
	Port               string `required:"true"`
	User               string `required:"true"`
	Password           string
	Name               string `required:"true"`
	SSLMode            string
	MaxConnections     int32
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	StatementCacheMode string
	EnableQueryLogging bool
	MigrationPath      string // empty uses the embedded migrations
	AutoMigrate        bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host            string `required:"true"`
	Port            string `required:"true"`
	Password        string
	DB              int
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	PoolSize        int
	MinIdleConns    int
	MaxConnAge      time.Duration
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	TTL             time.Duration
}

// AsynqConfig holds Asynq configuration
type AsynqConfig struct {
	RedisAddr            string
	RedisPassword        string
	RedisDB              int
	Concurrency          int
	Queues               map[string]int // queue name -> priority
	StrictPriority       bool
	RetryMax             int
	ShutdownTimeout      time.Duration
	HealthCheckInterval  time.Duration
	DelayedTaskCheckTime time.Duration
	MetricsAddr          string // worker /metrics listener, empty disables
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string // For MinIO in development
	UsePathStyle    bool   // For MinIO compatibility
	UseSecrets      bool   // resolve the database password from Secrets Manager
	SecretName      string
}

// ScryfallConfig configures the card metadata resolver
type ScryfallConfig struct {
	Enabled           bool
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
	CacheTTL          time.Duration
	UserAgent         string
}

// SalesConfig tunes the sale engine transactions
type SalesConfig struct {
	LockTimeout      time.Duration
	StatementTimeout time.Duration
	SummaryCacheTTL  time.Duration
}

// ExportConfig holds workbook export and import settings
type ExportConfig struct {
	Prefix          string
	Retention       time.Duration
	PresignExpiry   time.Duration
	ImportMaxSizeMB int
	TempDir         string
	TempFileMaxAge  time.Duration
	CleanupInterval time.Duration
}

// SecurityConfig holds security configuration
type SecurityConfig struct {
	RateLimitRequests int
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	TrustedProxies    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host              string
	Port              string `required:"true"`
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	GracefulTimeout   time.Duration
	EnablePprof       bool
	EnableMetrics     bool
	EnableHealthCheck bool
	TLSEnabled        bool
	TLSCertFile       string
	TLSKeyFile        string
}

// Load loads configuration from environment variables
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetTypeByDefaultValue(true)

	setDefaults()

	// An optional YAML/TOML/JSON file supplies values the environment leaves unset
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		logger.Info("config file loaded", slog.String("path", path))
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", viper.GetString("app.name")),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", viper.GetString("log.level")),
			LogFormat:   getEnv("LOG_FORMAT", viper.GetString("log.format")),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "cdi"),
			Password:           getEnv("DB_PASSWORD", "cdi_dev"),
			Name:               getEnv("DB_NAME", "cdi_tracker"),
			SSLMode:            getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:     int32(getIntEnv("DB_MAX_CONNECTIONS", 25)),
			MinConnections:     int32(getIntEnv("DB_MIN_CONNECTIONS", 5)),
			MaxConnLifetime:    getDurationEnv("DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    getDurationEnv("DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  getDurationEnv("DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			StatementCacheMode: getEnv("DB_STATEMENT_CACHE_MODE", "describe"),
			EnableQueryLogging: getBoolEnv("DB_QUERY_LOGGING", env == "development"),
			MigrationPath:      getEnv("DB_MIGRATION_PATH", ""),
			AutoMigrate:        getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:            getEnv("REDIS_HOST", "localhost"),
			Port:            getEnv("REDIS_PORT", "6379"),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              getIntEnv("REDIS_DB", 0),
			MaxRetries:      getIntEnv("REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: getDurationEnv("REDIS_MIN_RETRY_BACKOFF", 8*time.Millisecond),
			MaxRetryBackoff: getDurationEnv("REDIS_MAX_RETRY_BACKOFF", 512*time.Millisecond),
			DialTimeout:     getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:        getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns:    getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			MaxConnAge:      getDurationEnv("REDIS_MAX_CONN_AGE", 0),
			PoolTimeout:     getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:     getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
			TTL:             getDurationEnv("REDIS_TTL", time.Hour),
		},
		Asynq: AsynqConfig{
			RedisAddr:            fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379")),
			RedisPassword:        getEnv("REDIS_PASSWORD", ""),
			RedisDB:              getIntEnv("ASYNQ_REDIS_DB", 0),
			Concurrency:          getIntEnv("ASYNQ_CONCURRENCY", 10),
			Queues:               parseQueues(getEnv("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:       getBoolEnv("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:             getIntEnv("ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout:      getDurationEnv("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			HealthCheckInterval:  getDurationEnv("ASYNQ_HEALTH_CHECK_INTERVAL", 30*time.Second),
			DelayedTaskCheckTime: getDurationEnv("ASYNQ_DELAYED_TASK_CHECK", 5*time.Second),
			MetricsAddr:          getEnv("WORKER_METRICS_ADDR", ":9091"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "minioadmin"),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "minioadmin123"),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "cdi-exports"),
			S3Endpoint:      getEnv("AWS_S3_ENDPOINT", ""),
			UsePathStyle:    getBoolEnv("AWS_S3_PATH_STYLE", env == "development"),
			UseSecrets:      getBoolEnv("AWS_USE_SECRETS", false),
			SecretName:      getEnv("AWS_SECRET_NAME", "cdi-tracker/"+env),
		},
		Scryfall: ScryfallConfig{
			Enabled:           getBoolEnv("SCRYFALL_ENABLED", true),
			BaseURL:           getEnv("SCRYFALL_BASE_URL", "https://api.scryfall.com"),
			RequestsPerSecond: getFloatEnv("SCRYFALL_RPS", 10),
			Timeout:           getDurationEnv("SCRYFALL_TIMEOUT", 10*time.Second),
			CacheTTL:          getDurationEnv("SCRYFALL_CACHE_TTL", 24*time.Hour),
			UserAgent:         getEnv("SCRYFALL_USER_AGENT", "cdi-tracker/1.0"),
		},
		Sales: SalesConfig{
			LockTimeout:      getDurationEnv("SALES_LOCK_TIMEOUT", 5*time.Second),
			StatementTimeout: getDurationEnv("SALES_STATEMENT_TIMEOUT", 30*time.Second),
			SummaryCacheTTL:  getDurationEnv("SALES_SUMMARY_CACHE_TTL", 5*time.Minute),
		},
		Export: ExportConfig{
			Prefix:          getEnv("EXPORT_PREFIX", "exports"),
			Retention:       getDurationEnv("EXPORT_RETENTION", 7*24*time.Hour),
			PresignExpiry:   getDurationEnv("EXPORT_PRESIGN_EXPIRY", 15*time.Minute),
			ImportMaxSizeMB: getIntEnv("IMPORT_MAX_SIZE_MB", 20),
			TempDir:         getEnv("TEMP_DIR", os.TempDir()),
			TempFileMaxAge:  getDurationEnv("TEMP_FILE_MAX_AGE", 24*time.Hour),
			CleanupInterval: getDurationEnv("CLEANUP_INTERVAL", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: getDurationEnv("RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			TrustedProxies:    getSliceEnv("TRUSTED_PROXIES", []string{}),
			SecureHeaders:     getBoolEnv("SECURE_HEADERS", env == "production"),
			RequestIDHeader:   getEnv("REQUEST_ID_HEADER", "X-Request-ID"),
		},
		Server: ServerConfig{
			Host:              getEnv("SERVER_HOST", "0.0.0.0"),
			Port:              getEnv("SERVER_PORT", "8080"),
			ReadTimeout:       getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes:    getIntEnv("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			GracefulTimeout:   getDurationEnv("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
			EnablePprof:       getBoolEnv("ENABLE_PPROF", env == "development"),
			EnableMetrics:     getBoolEnv("ENABLE_METRICS", true),
			EnableHealthCheck: getBoolEnv("ENABLE_HEALTH_CHECK", true),
			TLSEnabled:        getBoolEnv("TLS_ENABLED", false),
			TLSCertFile:       getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:        getEnv("TLS_KEY_FILE", ""),
		},
	}

	if cfg.AWS.UseSecrets {
		sm, err := NewAWSSecretsManager(cfg.AWS.Region, cfg.AWS.SecretName, logger)
		if err != nil {
			return nil, err
		}
		if err := cfg.ResolveSecrets(context.Background(), sm); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ResolveSecrets replaces credentials with values from the secrets source
func (c *Config) ResolveSecrets(ctx context.Context, sm SecretsManager) error {
	secrets, err := sm.GetSecrets(ctx, []string{"DB_PASSWORD", "REDIS_PASSWORD"})
	if err != nil {
		return fmt.Errorf("failed to resolve secrets: %w", err)
	}
	if v, ok := secrets["DB_PASSWORD"]; ok {
		c.Database.Password = v
	}
	if v, ok := secrets["REDIS_PASSWORD"]; ok {
		c.Redis.Password = v
		c.Asynq.RedisPassword = v
	}
	return nil
}

// GetDatabaseURL returns the formatted database connection string
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns host:port of the cache
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults() {
	viper.SetDefault("app.name", "cdi-tracker")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")
}

// lookup reads key from the environment, then from the config file
func lookup(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return viper.GetString(strings.ToLower(key))
}

func getEnv(key, defaultValue string) string {
	if value := lookup(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := lookup(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := lookup(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := lookup(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := lookup(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := lookup(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	pairs := strings.Split(queuesStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
