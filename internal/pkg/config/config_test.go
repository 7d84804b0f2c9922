package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:      AppConfig{Name: "cdi-tracker", Environment: "test"},
		Database: DatabaseConfig{Host: "localhost", Port: "5432", User: "cdi", Name: "cdi_tracker", MaxConnections: 10, MinConnections: 2},
		Redis:    RedisConfig{Host: "localhost", Port: "6379", PoolSize: 10},
		Scryfall: ScryfallConfig{Enabled: true, BaseURL: "https://api.scryfall.com", RequestsPerSecond: 10},
		Sales:    SalesConfig{LockTimeout: 5 * time.Second, StatementTimeout: 30 * time.Second},
		Security: SecurityConfig{RateLimitRequests: 100, AllowedOrigins: []string{"*"}},
		Server:   ServerConfig{Port: "8080"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
		missing bool
	}{
		{
			name:   "valid_config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing_database_host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "Database.Host",
			missing: true,
		},
		{
			name:    "placeholder_counts_as_missing",
			mutate:  func(c *Config) { c.Database.Name = "MISSING_DB_NAME" },
			wantErr: "Database.Name",
			missing: true,
		},
		{
			name:    "min_connections_above_max",
			mutate:  func(c *Config) { c.Database.MinConnections = 20 },
			wantErr: "max_connections",
		},
		{
			name:    "zero_lock_timeout",
			mutate:  func(c *Config) { c.Sales.LockTimeout = 0 },
			wantErr: "lock_timeout",
		},
		{
			name:    "statement_timeout_below_lock_timeout",
			mutate:  func(c *Config) { c.Sales.StatementTimeout = time.Second },
			wantErr: "statement_timeout",
		},
		{
			name:   "scryfall_disabled_ignores_base_url",
			mutate: func(c *Config) { c.Scryfall = ScryfallConfig{} },
		},
		{
			name: "production_rejects_wildcard_origin",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Database.Password = "secret"
				c.Database.SSLMode = "require"
				c.Security.SecureHeaders = true
				c.AWS.S3Bucket = "cdi-exports"
			},
			wantErr: "wildcard origin",
		},
		{
			name: "production_requires_password",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Database.SSLMode = "require"
			},
			wantErr: "database password",
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.missing, errors.Is(err, ErrMissingRequiredConfig))
		})
	}
}

func TestConfig_ResolveSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_PASSWORD", "redis-secret")

	cfg := validConfig()
	require.NoError(t, cfg.ResolveSecrets(context.Background(), NewEnvSecretsManager()))

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
	assert.Equal(t, "redis-secret", cfg.Asynq.RedisPassword)
}

func TestParseQueues(t *testing.T) {
	assert.Equal(t, map[string]int{"critical": 6, "default": 3}, parseQueues("critical:6, default:3"))
	assert.Equal(t, map[string]int{"default": 1}, parseQueues("garbage"))
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_host: db.internal\nsales_lock_timeout: 3s\nasynq_queues: critical:2,low:1\n"), 0o600))

	t.Setenv("APP_ENV", "test")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "from_env")

	cfg, err := Load(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, 3*time.Second, cfg.Sales.LockTimeout)
	assert.Equal(t, map[string]int{"critical": 2, "low": 1}, cfg.Asynq.Queues)
}
