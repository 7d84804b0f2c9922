// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	"github.com/ammerola/cdi-tracker/internal/core/domain"
	"github.com/ammerola/cdi-tracker/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB starts a PostgreSQL container and applies the embedded migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// UNIQUE NULLS NOT DISTINCT needs 15+
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_cdi",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_cdi",
		SSLMode:            "disable",
		MaxConnections:     10,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		StatementCacheMode: "describe",
		EnableQueryLogging: testing.Verbose(),
		LockTimeout:        2 * time.Second,
		StatementTimeout:   10 * time.Second,
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: dbConfig.URL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
	err = db.RunMigrationsWithRetry(context.Background(), migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "cdi-tracker-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_cdi",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Scryfall: config.ScryfallConfig{
			Enabled:           true,
			BaseURL:           "http://localhost",
			RequestsPerSecond: 100,
			Timeout:           time.Second,
			CacheTTL:          time.Hour,
			UserAgent:         "cdi-tracker-test",
		},
		Sales: config.SalesConfig{
			LockTimeout:      2 * time.Second,
			StatementTimeout: 10 * time.Second,
			SummaryCacheTTL:  time.Minute,
		},
		Export: config.ExportConfig{
			Prefix:          "exports",
			Retention:       24 * time.Hour,
			PresignExpiry:   time.Minute,
			ImportMaxSizeMB: 5,
			TempDir:         os.TempDir(),
			TempFileMaxAge:  time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Price is a decimal literal for fixtures
func Price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// PricePtr is Price for optional price fields
func PricePtr(s string) *decimal.Decimal {
	d := Price(s)
	return &d
}

// CreateTestCard creates an unsaved Sol Ring card lot
func CreateTestCard(overrides ...func(*domain.Card)) *domain.Card {
	card := &domain.Card{
		LotBase:         domain.LotBase{Qty: 4, Location: "Binder A"},
		SetCode:         "CMM",
		CollectorNumber: "410",
		Name:            "Sol Ring",
		Rarity:          "Uncommon",
		Language:        "EN",
		Condition:       "NM",
		BuyPrice:        Price("1.00"),
		SellPrice:       PricePtr("3.00"),
	}
	for _, override := range overrides {
		override(card)
	}
	return card
}

// CreateTestSealed creates an unsaved booster box lot
func CreateTestSealed(overrides ...func(*domain.SealedProduct)) *domain.SealedProduct {
	product := &domain.SealedProduct{
		LotBase:     domain.LotBase{Qty: 2, Location: "Shelf 1"},
		ProductName: "Modern Horizons 3 Play Booster Box",
		SetName:     "Modern Horizons 3",
		ProductType: "Play Booster Box",
		Language:    "English",
		BuyPrice:    Price("180.00"),
		SellPrice:   PricePtr("230.00"),
	}
	for _, override := range overrides {
		override(product)
	}
	return product
}

// CreateTestSupply creates an unsaved mailer lot
func CreateTestSupply(overrides ...func(*domain.ShippingSupply)) *domain.ShippingSupply {
	supply := &domain.ShippingSupply{
		LotBase:       domain.LotBase{Qty: 100, Location: "Packing Desk"},
		SupplyName:    "Bubble Mailer",
		Description:   "4x8",
		UnitOfMeasure: "unit",
		CostPerUnit:   Price("0.25"),
	}
	for _, override := range overrides {
		override(supply)
	}
	return supply
}

// CreateTestSaleRequest creates a request selling one unit of card at $3
// with one supply usage per given supply id
func CreateTestSaleRequest(card domain.LotRef, supplyIDs ...int64) *domain.SaleRequest {
	req := &domain.SaleRequest{
		SaleDate:               "2026-03-14",
		OurShippingCost:        Price("1.00"),
		CustomerShippingCharge: Price("1.50"),
		PlatformFee:            Price("0.30"),
		Items: []domain.SaleLineRequest{
			{Lot: card, QuantitySold: 1, SellPricePerItem: Price("3.00")},
		},
	}
	for _, id := range supplyIDs {
		req.Supplies = append(req.Supplies, domain.SupplyUsageRequest{SupplyID: id, QuantityUsed: 1})
	}
	return req
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"sale_items",
		"sale_event_shipping_supplies",
		"sale_events",
		"shipping_preset_items",
		"shipping_supply_presets",
		"financial_entries",
		"cards",
		"sealed_products",
		"shipping_supplies_inventory",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// LotQuantity reads the stored quantity of a lot
func LotQuantity(t *testing.T, db *pgxpool.Pool, ref domain.LotRef) int {
	t.Helper()

	var qty int
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", ref.Kind.QuantityColumn(), ref.Kind.Table())
	require.NoError(t, db.QueryRow(context.Background(), query, ref.ID).Scan(&qty))
	return qty
}

// CountRows counts the rows of a table
func CountRows(t *testing.T, db *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
