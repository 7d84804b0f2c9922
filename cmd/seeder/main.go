// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ammerola/cdi-tracker/internal/adapters/db"
	"github.com/ammerola/cdi-tracker/internal/adapters/scryfall"
	"github.com/ammerola/cdi-tracker/internal/core/ports"
	"github.com/ammerola/cdi-tracker/internal/core/services"
	"github.com/ammerola/cdi-tracker/internal/pkg/config"
	"github.com/ammerola/cdi-tracker/internal/pkg/logger"
	"github.com/ammerola/cdi-tracker/internal/workers"
)

// seederState records which workbooks were already loaded
type seederState struct {
	ProcessedWorkbooks []string  `json:"processed_workbooks"`
	ProcessedCount     int       `json:"processed_count"`
	LastUpdate         time.Time `json:"last_update"`
}

// workbookOutcome counts what one workbook did
type workbookOutcome struct {
	rows, inserted, merged int
	errors                 []string
}

func main() {
	var (
		workbooksDir = flag.String("workbooks", "./seed", "Directory containing .xlsx lot workbooks")
		stateFile    = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun       = flag.Bool("dry-run", false, "Parse workbooks without modifying the database")
		force        = flag.Bool("force", false, "Reload every workbook")
		resolve      = flag.Bool("resolve", false, "Fill missing card details from Scryfall")
		migrateCmd   = flag.String("migrate", "", "Migration command to run first: up, down or version")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json").Logger

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	if *migrateCmd != "" {
		done, err := migrateDatabase(ctx, cfg, *migrateCmd, slogger)
		if err != nil {
			slogger.Error("Migration failed",
				slog.String("command", *migrateCmd),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		if done {
			return
		}
	}

	var lots ports.LotService
	if !*dryRun {
		database, err := db.NewDatabase(ctx, &db.Config{
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			User:               cfg.Database.User,
			Password:           cfg.Database.Password,
			Database:           cfg.Database.Name,
			SSLMode:            cfg.Database.SSLMode,
			MaxConnections:     4,
			MinConnections:     1,
			MaxConnLifetime:    cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
			HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
			ConnectTimeout:     cfg.Database.ConnectTimeout,
			StatementCacheMode: cfg.Database.StatementCacheMode,
		}, slogger)
		if err != nil {
			slogger.Error("Failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.Close()

		var resolver ports.CardResolver
		if *resolve && cfg.Scryfall.Enabled {
			resolver = scryfall.NewClient(scryfall.Config{
				BaseURL:           cfg.Scryfall.BaseURL,
				RequestsPerSecond: cfg.Scryfall.RequestsPerSecond,
				Timeout:           cfg.Scryfall.Timeout,
				UserAgent:         cfg.Scryfall.UserAgent,
			}, nil, nil, slogger)
		}
		lots = services.NewLotService(db.NewLotRepository(database, slogger), resolver, nil, slogger)
	}

	var state seederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			if err := json.Unmarshal(stateData, &state); err != nil {
				slogger.Warn("Ignoring unreadable state file", slog.String("error", err.Error()))
			}
		}
	}

	workbooks, err := filepath.Glob(filepath.Join(*workbooksDir, "*.xlsx"))
	if err != nil {
		slogger.Error("Failed to find workbooks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalProcessed := 0
	totalRows := 0
	failed := []string{}
	details := map[string]workbookOutcome{}

	for i, path := range workbooks {
		name := filepath.Base(path)
		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(workbooks), name)

		if !*force && slices.Contains(state.ProcessedWorkbooks, name) {
			slogger.Info("Skipping already processed workbook", slog.String("workbook", name))
			continue
		}

		outcome, err := seedWorkbook(ctx, lots, path)
		if err != nil {
			slogger.Error("Failed to load workbook",
				slog.String("workbook", name),
				slog.String("error", err.Error()))
			failed = append(failed, name)
			fmt.Printf("ERROR: Failed to process %s - %v\n", name, err)
			continue
		}

		fmt.Printf("SUCCESS: Processed %s - %d rows\n", name, outcome.rows)
		details[name] = outcome
		totalProcessed++
		totalRows += outcome.rows

		state.ProcessedWorkbooks = append(state.ProcessedWorkbooks, name)
		state.ProcessedCount = len(state.ProcessedWorkbooks)
		state.LastUpdate = time.Now()

		if !*dryRun {
			saveState(*stateFile, state, slogger)
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Total Workbooks Processed: %d\n", totalProcessed)
	fmt.Printf("Total Rows Read: %d\n", totalRows)

	if len(details) > 0 {
		fmt.Printf("\nProcessed (%d workbooks):\n", len(details))
		for name, o := range details {
			fmt.Printf("  - %s: %d inserted, %d merged, %d rejected\n", name, o.inserted, o.merged, len(o.errors))
			for _, e := range o.errors {
				fmt.Printf("      %s\n", e)
			}
		}
	}

	if len(failed) > 0 {
		fmt.Printf("\nFailed Workbooks (%d):\n", len(failed))
		for _, name := range failed {
			fmt.Printf("  - %s\n", name)
		}
	}

	slogger.Info("Seed operation completed",
		slog.Int("workbooks_processed", totalProcessed),
		slog.Int("rows", totalRows),
		slog.Int("failed_workbooks", len(failed)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

// migrateDatabase runs one migration command. down and version end the run.
func migrateDatabase(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) (bool, error) {
	migrator, err := db.NewMigrator(&db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger)
	if err != nil {
		return false, err
	}
	defer migrator.Close()

	switch command {
	case "up":
		return false, migrator.Up(ctx)
	case "down":
		return true, migrator.Down(ctx)
	case "version":
		version, dirty, err := migrator.Version(ctx)
		if err != nil {
			return true, err
		}
		fmt.Printf("Schema version: %d (dirty: %t)\n", version, dirty)
		return true, nil
	default:
		return false, fmt.Errorf("unknown migrate command %q", command)
	}
}

// seedWorkbook upserts every parsed row. lots is nil on a dry run.
func seedWorkbook(ctx context.Context, lots ports.LotService, path string) (workbookOutcome, error) {
	var out workbookOutcome

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("failed to read workbook: %w", err)
	}
	rows, err := workers.ReadLotWorkbook(data)
	if err != nil {
		return out, err
	}

	for _, row := range rows {
		out.rows++
		if row.Err != nil {
			out.errors = append(out.errors, fmt.Sprintf("%s row %d: %v", row.Sheet, row.Row, row.Err))
			continue
		}
		if lots == nil {
			continue
		}

		res, err := lots.UpsertLot(ctx, row.Lot)
		if err != nil {
			out.errors = append(out.errors, fmt.Sprintf("%s row %d: %v", row.Sheet, row.Row, err))
			continue
		}
		if res.Merged {
			out.merged++
		} else {
			out.inserted++
		}
	}
	return out, nil
}

func saveState(path string, state seederState, logger *slog.Logger) {
	stateData, err := json.MarshalIndent(state, "", "  ")
	if err == nil {
		err = os.WriteFile(path, stateData, 0644)
	}
	if err != nil {
		logger.Warn("Failed to save state", slog.String("error", err.Error()))
	}
}
