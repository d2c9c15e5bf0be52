// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, builds the zap logger and opens the SQLite database

package main

import (
	"fmt"

	"github.com/harper/profitreport/internal/config"
	"github.com/harper/profitreport/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands annotated with schemaManual manage tables themselves, so the
// database is opened without creating missing tables.
const (
	annotationSchema = "schema"
	schemaManual     = "manual"
)

var (
	db     *storage.SQLiteDB
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "profitreport",
	Short: "Daily profit report over sales and weather",
	Long: `Keep a small sales/weather dataset in SQLite and report daily profit
per location with temperature, day-over-day change and a 30-day rolling sum.

Tables: date, location, weather, transactions.

Examples:
  profitreport init
  profitreport seed --locations 3 --days 60
  profitreport add transaction store-1 2024-01-02 125.50
  profitreport report
  profitreport report --variant non-holiday --format json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		logger, err = newLogger(verbose || cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = cfg.DBPath()
		}
		logger.Debug("opening database", zap.String("path", dbPath))

		opts := []storage.Option{storage.WithLogger(logger)}
		if cmd.Annotations[annotationSchema] == schemaManual {
			opts = append(opts, storage.WithoutCreate())
		}

		db, err = storage.NewSQLiteDB(dbPath, opts...)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		_ = logger.Sync()
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

// newLogger builds a production logger on stderr; verbose lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "database file (default: <data_dir>/profitreport.db)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
}
