// Package csvfile provides the CSV file backend for CrossCheck. The file is
// loaded into an in-memory DuckDB instance as a single table named "data",
// which the csv dialect pins every table reference to.
//
// Import this package with a blank identifier to register the adapter:
//
//	import _ "github.com/leapstack-labs/crosscheck/pkg/adapters/csvfile"
package csvfile

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/leapstack-labs/crosscheck/pkg/adapter"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/csv" // register dialect
)

// frameTable is the table name the CSV file is loaded into. It matches the
// csv dialect's fixed table reference.
const frameTable = "data"

func init() {
	adapter.Register("csv", func(logger *slog.Logger) adapter.Adapter { return New(logger) })
}

// Adapter implements the adapter.Adapter interface for CSV file endpoints.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new CSV adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return "csv"
}

// Connect opens an in-memory DuckDB instance and loads the configured CSV
// file into the "data" table with inferred schema.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("csv file path not provided in configuration")
	}

	absPath, err := filepath.Abs(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve csv path: %w", err)
	}

	a.Logger.Debug("loading csv file", slog.String("path", absPath))

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	loadSQL := buildLoadSQL(absPath, cfg.Options)
	if _, err := db.ExecContext(ctx, loadSQL); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to load csv file %s: %w", absPath, err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

// buildLoadSQL composes the read_csv_auto statement, honoring an optional
// delimiter override.
func buildLoadSQL(absPath string, options map[string]string) string {
	args := []string{
		fmt.Sprintf("'%s'", strings.ReplaceAll(absPath, "'", "''")),
		"header=true",
	}
	if delim, ok := options["delimiter"]; ok && delim != "" {
		args = append(args, fmt.Sprintf("delim='%s'", strings.ReplaceAll(delim, "'", "''")))
	}

	return fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto(%s)",
		frameTable, strings.Join(args, ", "),
	)
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
