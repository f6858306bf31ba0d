// Package adapter provides the execution-port contract for CrossCheck's
// validation engine: the capability to run one aggregate query against one
// backend and return its single scalar. Concrete backends are registered
// from pkg/adapters/*/ packages.
package adapter

import "context"

// Config holds the configuration for connecting to one backend.
type Config struct {
	// Type specifies the backend type (e.g. "postgres", "duckdb", "csv").
	Type string

	// Path is the file path for file-based backends (DuckDB, SQLite, CSV).
	// Use ":memory:" for in-memory databases.
	Path string

	// Host is the hostname for network-based backends.
	Host string

	// Port is the port number for network-based backends.
	Port int

	// Database is the database name.
	Database string

	// Username for authentication.
	Username string

	// Password for authentication.
	Password string

	// Schema is the default schema to use.
	Schema string

	// Options contains additional driver-specific options.
	Options map[string]string
}

// Adapter is the execution port: given a query string against one
// previously-connected backend, return a single scalar value or fail.
//
// QueryValue returns nil for a SQL NULL scalar; NULL must propagate
// distinctly so a rule comparing to zero is never confused with a rule
// that errored. Numeric coercion of the returned value is the engine's
// job, not the adapter's.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Ping verifies the connection is alive.
	Ping(ctx context.Context) error

	// QueryValue executes a query expected to return exactly one row with
	// one column, and returns that scalar (nil for SQL NULL).
	QueryValue(ctx context.Context, sql string) (any, error)

	// DialectName returns the SQL dialect name for this adapter.
	DialectName() string
}
