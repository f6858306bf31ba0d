package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Ping, and QueryValue implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    Config
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// Ping verifies the connection is alive.
func (b *BaseSQLAdapter) Ping(ctx context.Context) error {
	if b.DB == nil {
		return fmt.Errorf("database connection not established")
	}
	return b.DB.PingContext(ctx)
}

// IsConnected returns true if the database connection is established.
func (b *BaseSQLAdapter) IsConnected() bool {
	return b.DB != nil
}

// QueryValue executes a single-row, single-column query and returns the
// scalar. SQL NULL comes back as nil. Every backend failure is surfaced as
// a core.QueryError carrying the driver's cause.
func (b *BaseSQLAdapter) QueryValue(ctx context.Context, sqlStr string) (any, error) {
	if b.DB == nil {
		return nil, &core.QueryError{Cause: fmt.Errorf("database connection not established")}
	}

	var v any
	if err := b.DB.QueryRowContext(ctx, sqlStr).Scan(&v); err != nil {
		return nil, &core.QueryError{Cause: err}
	}

	// Drivers hand back []byte for text and numeric columns; keep the
	// scalar readable for downstream coercion.
	if raw, ok := v.([]byte); ok {
		return string(raw), nil
	}
	return v, nil
}
