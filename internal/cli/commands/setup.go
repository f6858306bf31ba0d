// Package commands implements the CrossCheck subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/crosscheck/internal/cli/config"
	"github.com/leapstack-labs/crosscheck/internal/connections"
	"github.com/leapstack-labs/crosscheck/internal/engine"
	"github.com/leapstack-labs/crosscheck/pkg/dialect"

	// Register the built-in backends and their dialects.
	_ "github.com/leapstack-labs/crosscheck/pkg/adapters/csvfile"
	_ "github.com/leapstack-labs/crosscheck/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/crosscheck/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/crosscheck/pkg/adapters/sqlite"

	// Dialect-only backends: queries can be built and reported for these
	// even though no driver ships yet.
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/netezza"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/sqlserver"
)

// newManager builds the connection manager from the merged configuration.
func newManager(cfg *config.Config, logger *slog.Logger) (*connections.Manager, error) {
	if len(cfg.Connections) == 0 {
		return nil, fmt.Errorf("no connections configured (add a connections section to crosscheck.yaml)")
	}
	return connections.NewManager(cfg.AdapterConfigs(), logger), nil
}

// managerProvider adapts connections.Manager to the engine's provider port.
type managerProvider struct {
	m *connections.Manager
}

func (p managerProvider) Dialect(name string) (*dialect.Dialect, error) {
	return p.m.Dialect(name)
}

func (p managerProvider) Acquire(ctx context.Context, name string) (engine.Session, error) {
	sess, err := p.m.Acquire(ctx, name)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
