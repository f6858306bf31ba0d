// Package connections manages the named backend endpoints a validation run
// compares. Each endpoint is connected lazily on first use and hands out an
// exclusive session at a time, so adapters never see concurrent queries.
package connections

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"sync"

	"github.com/leapstack-labs/crosscheck/pkg/adapter"
	"github.com/leapstack-labs/crosscheck/pkg/dialect"
)

// envVarPattern matches ${VAR} references in connection fields.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} references with the environment value.
// Unset variables are left as-is so the resulting connection error names
// the missing reference.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})
}

// expandConfigEnvVars expands ${VAR} references in the fields that commonly
// carry credentials or environment-specific endpoints.
func expandConfigEnvVars(cfg *adapter.Config) {
	cfg.Host = expandEnvVars(cfg.Host)
	cfg.Database = expandEnvVars(cfg.Database)
	cfg.Username = expandEnvVars(cfg.Username)
	cfg.Password = expandEnvVars(cfg.Password)
	cfg.Path = expandEnvVars(cfg.Path)
}

// endpoint is one named connection plus its lazily-created adapter.
type endpoint struct {
	cfg adapter.Config

	mu        sync.Mutex // held for the lifetime of a Session
	adp       adapter.Adapter
	connected bool
}

// Manager owns the set of named endpoints for one run.
//
// Acquire hands out one Session per endpoint at a time; callers must
// Release the session when done. Dialect resolves an endpoint's SQL
// dialect without connecting, so queries can be built before any
// session exists.
type Manager struct {
	logger    *slog.Logger
	endpoints map[string]*endpoint
}

// NewManager builds a manager over the given named connection configs.
// ${VAR} references in credential-bearing fields are expanded up front.
func NewManager(configs map[string]adapter.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	endpoints := make(map[string]*endpoint, len(configs))
	for name, cfg := range configs {
		expandConfigEnvVars(&cfg)
		endpoints[name] = &endpoint{cfg: cfg}
	}
	return &Manager{logger: logger, endpoints: endpoints}
}

// Names returns the configured connection names (sorted).
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.endpoints))
	for name := range m.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dialect resolves the SQL dialect for a named connection without
// establishing it.
func (m *Manager) Dialect(name string) (*dialect.Dialect, error) {
	ep, ok := m.endpoints[name]
	if !ok {
		return nil, fmt.Errorf("connection %q is not defined (available: %v)", name, m.Names())
	}
	d, err := dialect.Resolve(ep.cfg.Type)
	if err != nil {
		return nil, fmt.Errorf("connection %q: %w", name, err)
	}
	return d, nil
}

// Session is an exclusive lease on one endpoint. Release must be called
// when the caller is done; the underlying connection stays open for reuse.
type Session struct {
	ep *endpoint
}

// QueryValue executes a single-scalar query on the leased endpoint.
func (s *Session) QueryValue(ctx context.Context, sql string) (any, error) {
	return s.ep.adp.QueryValue(ctx, sql)
}

// Release returns the endpoint to the manager.
func (s *Session) Release() {
	s.ep.mu.Unlock()
}

// Acquire leases the named endpoint, connecting it first if this is its
// first use. It blocks until any other holder releases the endpoint.
func (m *Manager) Acquire(ctx context.Context, name string) (*Session, error) {
	ep, ok := m.endpoints[name]
	if !ok {
		return nil, fmt.Errorf("connection %q is not defined (available: %v)", name, m.Names())
	}

	ep.mu.Lock()
	if !ep.connected {
		adp, err := adapter.New(ep.cfg, m.logger)
		if err != nil {
			ep.mu.Unlock()
			return nil, fmt.Errorf("connection %q: %w", name, err)
		}
		m.logger.Debug("connecting endpoint",
			slog.String("connection", name),
			slog.String("type", ep.cfg.Type))
		if err := adp.Connect(ctx, ep.cfg); err != nil {
			ep.mu.Unlock()
			return nil, fmt.Errorf("connection %q: %w", name, err)
		}
		ep.adp = adp
		ep.connected = true
	}
	return &Session{ep: ep}, nil
}

// TestAll connects and pings every configured endpoint, returning a map of
// connection name to error (nil on success).
func (m *Manager) TestAll(ctx context.Context) map[string]error {
	results := make(map[string]error, len(m.endpoints))
	for _, name := range m.Names() {
		sess, err := m.Acquire(ctx, name)
		if err != nil {
			results[name] = err
			continue
		}
		results[name] = sess.ep.adp.Ping(ctx)
		sess.Release()
	}
	return results
}

// CloseAll closes every connected endpoint. The first error is returned;
// remaining endpoints are still closed.
func (m *Manager) CloseAll() error {
	var firstErr error
	for _, name := range m.Names() {
		ep := m.endpoints[name]
		ep.mu.Lock()
		if ep.connected {
			if err := ep.adp.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("closing connection %q: %w", name, err)
			}
			ep.adp = nil
			ep.connected = false
		}
		ep.mu.Unlock()
	}
	return firstErr
}
