package dialect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Dialect)
)

// synonyms maps alternate backend names to their canonical dialect name.
var synonyms = map[string]string{
	"mssql":      "sqlserver",
	"nz":         "netezza",
	"postgresql": "postgres",
	"pg":         "postgres",
}

// Normalize lowercases a backend name and resolves recognized synonyms.
func Normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := synonyms[n]; ok {
		return canonical
	}
	return n
}

// Register adds a dialect to the registry.
// Called by dialect packages in their init() functions.
func Register(d *Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[Normalize(d.Name)] = d
}

// Get retrieves a dialect by name, case-insensitively, resolving synonyms.
func Get(name string) (*Dialect, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[Normalize(name)]
	return d, ok
}

// List returns all registered dialect names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownDialectError is returned when an unknown dialect name is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (available: %v)", e.Name, e.Available)
}

// Resolve returns the dialect for a backend name or an UnknownDialectError.
func Resolve(name string) (*Dialect, error) {
	if d, ok := Get(name); ok {
		return d, nil
	}
	return nil, &UnknownDialectError{Name: name, Available: List()}
}
