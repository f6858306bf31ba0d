// Package dialect provides SQL dialect configuration for CrossCheck.
//
// A dialect carries the backend-specific rules for composing a qualified
// table reference. Concrete dialects are registered from pkg/dialects/*/
// packages; resolution happens once at connection-setup time, never inside
// the validation engine.
package dialect

import "strings"

// Dialect describes one backend's identifier qualification rules.
// Dialects are pure data; they perform no I/O.
type Dialect struct {
	Name string

	// QuoteStart and QuoteEnd bracket each identifier part
	// (e.g. "[" and "]" for SQL Server). Empty means bare identifiers.
	QuoteStart string
	QuoteEnd   string

	// IncludeDatabase controls whether the database name participates in
	// qualification. Oracle-style backends carry the database in the
	// connection instead.
	IncludeDatabase bool

	// DatabaseNeedsSchema drops the database from the reference unless a
	// schema is also present. Snowflake and Netezza parse a two-part name
	// as schema.table, so database.table would address the wrong object.
	DatabaseNeedsSchema bool

	// FixedTableRef, when set, overrides qualification entirely. The csv
	// dialect always queries the loaded frame as "data".
	FixedTableRef string
}

// QualifyTable composes database, schema and table into the dialect's
// qualified reference. Empty parts are omitted.
func (d *Dialect) QualifyTable(database, schema, table string) string {
	if d.FixedTableRef != "" {
		return d.FixedTableRef
	}

	var parts []string
	if d.IncludeDatabase && database != "" && (schema != "" || !d.DatabaseNeedsSchema) {
		parts = append(parts, d.quote(database))
	}
	if schema != "" {
		parts = append(parts, d.quote(schema))
	}
	parts = append(parts, d.quote(table))
	return strings.Join(parts, ".")
}

func (d *Dialect) quote(s string) string {
	return d.QuoteStart + s + d.QuoteEnd
}
