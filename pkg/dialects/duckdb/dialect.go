// Package duckdb provides the DuckDB dialect definition.
// Table references compose as database.schema.table; attached catalogs may
// be addressed by database name.
package duckdb

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// DuckDB qualifies with database and schema when present.
var DuckDB = &dialect.Dialect{
	Name:            "duckdb",
	IncludeDatabase: true,
}

func init() {
	dialect.Register(DuckDB)
}
