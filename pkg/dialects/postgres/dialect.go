// Package postgres provides the PostgreSQL dialect definition.
// Table references compose as schema.table; cross-database references are
// not supported, so the database name never appears in query text.
package postgres

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// Postgres qualifies with schema only.
var Postgres = &dialect.Dialect{
	Name: "postgres",
}

func init() {
	dialect.Register(Postgres)
}
