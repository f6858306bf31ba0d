// Package sqlite provides the SQLite dialect definition.
// Table references compose as schema.table (the schema addresses an
// attached database).
package sqlite

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// SQLite qualifies with schema only.
var SQLite = &dialect.Dialect{
	Name: "sqlite",
}

func init() {
	dialect.Register(SQLite)
}
