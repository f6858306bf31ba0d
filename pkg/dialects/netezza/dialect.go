// Package netezza provides the Netezza dialect definition.
// Table references compose as database.schema.table. The registry resolves
// "nz" to this dialect as well.
package netezza

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// Netezza qualifies with database only when a schema is also present;
// a two-part name is parsed as schema.table.
var Netezza = &dialect.Dialect{
	Name:                "netezza",
	IncludeDatabase:     true,
	DatabaseNeedsSchema: true,
}

func init() {
	dialect.Register(Netezza)
}
