// Package snowflake provides the Snowflake dialect definition.
// Table references compose as database.schema.table.
package snowflake

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// Snowflake qualifies with database only when a schema is also present;
// a two-part name is parsed as schema.table.
var Snowflake = &dialect.Dialect{
	Name:                "snowflake",
	IncludeDatabase:     true,
	DatabaseNeedsSchema: true,
}

func init() {
	dialect.Register(Snowflake)
}
