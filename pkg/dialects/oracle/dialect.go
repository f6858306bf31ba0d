// Package oracle provides the Oracle dialect definition.
// Table references compose as schema.table; the database (service name)
// lives in the connection, never in the query text.
package oracle

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// Oracle qualifies with schema only.
var Oracle = &dialect.Dialect{
	Name: "oracle",
}

func init() {
	dialect.Register(Oracle)
}
