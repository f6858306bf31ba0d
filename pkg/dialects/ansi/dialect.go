// Package ansi provides the fallback ANSI SQL dialect definition.
// Table references compose as schema.table with bare identifiers.
package ansi

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// ANSI is the fallback dialect for backends without a specific definition.
var ANSI = &dialect.Dialect{
	Name: "ansi",
}

func init() {
	dialect.Register(ANSI)
}
