// Package csv provides the dialect for CSV file endpoints.
// A CSV endpoint is loaded into a single in-memory table named "data", so
// every table reference resolves to that name regardless of locator fields.
package csv

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// CSV pins the table reference to the loaded frame.
var CSV = &dialect.Dialect{
	Name:          "csv",
	FixedTableRef: "data",
}

func init() {
	dialect.Register(CSV)
}
