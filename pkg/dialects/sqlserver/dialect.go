// Package sqlserver provides the SQL Server dialect definition.
// Table references compose as [database].[schema].[table]. The registry
// resolves "mssql" to this dialect as well.
package sqlserver

import "github.com/leapstack-labs/crosscheck/pkg/dialect"

// SQLServer brackets every identifier part.
var SQLServer = &dialect.Dialect{
	Name:            "sqlserver",
	QuoteStart:      "[",
	QuoteEnd:        "]",
	IncludeDatabase: true,
}

func init() {
	dialect.Register(SQLServer)
}
