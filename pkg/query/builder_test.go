package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/crosscheck/pkg/core"
	"github.com/leapstack-labs/crosscheck/pkg/dialect"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/csv"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/netezza"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/oracle"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/crosscheck/pkg/dialects/sqlserver"
)

func mustDialect(t *testing.T, name string) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.Get(name)
	require.True(t, ok, "dialect %s should be registered", name)
	return d
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		dialect    string
		loc        core.Locator
		kind       core.AggregateKind
		customExpr string
		expected   string
	}{
		{
			name:     "count star needs no column",
			dialect:  "sqlserver",
			loc:      core.Locator{Database: "Sales", Schema: "dbo", Table: "Orders"},
			kind:     core.CountStar,
			expected: "SELECT COUNT(*) FROM [Sales].[dbo].[Orders]",
		},
		{
			name:     "sum with filter",
			dialect:  "oracle",
			loc:      core.Locator{Schema: "SALES", Table: "ORDERS", Column: "AMOUNT", Filter: "STATUS = 'SHIPPED'"},
			kind:     core.Sum,
			expected: "SELECT SUM(AMOUNT) FROM SALES.ORDERS WHERE STATUS = 'SHIPPED'",
		},
		{
			name:     "count distinct on snowflake",
			dialect:  "snowflake",
			loc:      core.Locator{Database: "ANALYTICS", Schema: "PUBLIC", Table: "CUSTOMERS", Column: "CUSTOMER_ID"},
			kind:     core.CountDistinct,
			expected: "SELECT COUNT(DISTINCT CUSTOMER_ID) FROM ANALYTICS.PUBLIC.CUSTOMERS",
		},
		{
			name:     "count null as conditional sum",
			dialect:  "netezza",
			loc:      core.Locator{Database: "dw", Schema: "stage", Table: "orders", Column: "ship_date"},
			kind:     core.CountNull,
			expected: "SELECT SUM(CASE WHEN ship_date IS NULL THEN 1 ELSE 0 END) FROM dw.stage.orders",
		},
		{
			name:     "count not null without schema",
			dialect:  "netezza",
			loc:      core.Locator{Table: "orders", Column: "ship_date"},
			kind:     core.CountNotNull,
			expected: "SELECT SUM(CASE WHEN ship_date IS NOT NULL THEN 1 ELSE 0 END) FROM orders",
		},
		{
			name:       "custom expression passes through verbatim",
			dialect:    "sqlserver",
			loc:        core.Locator{Schema: "dbo", Table: "OrderLines"},
			kind:       core.Custom,
			customExpr: "SUM(Price * Quantity)",
			expected:   "SELECT SUM(Price * Quantity) FROM [dbo].[OrderLines]",
		},
		{
			name:     "csv dialect pins table ref",
			dialect:  "csv",
			loc:      core.Locator{Database: "ignored", Schema: "ignored", Table: "ignored", Column: "amount"},
			kind:     core.Avg,
			expected: "SELECT AVG(amount) FROM data",
		},
		{
			name:     "mssql synonym resolves to sqlserver",
			dialect:  "mssql",
			loc:      core.Locator{Schema: "dbo", Table: "Orders"},
			kind:     core.CountStar,
			expected: "SELECT COUNT(*) FROM [dbo].[Orders]",
		},
		{
			name:     "whitespace-only filter is dropped",
			dialect:  "oracle",
			loc:      core.Locator{Table: "ORDERS", Filter: "   "},
			kind:     core.CountStar,
			expected: "SELECT COUNT(*) FROM ORDERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDialect(t, tt.dialect)
			got, err := Build(d, tt.loc, tt.kind, tt.customExpr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	d := mustDialect(t, "snowflake")
	loc := core.Locator{Database: "DW", Schema: "CORE", Table: "FACT_SALES", Column: "AMOUNT", Filter: "REGION = 'EMEA'"}

	first, err := Build(d, loc, core.Sum, "")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Build(d, loc, core.Sum, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuild_ConfigErrors(t *testing.T) {
	d := mustDialect(t, "oracle")

	tests := []struct {
		name       string
		kind       core.AggregateKind
		loc        core.Locator
		customExpr string
		errMsg     string
	}{
		{
			name:   "column required",
			kind:   core.Sum,
			loc:    core.Locator{Table: "ORDERS"},
			errMsg: "column name required",
		},
		{
			name:   "custom without expression",
			kind:   core.Custom,
			loc:    core.Locator{Table: "ORDERS"},
			errMsg: "custom expression required",
		},
		{
			name:   "unknown kind",
			kind:   core.AggregateKind("MEDIAN"),
			loc:    core.Locator{Table: "ORDERS", Column: "AMOUNT"},
			errMsg: "unknown aggregate kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(d, tt.loc, tt.kind, tt.customExpr)
			require.Error(t, err)
			assert.True(t, core.IsConfigError(err), "should be a configuration error")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
