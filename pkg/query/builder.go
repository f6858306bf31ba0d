// Package query builds the aggregate SQL queries the validation engine
// executes. Build is a pure function: the same inputs always produce an
// identical query string.
package query

import (
	"strings"

	"github.com/leapstack-labs/crosscheck/pkg/core"
	"github.com/leapstack-labs/crosscheck/pkg/dialect"
)

const columnPlaceholder = "{column}"

// aggregateTemplates maps each kind to its SQL expression template.
// COUNT_NULL and COUNT_NOT_NULL are expressed as conditional sums instead of
// native NULL-counting functions so the same template works on every dialect.
var aggregateTemplates = map[core.AggregateKind]string{
	core.CountStar:     "COUNT(*)",
	core.CountColumn:   "COUNT({column})",
	core.Sum:           "SUM({column})",
	core.Avg:           "AVG({column})",
	core.Min:           "MIN({column})",
	core.Max:           "MAX({column})",
	core.CountDistinct: "COUNT(DISTINCT {column})",
	core.CountNull:     "SUM(CASE WHEN {column} IS NULL THEN 1 ELSE 0 END)",
	core.CountNotNull:  "SUM(CASE WHEN {column} IS NOT NULL THEN 1 ELSE 0 END)",
}

// Build composes the single-row, single-column aggregate query for one side
// of a rule. The filter, when present, is spliced verbatim after WHERE:
// filters and custom expressions are trusted input.
//
// Build fails only on structurally invalid combinations (a column-requiring
// kind with no column, CUSTOM with no expression), signaled as a
// configuration error.
func Build(d *dialect.Dialect, loc core.Locator, kind core.AggregateKind, customExpr string) (string, error) {
	expr, err := aggregateExpr(kind, loc.Column, customExpr)
	if err != nil {
		return "", err
	}

	tableRef := d.QualifyTable(loc.Database, loc.Schema, loc.Table)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(expr)
	b.WriteString(" FROM ")
	b.WriteString(tableRef)

	if filter := strings.TrimSpace(loc.Filter); filter != "" {
		b.WriteString(" WHERE ")
		b.WriteString(filter)
	}

	return b.String(), nil
}

// aggregateExpr resolves the aggregate expression for a kind.
func aggregateExpr(kind core.AggregateKind, column, customExpr string) (string, error) {
	if kind == core.Custom {
		if strings.TrimSpace(customExpr) == "" {
			return "", core.ConfigErrorf("custom expression required for CUSTOM aggregate kind")
		}
		return customExpr, nil
	}

	tmpl, ok := aggregateTemplates[kind]
	if !ok {
		return "", core.ConfigErrorf("unknown aggregate kind %q", kind)
	}

	if strings.Contains(tmpl, columnPlaceholder) {
		if column == "" {
			return "", core.ConfigErrorf("column name required for aggregate kind %s", kind)
		}
		return strings.ReplaceAll(tmpl, columnPlaceholder, column), nil
	}
	return tmpl, nil
}
