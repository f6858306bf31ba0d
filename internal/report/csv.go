// Package report renders validation outcomes: a CSV audit file and a console
// summary table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

// csvHeader is the fixed column order of the audit file. Changing it breaks
// downstream consumers, so columns are only ever appended.
var csvHeader = []string{
	"rule_id",
	"rule_name",
	"status",
	"source_value",
	"target_value",
	"difference",
	"percentage_difference",
	"source_query",
	"target_query",
	"error_message",
	"executed_at",
	"source_detail",
	"target_detail",
}

// WriteCSV writes all outcomes as CSV, one row per rule in run order.
// Missing values (NULL scalars, failed queries) render as empty cells.
func WriteCSV(w io.Writer, outcomes []core.Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range outcomes {
		record := []string{
			o.RuleID,
			o.RuleName,
			string(o.Status),
			formatValue(o.SourceValue),
			formatValue(o.TargetValue),
			formatValue(o.Difference),
			formatPct(o.PctDifference),
			o.SourceQuery,
			o.TargetQuery,
			o.ErrorMessage,
			o.ExecutedAt.UTC().Format(time.RFC3339),
			o.SourceDetail,
			o.TargetDetail,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for rule %s: %w", o.RuleID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV report to path, creating parent directories.
func WriteFile(path string, outcomes []core.Outcome) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, outcomes); err != nil {
		return err
	}
	return f.Close()
}

// DefaultPath builds a unique report path under dir, stamped with the run
// time and a short random suffix so concurrent runs never collide.
func DefaultPath(dir string) string {
	name := fmt.Sprintf("crosscheck_%s_%s.csv",
		time.Now().UTC().Format("20060102T150405Z"),
		uuid.NewString()[:8])
	return filepath.Join(dir, name)
}

// formatValue renders a float without trailing zeros; nil becomes empty.
func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatPct renders the ratio as a percentage, matching the
// percentage_difference column name.
func formatPct(v *float64) string {
	if v == nil {
		return ""
	}
	p := *v * 100
	return strconv.FormatFloat(p, 'f', -1, 64)
}
