package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

// Totals counts outcomes per status.
type Totals struct {
	Pass  int
	Fail  int
	Error int
}

// Total returns the number of evaluated rules.
func (t Totals) Total() int {
	return t.Pass + t.Fail + t.Error
}

// AllPassed reports whether every rule passed. An empty run counts as
// passed: there was nothing to disagree about.
func (t Totals) AllPassed() bool {
	return t.Fail == 0 && t.Error == 0
}

// Summarize tallies outcomes per status.
func Summarize(outcomes []core.Outcome) Totals {
	var totals Totals
	for _, o := range outcomes {
		switch o.Status {
		case core.StatusPass:
			totals.Pass++
		case core.StatusFail:
			totals.Fail++
		default:
			totals.Error++
		}
	}
	return totals
}

// PrintSummary renders the per-rule results table and the status totals.
func PrintSummary(w io.Writer, outcomes []core.Outcome) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Status", "Source", "Target", "Difference"})

	for _, o := range outcomes {
		t.AppendRow(table.Row{
			o.RuleID,
			string(o.Status),
			displayValue(o.SourceValue),
			displayValue(o.TargetValue),
			displayValue(o.Difference),
		})
	}
	t.Render()

	totals := Summarize(outcomes)
	_, _ = fmt.Fprintf(w, "\n%d rules: %d passed (%s), %d failed (%s), %d errored (%s)\n",
		totals.Total(),
		totals.Pass, pct(totals.Pass, totals.Total()),
		totals.Fail, pct(totals.Fail, totals.Total()),
		totals.Error, pct(totals.Error, totals.Total()))

	for _, o := range outcomes {
		switch o.Status {
		case core.StatusFail:
			_, _ = fmt.Fprintf(w, "  FAIL  %s: source=%s target=%s (%s vs %s)\n",
				o.RuleID,
				displayValue(o.SourceValue), displayValue(o.TargetValue),
				o.SourceDetail, o.TargetDetail)
		case core.StatusError:
			_, _ = fmt.Fprintf(w, "  ERROR %s: %s\n", o.RuleID, o.ErrorMessage)
		}
	}
}

func pct(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// displayValue renders a scalar for the console; nil shows as NULL so a
// missing value is never mistaken for zero.
func displayValue(v *float64) string {
	if v == nil {
		return "NULL"
	}
	return formatValue(v)
}
