package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/crosscheck/pkg/core"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		source   float64
		target   float64
		kind     core.ThresholdKind
		value    float64
		expected core.Status
	}{
		{"exact match", 1500, 1500, core.Exact, 0, core.StatusPass},
		{"exact mismatch", 1500, 1501, core.Exact, 0, core.StatusFail},
		{"exact with epsilon", 1500, 1500.4, core.Exact, 0.5, core.StatusPass},
		{"percentage within one percent", 1000, 1005, core.Percentage, 0.01, core.StatusPass},
		{"percentage beyond tenth of percent", 1000, 1005, core.Percentage, 0.001, core.StatusFail},
		{"absolute beyond tolerance", 100, 250, core.Absolute, 100, core.StatusFail},
		{"absolute within tolerance", 100, 180, core.Absolute, 100, core.StatusPass},
		{"negative difference uses magnitude", 200, 150, core.Absolute, 50, core.StatusPass},
		{"percentage zero source zero target", 0, 0, core.Percentage, 0.05, core.StatusPass},
		{"percentage zero source nonzero target", 0, 10, core.Percentage, 0.05, core.StatusFail},
		{"unknown kind fails closed", 1, 1, core.ThresholdKind("FUZZY"), 0, core.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.source, tt.target, tt.kind, tt.value)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// EXACT and ABSOLUTE share the same arithmetic; the names differ only for
// configuration readability.
func TestEvaluate_ExactEqualsAbsolute(t *testing.T) {
	cases := []struct{ s, t, v float64 }{
		{0, 0, 0},
		{100, 250, 100},
		{1500, 1500, 0},
		{-50, 50, 100},
		{1e9, 1e9 + 1, 0.5},
		{3.14, 2.71, 0.5},
	}

	for _, c := range cases {
		exact := Evaluate(c.s, c.t, core.Exact, c.v)
		absolute := Evaluate(c.s, c.t, core.Absolute, c.v)
		assert.Equal(t, exact, absolute, "s=%v t=%v v=%v", c.s, c.t, c.v)
	}
}

// Widening a PERCENTAGE threshold never turns a PASS into a FAIL.
func TestEvaluate_PercentageMonotonic(t *testing.T) {
	source, target := 1000.0, 1042.0

	passed := false
	for _, v := range []float64{0, 0.001, 0.01, 0.05, 0.1, 0.5, 1} {
		got := Evaluate(source, target, core.Percentage, v)
		if passed {
			assert.Equal(t, core.StatusPass, got, "threshold %v regressed a pass", v)
		}
		if got == core.StatusPass {
			passed = true
		}
	}
	assert.True(t, passed, "largest threshold should pass")
}
