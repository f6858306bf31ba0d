// Package core provides the shared data model for CrossCheck's validation
// engine: rules, outcomes, and the error taxonomy. It is pure data with no
// dependencies on adapters, dialects, or I/O.
package core

import (
	"fmt"
	"strings"
)

// AggregateKind identifies the aggregate metric a rule compares.
type AggregateKind string

const (
	CountStar     AggregateKind = "COUNT_STAR"
	CountColumn   AggregateKind = "COUNT_COLUMN"
	Sum           AggregateKind = "SUM"
	Avg           AggregateKind = "AVG"
	Min           AggregateKind = "MIN"
	Max           AggregateKind = "MAX"
	CountDistinct AggregateKind = "COUNT_DISTINCT"
	CountNull     AggregateKind = "COUNT_NULL"
	CountNotNull  AggregateKind = "COUNT_NOT_NULL"
	Custom        AggregateKind = "CUSTOM"
)

// aggregateKinds is the closed set of recognized kinds.
var aggregateKinds = map[AggregateKind]struct{}{
	CountStar: {}, CountColumn: {}, Sum: {}, Avg: {}, Min: {}, Max: {},
	CountDistinct: {}, CountNull: {}, CountNotNull: {}, Custom: {},
}

// ParseAggregateKind parses a kind name case-insensitively.
func ParseAggregateKind(s string) (AggregateKind, error) {
	k := AggregateKind(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := aggregateKinds[k]; !ok {
		return "", &ConfigError{Msg: fmt.Sprintf("unknown aggregate kind %q", s)}
	}
	return k, nil
}

// RequiresColumn reports whether the kind aggregates over a named column.
// COUNT_STAR needs no column and CUSTOM carries its own expression.
func (k AggregateKind) RequiresColumn() bool {
	return k != CountStar && k != Custom
}

// ThresholdKind identifies the tolerance policy for classifying agreement.
type ThresholdKind string

const (
	// Exact passes when |target-source| <= threshold. A threshold of 0
	// recovers literal equality; non-zero permits epsilon exactness.
	Exact ThresholdKind = "EXACT"
	// Percentage passes when |target-source| / source <= threshold.
	Percentage ThresholdKind = "PERCENTAGE"
	// Absolute is the same test as Exact, kept as a distinct name so
	// configurations read naturally when a tolerance is intentional.
	Absolute ThresholdKind = "ABSOLUTE"
)

// ParseThresholdKind parses a threshold kind case-insensitively.
func ParseThresholdKind(s string) (ThresholdKind, error) {
	k := ThresholdKind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case Exact, Percentage, Absolute:
		return k, nil
	}
	return "", &ConfigError{Msg: fmt.Sprintf("unknown threshold kind %q (expected EXACT, PERCENTAGE or ABSOLUTE)", s)}
}

// Locator identifies one side's table and optional column and filter.
type Locator struct {
	Connection string
	Database   string
	Schema     string
	Table      string
	Column     string
	// Filter is a predicate spliced verbatim after WHERE. It is trusted
	// input: no escaping or parameterization is applied.
	Filter string
}

// Detail returns the connection:database:schema:table audit string,
// omitting empty parts.
func (l Locator) Detail() string {
	parts := []string{l.Connection}
	if l.Database != "" {
		parts = append(parts, l.Database)
	}
	if l.Schema != "" {
		parts = append(parts, l.Schema)
	}
	parts = append(parts, l.Table)
	return strings.Join(parts, ":")
}

// Rule is one declarative comparison between a source and a target aggregate.
type Rule struct {
	ID   string
	Name string

	Source Locator
	Target Locator

	Aggregate AggregateKind
	// CustomExpression is a full aggregate SQL expression, used verbatim.
	// Required iff Aggregate is CUSTOM.
	CustomExpression string

	Threshold      ThresholdKind
	ThresholdValue float64

	Enabled bool
}

// Validate checks the structural invariants that must hold before any query
// is built: column-bearing kinds need both columns, CUSTOM needs an
// expression, and the threshold value must be non-negative.
func (r *Rule) Validate() error {
	if _, ok := aggregateKinds[r.Aggregate]; !ok {
		return &ConfigError{Msg: fmt.Sprintf("rule %s: unknown aggregate kind %q", r.ID, r.Aggregate)}
	}
	if r.Aggregate.RequiresColumn() {
		if r.Source.Column == "" || r.Target.Column == "" {
			return &ConfigError{Msg: fmt.Sprintf("rule %s: aggregate kind %s requires both source and target columns", r.ID, r.Aggregate)}
		}
	}
	if r.Aggregate == Custom && strings.TrimSpace(r.CustomExpression) == "" {
		return &ConfigError{Msg: fmt.Sprintf("rule %s: custom expression required for CUSTOM aggregate kind", r.ID)}
	}
	if r.ThresholdValue < 0 {
		return &ConfigError{Msg: fmt.Sprintf("rule %s: threshold value must be non-negative, got %v", r.ID, r.ThresholdValue)}
	}
	return nil
}
