package core

import "time"

// Status classifies the result of evaluating one rule.
type Status string

const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// Outcome is the recorded result of evaluating one rule. It is constructed
// exactly once by the engine and immutable thereafter.
type Outcome struct {
	RuleID   string
	RuleName string

	Status Status

	// SourceValue and TargetValue are nil when the side's query failed or
	// returned SQL NULL. NULL propagates distinctly from zero.
	SourceValue *float64
	TargetValue *float64

	// Difference is target - source; nil unless both values are present.
	Difference *float64
	// PctDifference is Difference / SourceValue as a ratio; nil when the
	// source value is zero or either value is missing.
	PctDifference *float64

	// SourceQuery and TargetQuery are the exact query strings executed,
	// recorded even when execution failed.
	SourceQuery string
	TargetQuery string

	// SourceDetail and TargetDetail are connection:database:schema:table
	// audit strings.
	SourceDetail string
	TargetDetail string

	// ErrorMessage is set only when Status is ERROR.
	ErrorMessage string

	ExecutedAt time.Time
}
