// Package engine evaluates validation rules: it builds the source and target
// aggregate queries, executes them through acquired sessions, and classifies
// the pair of scalars into a PASS/FAIL/ERROR outcome.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/crosscheck/pkg/core"
	"github.com/leapstack-labs/crosscheck/pkg/dialect"
	"github.com/leapstack-labs/crosscheck/pkg/query"
	"github.com/leapstack-labs/crosscheck/pkg/threshold"
)

// Session is an exclusive lease on one endpoint for the duration of a query.
type Session interface {
	QueryValue(ctx context.Context, sql string) (any, error)
	Release()
}

// Provider resolves dialects and hands out sessions for named connections.
// *connections.Manager satisfies this through a thin wrapper.
type Provider interface {
	Dialect(name string) (*dialect.Dialect, error)
	Acquire(ctx context.Context, name string) (Session, error)
}

// DefaultConcurrency is the number of rules evaluated in parallel when the
// configuration does not say otherwise.
const DefaultConcurrency = 4

// Config configures an Engine.
type Config struct {
	Provider Provider
	Logger   *slog.Logger

	// Concurrency bounds how many rules run at once. Zero or negative
	// means DefaultConcurrency.
	Concurrency int
}

// Engine evaluates rules against a Provider.
type Engine struct {
	provider    Provider
	logger      *slog.Logger
	concurrency int
}

// New creates an engine from the given configuration.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Engine{
		provider:    cfg.Provider,
		logger:      logger,
		concurrency: concurrency,
	}
}

// RunAll evaluates every rule and returns one outcome per rule, in input
// order. Rules run concurrently up to the configured limit; a failing rule
// never stops the others.
func (e *Engine) RunAll(ctx context.Context, rules []core.Rule) []core.Outcome {
	outcomes := make([]core.Outcome, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, rule := range rules {
		g.Go(func() error {
			outcomes[i] = e.RunOne(gctx, rule)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// RunOne evaluates a single rule. It never returns an error: every failure
// mode is folded into the outcome's status and error message.
func (e *Engine) RunOne(ctx context.Context, rule core.Rule) core.Outcome {
	outcome := core.Outcome{
		RuleID:       rule.ID,
		RuleName:     rule.Name,
		SourceDetail: rule.Source.Detail(),
		TargetDetail: rule.Target.Detail(),
		ExecutedAt:   time.Now().UTC(),
	}

	if err := rule.Validate(); err != nil {
		return errorOutcome(outcome, err)
	}

	// Both queries are built before either side executes, so a dialect or
	// expression problem surfaces without touching any backend.
	sourceSQL, err := e.buildQuery(rule, rule.Source)
	if err != nil {
		return errorOutcome(outcome, fmt.Errorf("source: %w", err))
	}
	targetSQL, err := e.buildQuery(rule, rule.Target)
	if err != nil {
		outcome.SourceQuery = sourceSQL
		return errorOutcome(outcome, fmt.Errorf("target: %w", err))
	}
	outcome.SourceQuery = sourceSQL
	outcome.TargetQuery = targetSQL

	e.logger.Debug("evaluating rule",
		slog.String("rule", rule.ID),
		slog.String("source_query", sourceSQL),
		slog.String("target_query", targetSQL))

	// The target side is attempted even when the source side fails, so the
	// outcome records everything that could be observed.
	sourceValue, sourceErr := e.fetch(ctx, rule.Source.Connection, sourceSQL)
	targetValue, targetErr := e.fetch(ctx, rule.Target.Connection, targetSQL)
	outcome.SourceValue = sourceValue
	outcome.TargetValue = targetValue

	if sourceErr != nil || targetErr != nil {
		return errorOutcome(outcome, joinSideErrors(sourceErr, targetErr))
	}

	// NULL on either side is a comparison, not an error: two NULLs agree,
	// a NULL against a value does not.
	if sourceValue == nil || targetValue == nil {
		if sourceValue == nil && targetValue == nil {
			outcome.Status = core.StatusPass
		} else {
			outcome.Status = core.StatusFail
		}
		return outcome
	}

	diff := *targetValue - *sourceValue
	outcome.Difference = &diff
	if *sourceValue != 0 {
		pct := diff / *sourceValue
		outcome.PctDifference = &pct
	}

	outcome.Status = threshold.Evaluate(*sourceValue, *targetValue, rule.Threshold, rule.ThresholdValue)
	return outcome
}

// buildQuery resolves the connection's dialect and renders one side's query.
func (e *Engine) buildQuery(rule core.Rule, loc core.Locator) (string, error) {
	d, err := e.provider.Dialect(loc.Connection)
	if err != nil {
		return "", err
	}
	return query.Build(d, loc, rule.Aggregate, rule.CustomExpression)
}

// fetch acquires a session, runs the query, and coerces the scalar. A nil
// result with a nil error means the backend returned SQL NULL. Every failure
// on this path, session acquisition included, surfaces as a QueryError.
func (e *Engine) fetch(ctx context.Context, connection, sql string) (*float64, error) {
	sess, err := e.provider.Acquire(ctx, connection)
	if err != nil {
		return nil, core.AsQueryError(err)
	}
	defer sess.Release()

	raw, err := sess.QueryValue(ctx, sql)
	if err != nil {
		return nil, core.AsQueryError(err)
	}

	v, err := coerceNumeric(raw)
	if err != nil {
		return nil, core.AsQueryError(err)
	}
	return v, nil
}

// joinSideErrors folds the per-side failures into one deterministic message,
// source first.
func joinSideErrors(sourceErr, targetErr error) error {
	var parts []string
	if sourceErr != nil {
		parts = append(parts, fmt.Sprintf("source query: %v", sourceErr))
	}
	if targetErr != nil {
		parts = append(parts, fmt.Sprintf("target query: %v", targetErr))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

func errorOutcome(outcome core.Outcome, err error) core.Outcome {
	outcome.Status = core.StatusError
	outcome.ErrorMessage = err.Error()
	return outcome
}

// coerceNumeric converts a driver scalar into a float64. nil stays nil so
// SQL NULL is never confused with zero.
func coerceNumeric(v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}

	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric scalar %q", x)
		}
		f = parsed
	case []byte:
		return coerceNumeric(string(x))
	case bool:
		return nil, fmt.Errorf("non-numeric scalar type bool")
	default:
		return nil, fmt.Errorf("unsupported scalar type %T", v)
	}
	return &f, nil
}
