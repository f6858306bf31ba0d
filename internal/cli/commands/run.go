package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/crosscheck/internal/cli/config"
	"github.com/leapstack-labs/crosscheck/internal/engine"
	"github.com/leapstack-labs/crosscheck/internal/report"
	"github.com/leapstack-labs/crosscheck/internal/rules"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Evaluate all validation rules and write a report",
		Long: `Run evaluates every enabled rule: it executes the source and target
aggregate queries, compares the results under each rule's threshold, and
writes a CSV report. The command exits non-zero if any rule fails or errors.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			ruleList, err := rules.Load(cfg.RulesFile)
			if err != nil {
				return err
			}
			if len(ruleList) == 0 {
				return fmt.Errorf("no enabled rules in %s", cfg.RulesFile)
			}

			manager, err := newManager(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = manager.CloseAll() }()

			eng := engine.New(engine.Config{
				Provider:    managerProvider{m: manager},
				Logger:      logger,
				Concurrency: cfg.Concurrency,
			})

			logger.Info("starting validation run",
				"rules", len(ruleList),
				"concurrency", cfg.Concurrency)

			outcomes := eng.RunAll(ctx, ruleList)

			reportPath := cfg.Report
			if reportPath == "" {
				reportPath = report.DefaultPath(cfg.ReportDir)
			}
			if err := report.WriteFile(reportPath, outcomes); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report.PrintSummary(out, outcomes)
			_, _ = fmt.Fprintf(out, "\nReport written to %s\n", reportPath)

			totals := report.Summarize(outcomes)
			if !totals.AllPassed() {
				return fmt.Errorf("%d of %d rules did not pass", totals.Fail+totals.Error, totals.Total())
			}
			return nil
		},
	}
}
