package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/crosscheck/internal/cli/config"
	"github.com/leapstack-labs/crosscheck/internal/rules"
)

// NewRulesCommand creates the rules command group.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the configured validation rules",
	}
	cmd.AddCommand(newRulesListCommand())
	return cmd
}

func newRulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the enabled rules from the rules file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())

			ruleList, err := rules.Load(cfg.RulesFile)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Aggregate", "Source", "Target", "Threshold"})

			for _, r := range ruleList {
				t.AppendRow(table.Row{
					r.ID,
					string(r.Aggregate),
					r.Source.Detail(),
					r.Target.Detail(),
					fmt.Sprintf("%s %v", r.Threshold, r.ThresholdValue),
				})
			}
			t.Render()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d enabled rules in %s\n", len(ruleList), cfg.RulesFile)
			return nil
		},
	}
}
