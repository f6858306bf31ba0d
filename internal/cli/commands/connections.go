package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/crosscheck/internal/cli/config"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Inspect and test the configured connections",
	}
	cmd.AddCommand(newConnectionsTestCommand())
	cmd.AddCommand(newConnectionsListCommand())
	return cmd
}

func newConnectionsTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Connect and ping every configured connection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.GetConfig(ctx)
			logger := config.GetLogger(ctx)

			manager, err := newManager(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = manager.CloseAll() }()

			results := manager.TestAll(ctx)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Connection", "Type", "Status", "Details"})

			failed := 0
			for _, name := range manager.Names() {
				spec := cfg.Connections[name]
				if err := results[name]; err != nil {
					failed++
					t.AppendRow(table.Row{name, spec.Type, "FAILED", err.Error()})
				} else {
					t.AppendRow(table.Row{name, spec.Type, "OK", ""})
				}
			}
			t.Render()

			if failed > 0 {
				return fmt.Errorf("%d of %d connections failed", failed, len(results))
			}
			return nil
		},
	}
}

func newConnectionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured connections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Connection", "Type", "Endpoint"})

			for name, spec := range cfg.Connections {
				endpoint := spec.Path
				if endpoint == "" {
					endpoint = spec.Host
					if spec.Database != "" {
						endpoint += "/" + spec.Database
					}
				}
				t.AppendRow(table.Row{name, spec.Type, endpoint})
			}
			t.SortBy([]table.SortBy{{Name: "Connection", Mode: table.Asc}})
			t.Render()
			return nil
		},
	}
}
