package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourusername/catalog-table/internal/delivery/tui"
	"github.com/yourusername/catalog-table/internal/usecase"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog table",
		Long: `Open the catalog in an interactive table. The session log is written to
the configured log file because the table owns the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.seed(cmd.Context())
			if err != nil {
				return err
			}

			ctrl := usecase.NewTableController(records, a.logger)
			model := tui.New(ctrl, tui.Options{
				Exporter:    a.catalog,
				ExportPath:  a.cfg.ExportPath,
				TableHeight: a.cfg.TableHeight,
				Source:      a.source,
				Logger:      a.logger,
			})

			a.logger.Info("browse session started", "source", a.source, "records", len(records))
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			a.logger.Info("browse session ended", "remaining", len(ctrl.Records()))
			return nil
		},
	}
}
