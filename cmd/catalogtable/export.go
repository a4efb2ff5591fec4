package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourusername/catalog-table/internal/usecase"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		filters filterFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the filtered records to an .xlsx file",
		Example: `  catalogtable export --price low --out cheap.xlsx`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := a.seed(cmd.Context())
			if err != nil {
				return err
			}

			ctrl := usecase.NewTableController(records, a.logger)
			filters.apply(ctrl, a.logger)
			visible := ctrl.VisibleRecords()

			path := out
			if path == "" {
				path = a.cfg.ExportPath
			}
			if err := a.catalog.Export(cmd.Context(), visible, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d records to %s\n", len(visible), len(records), path)
			return nil
		},
	}
	filters.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output .xlsx file (default export_path)")
	return cmd
}
