package main

import (
	"github.com/spf13/cobra"

	"github.com/yourusername/catalog-table/internal/delivery/cli"
	"github.com/yourusername/catalog-table/internal/usecase"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the filtered catalog table",
		Example: `  catalogtable list --price high --category electronics
  catalogtable list --date 01-01-2023 --rating 4`,
		Args: cobra.NoArgs,
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
			return cli.Print(cmd.OutOrStdout(), ctrl.VisibleRecords(), len(ctrl.Records()), a.source)
		},
	}
	filters.register(cmd)
	return cmd
}
