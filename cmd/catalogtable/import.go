package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "import FILE",
		Short:   "Load a catalog file into the sqlite catalog database",
		Long:    `Parse an .xlsx, .json, .jsonc or .yaml catalog and replace the contents of the --db database with it.`,
		Example: `  catalogtable import products.xlsx --db data/catalog.db`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.DBPath == "" {
				return errors.New("import needs a database: pass --db or set db_path")
			}

			n, err := a.catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			summary, err := a.catalog.Summary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d records into %s\n", n, a.cfg.DBPath)
			fmt.Fprint(out, summary)
			return nil
		},
	}
}
