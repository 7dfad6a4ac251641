package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/tablesql"
)

// newDumpCommand creates the dump command.
func newDumpCommand() *cobra.Command {
	var (
		dsn       string
		tableName string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Read a database table and write it out as CSV",
		Example: `  # Dump a table to stdout
  tablesql dump --db sqlite://crime.db --table incidents

  # Dump to a compressed file
  tablesql dump --db postgres://localhost/app --table incidents -o incidents.csv.gz`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := tablesql.FromTable(cmd.Context(), tablesql.DSN(dsn), tableName)
			if err != nil {
				return err
			}

			if output == "" {
				return tablesql.WriteCSV(cmd.OutOrStdout(), ds)
			}
			return tablesql.WriteCSVFile(output, ds)
		},
	}

	cmd.Flags().StringVar(&dsn, "db", "", "Database DSN, like sqlite://file.db or postgres://host/db")
	cmd.Flags().StringVar(&tableName, "table", "", "Table to read")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout (.gz, .xz, .zst compress)")
	_ = cmd.MarkFlagRequired("db")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}
