package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/tablesql"
)

// newLoadCommand creates the load command.
func newLoadCommand(verbose *bool) *cobra.Command {
	var (
		dsn       string
		tableName string
		dbSchema  string
		overwrite bool
		chunkSize int
		prefixes  []string
	)

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Create a table from a CSV or Excel file and insert its rows",
		Example: `  # Load a CSV into a SQLite database file
  tablesql load crime.csv --db sqlite://crime.db

  # Replace an existing PostgreSQL table, 500 rows per INSERT
  tablesql load crime.csv --db postgres://localhost/app --table crime --overwrite --chunk-size 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readInput(args[0])
			if err != nil {
				return err
			}

			name := tableName
			if name == "" {
				name = tableNameFromPath(args[0])
			}

			options := tablesql.NewWriteOptions().
				WithOverwrite(overwrite).
				WithDBSchema(dbSchema).
				WithChunkSize(chunkSize).
				WithPrefixes(prefixes...).
				WithLogger(newLogger(*verbose))

			if _, err := tablesql.Write(cmd.Context(), ds, tablesql.DSN(dsn), name, options); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d rows into %s\n", len(ds.Rows()), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "db", "", "Database DSN, like sqlite://file.db or postgres://host/db")
	cmd.Flags().StringVar(&tableName, "table", "", "Table name (default: derived from the file name)")
	cmd.Flags().StringVar(&dbSchema, "db-schema", "", "Schema namespace to create the table in")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Drop the table first if it exists")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Rows per INSERT statement (0 inserts all rows at once)")
	cmd.Flags().StringSliceVar(&prefixes, "prefix", nil, "Keywords placed between INSERT and INTO, like \"OR IGNORE\"")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
