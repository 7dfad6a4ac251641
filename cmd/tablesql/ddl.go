package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/tablesql"
)

// newDDLCommand creates the ddl command.
func newDDLCommand() *cobra.Command {
	var (
		tableName     string
		dialect       string
		dbSchema      string
		noConstraints bool
		unique        []string
	)

	cmd := &cobra.Command{
		Use:   "ddl FILE",
		Short: "Print the CREATE TABLE statement for a CSV or Excel file",
		Long: `Infer column kinds from a CSV or Excel file and print the CREATE TABLE
statement that would hold it, without connecting to a database.`,
		Example: `  # SQLite DDL for a CSV file
  tablesql ddl crime.csv

  # MySQL DDL with bounded text lengths
  tablesql ddl crime.csv --dialect mysql

  # Schema-qualified, with a unique constraint
  tablesql ddl crime.csv --dialect postgresql --db-schema staging --unique id`,
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

			options := tablesql.NewDDLOptions().
				WithDialect(dialect).
				WithDBSchema(dbSchema).
				WithUniqueConstraint(unique...)
			if noConstraints {
				options = options.WithoutConstraints()
			}

			ddl, err := tablesql.CreateStatement(ds, name, options)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ddl)
			return nil
		},
	}

	cmd.Flags().StringVar(&tableName, "table", "", "Table name (default: derived from the file name)")
	cmd.Flags().StringVar(&dialect, "dialect", tablesql.DialectSQLite, "SQL dialect (sqlite, postgresql, mysql, mssql, oracle, ingres, crate)")
	cmd.Flags().StringVar(&dbSchema, "db-schema", "", "Schema namespace to qualify the table with")
	cmd.Flags().BoolVar(&noConstraints, "no-constraints", false, "Render bare nullable columns with no lengths or precision")
	cmd.Flags().StringSliceVar(&unique, "unique", nil, "Columns for a table-level UNIQUE constraint")

	return cmd
}
