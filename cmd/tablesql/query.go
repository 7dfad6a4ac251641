package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nao1215/tablesql"
)

// newQueryCommand creates the query command.
func newQueryCommand() *cobra.Command {
	var (
		tableName string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "query FILE SQL",
		Short: "Run SQL over a CSV or Excel file without a database server",
		Long: `Load the file into a private in-memory SQLite database and run the SQL
against it. The data is queryable as the table "data" unless --table
names it otherwise.`,
		Example: `  # Aggregate a CSV file
  tablesql query crime.csv "SELECT county, SUM(total) FROM data GROUP BY county"

  # Render the result as an aligned table
  tablesql query crime.csv "SELECT * FROM data LIMIT 10" --format table`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := readInput(args[0])
			if err != nil {
				return err
			}

			options := tablesql.NewQueryOptions().WithTableName(tableName)
			out, err := tablesql.Query(cmd.Context(), ds, args[1], options)
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				return tablesql.WriteCSV(cmd.OutOrStdout(), out)
			case "table":
				renderDataset(cmd, out)
				return nil
			default:
				return fmt.Errorf("unknown format: %s (want csv or table)", format)
			}
		},
	}

	cmd.Flags().StringVar(&tableName, "table", tablesql.DefaultTableName, "Name the file's data is queryable under")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv or table)")

	return cmd
}

// renderDataset prints a dataset as an aligned text table.
func renderDataset(cmd *cobra.Command, ds *tablesql.Dataset) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	columns := ds.Columns()
	headerRow := make(table.Row, len(columns))
	for i, col := range columns {
		headerRow[i] = col.Name
	}
	t.AppendHeader(headerRow)

	for _, row := range ds.Rows() {
		outRow := make(table.Row, len(columns))
		for i, v := range row {
			outRow[i] = tablesql.FormatValue(columns[i].Kind, v)
		}
		t.AppendRow(outRow)
	}
	t.Render()
}
