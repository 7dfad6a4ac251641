// Package main provides the tablesql command-line interface.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/tablesql"
)

// Version is set at build time.
var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "tablesql",
		Short: "tablesql - move typed tabular data in and out of SQL databases",
		Long: `tablesql reads CSV and Excel files as typed datasets and bridges them
to relational databases: it prints dialect-correct CREATE TABLE
statements, loads datasets into tables, runs SQL over files without a
database server, and dumps tables back out as CSV.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newDDLCommand())
	rootCmd.AddCommand(newLoadCommand(&verbose))
	rootCmd.AddCommand(newQueryCommand())
	rootCmd.AddCommand(newDumpCommand())
	return rootCmd
}

// newLogger returns a stderr debug logger when verbose, a silent one
// otherwise.
func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// readInput loads a CSV or Excel file as a dataset, picked by extension.
func readInput(path string) (*tablesql.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return tablesql.ReadXLSX(path)
	}
	return tablesql.ReadCSVFile(path)
}

// tableNameFromPath derives a table name from a file path: the base name
// with every extension stripped, so "data/crime.csv.gz" becomes "crime".
func tableNameFromPath(path string) string {
	name := filepath.Base(path)
	for {
		ext := filepath.Ext(name)
		if ext == "" || ext == name {
			return name
		}
		name = strings.TrimSuffix(name, ext)
	}
}
