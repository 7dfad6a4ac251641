// Package tablesql moves typed tabular datasets in and out of relational
// databases.
//
// tablesql bridges an in-memory dataset model of six column kinds
// (Boolean, Number, Date, DateTime, TimeDelta, Text) and SQL schemas.
// It synthesizes dialect-correct DDL from a dataset, materializes the
// dataset as a table, reads tables and query results back as datasets
// with their kinds recovered, and runs ad-hoc SQL over a dataset through
// a scratch in-memory SQLite database.
//
// # Features
//
//   - Synthesize CREATE TABLE text for SQLite, PostgreSQL, MySQL,
//     SQL Server, Oracle, Ingres, and CrateDB
//   - Create and fill tables with chunked multi-row inserts
//   - Read a table or raw query result back as a typed dataset
//   - Run SQL against a dataset without a database server
//   - Load CSV and Excel (XLSX) files, including gzip, bzip2, xz, and
//     zstandard compressed CSV
//
// # Basic Usage
//
// Write a dataset to a database and read it back:
//
//	ds, err := tablesql.NewDataset(columns, rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = tablesql.Write(ctx, ds, tablesql.DSN("sqlite://crime.db"), "incidents")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	back, err := tablesql.FromTable(ctx, tablesql.DSN("sqlite://crime.db"), "incidents")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Running SQL on a Dataset
//
// Query loads the dataset into a private in-memory SQLite database, so
// no server is needed:
//
//	out, err := tablesql.Query(ctx, ds, "SELECT county, SUM(total) FROM data GROUP BY county")
//
// # Reusing a Connection
//
// Wrap an existing *sql.DB to keep connection ownership with the caller;
// tablesql never closes a wrapped handle:
//
//	target := tablesql.WrapDB(db, tablesql.DialectPostgreSQL)
//	_, err := tablesql.Write(ctx, ds, target, "incidents",
//	    tablesql.NewWriteOptions().WithOverwrite(true))
//
// # DDL Without a Database
//
// CreateStatement returns the CREATE TABLE text for any supported
// dialect without connecting to anything:
//
//	ddl, err := tablesql.CreateStatement(ds, "incidents",
//	    tablesql.NewDDLOptions().WithDialect(tablesql.DialectMySQL))
//
// # Column Kinds
//
// Every column carries exactly one kind, and every value in the column
// is that kind's Go type or nil. Numbers are fixed-point decimals in
// every direction; floats read from a database are converted, never
// passed through.
package tablesql
