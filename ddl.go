package tablesql

import (
	"strings"
)

// CreateStatement compiles the CREATE TABLE statement that Write would
// issue for the dataset, without touching a database. An empty dialect
// selects the generic ANSI rendering.
//
// The output is deterministic: identical datasets and options yield
// byte-identical statements, terminated with a semicolon.
//
// Example:
//
//	ddl, err := tablesql.CreateStatement(ds, "users",
//		tablesql.NewDDLOptions().WithDialect(tablesql.DialectPostgreSQL))
func CreateStatement(ds *Dataset, tableName string, opts ...DDLOptions) (string, error) {
	options := NewDDLOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	def, err := buildDefinition(ds, tableName, options.Dialect, options.synthParams())
	if err != nil {
		return "", err
	}
	return renderCreateTable(def) + ";", nil
}

// renderCreateTable compiles the CREATE TABLE text for def, one column
// per line in dataset order, without a statement terminator.
func renderCreateTable(def *Definition) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(qualifyTable(def.Dialect, def.DBSchema, def.Name))
	b.WriteString(" (")
	for i, col := range def.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("\n\t")
		b.WriteString(quoteIdent(def.Dialect, col.Name))
		b.WriteString(" ")
		b.WriteString(col.Type.String())
		if !col.Nullable {
			b.WriteString(" NOT NULL")
		}
	}
	if len(def.Unique) > 0 {
		b.WriteString(", \n\tUNIQUE (")
		for i, name := range def.Unique {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteIdent(def.Dialect, name))
		}
		b.WriteString(")")
	}
	b.WriteString("\n)")
	return b.String()
}

// renderDropTable compiles the DROP TABLE text for def.
func renderDropTable(def *Definition) string {
	return "DROP TABLE " + qualifyTable(def.Dialect, def.DBSchema, def.Name)
}

// renderInsert compiles an INSERT statement covering nrows rows. Bind
// placeholders follow the dialect's style and are numbered consecutively
// across rows, so values bind in row-major order.
func renderInsert(def *Definition, prefixes []string, nrows int) string {
	var b strings.Builder
	b.WriteString("INSERT ")
	for _, p := range prefixes {
		b.WriteString(p)
		b.WriteString(" ")
	}
	b.WriteString("INTO ")
	b.WriteString(qualifyTable(def.Dialect, def.DBSchema, def.Name))
	b.WriteString(" (")
	for i, col := range def.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdent(def.Dialect, col.Name))
	}
	b.WriteString(") VALUES ")
	n := 1
	for r := 0; r < nrows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for c := range def.Columns {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(placeholder(def.Dialect, n))
			n++
		}
		b.WriteString(")")
	}
	return b.String()
}
