package tablesql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/tablesql/domain/model"
)

// Dialect names understood by the bridge. Any other name receives the
// default ANSI column types and double-quoted identifiers.
const (
	// DialectSQLite is the SQLite dialect, also used by the ephemeral store.
	DialectSQLite = "sqlite"
	// DialectPostgreSQL is the PostgreSQL dialect.
	DialectPostgreSQL = "postgresql"
	// DialectMySQL is the MySQL dialect.
	DialectMySQL = "mysql"
	// DialectMSSQL is the Microsoft SQL Server dialect.
	DialectMSSQL = "mssql"
	// DialectOracle is the Oracle dialect (DDL generation only).
	DialectOracle = "oracle"
	// DialectIngres is the Ingres dialect (DDL generation only).
	DialectIngres = "ingres"
	// DialectCrate is the CrateDB dialect (DDL generation only).
	DialectCrate = "crate"
)

// SQLType is a rendered SQL column type: a base name with an optional
// length or precision/scale argument.
type SQLType struct {
	// Name is the base type name, e.g. "VARCHAR" or "DECIMAL".
	Name string
	// Length is the character length argument. 0 means none.
	Length int
	// Precision is the numeric precision argument. 0 means none.
	Precision int
	// Scale is the numeric scale argument, meaningful only with Precision.
	Scale int
}

// String renders the type as it appears in DDL.
func (t SQLType) String() string {
	if t.Precision > 0 {
		return fmt.Sprintf("%s(%d, %d)", t.Name, t.Precision, t.Scale)
	}
	if t.Length > 0 {
		return fmt.Sprintf("%s(%d)", t.Name, t.Length)
	}
	return t.Name
}

// typeFor maps a column kind to its SQL type for the given dialect. The
// result is constructed fresh on every call, so callers may attach a
// length or precision without affecting later calls or other goroutines.
func typeFor(dialect string, kind model.Kind) (SQLType, error) {
	switch kind {
	case model.Boolean:
		if dialect == DialectMSSQL {
			return SQLType{Name: "BIT"}, nil
		}
		return SQLType{Name: "BOOLEAN"}, nil
	case model.Number:
		if dialect == DialectCrate || dialect == DialectSQLite {
			return SQLType{Name: "FLOAT"}, nil
		}
		return SQLType{Name: "DECIMAL"}, nil
	case model.Date:
		return SQLType{Name: "DATE"}, nil
	case model.DateTime:
		if dialect == DialectMSSQL {
			return SQLType{Name: "DATETIME"}, nil
		}
		return SQLType{Name: "TIMESTAMP"}, nil
	case model.TimeDelta:
		if dialect == DialectOracle {
			return SQLType{Name: "INTERVAL DAY TO SECOND"}, nil
		}
		return SQLType{Name: "INTERVAL"}, nil
	case model.Text:
		return SQLType{Name: "VARCHAR"}, nil
	default:
		return SQLType{}, &UnsupportedTypeError{Type: kind.String()}
	}
}

// maxTextLength returns the dialect's bounded VARCHAR budget in
// characters. 0 means the bridge enforces no budget for the dialect.
func maxTextLength(dialect string) int {
	switch dialect {
	case DialectMySQL:
		return 21844
	case DialectIngres:
		return 10666
	default:
		return 0
	}
}

// needsTextLength reports whether the dialect requires an explicit
// character length on text columns.
func needsTextLength(dialect string) bool {
	return dialect == DialectMySQL || dialect == DialectIngres
}

// needsNumberPrecision reports whether the dialect requires an explicit
// precision and scale on decimal columns.
func needsNumberPrecision(dialect string) bool {
	switch dialect {
	case DialectIngres, DialectMSSQL, DialectMySQL, DialectOracle:
		return true
	default:
		return false
	}
}

// quoteIdent quotes a single identifier for the dialect.
func quoteIdent(dialect, name string) string {
	switch dialect {
	case DialectMySQL:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case DialectMSSQL:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// qualifyTable renders a table reference, schema-prefixed when dbSchema
// is set. Table names are never split on dots; a schema arrives only
// through this argument.
func qualifyTable(dialect, dbSchema, table string) string {
	if dbSchema != "" {
		return quoteIdent(dialect, dbSchema) + "." + quoteIdent(dialect, table)
	}
	return quoteIdent(dialect, table)
}

// placeholder renders the dialect's bind parameter for 1-based index n.
func placeholder(dialect string, n int) string {
	switch dialect {
	case DialectPostgreSQL, DialectCrate:
		return "$" + strconv.Itoa(n)
	case DialectMSSQL:
		return "@p" + strconv.Itoa(n)
	default:
		return "?"
	}
}

// tableExistsQuery returns the catalog query counting tables with a given
// name. When withSchema is true the query takes (name, schema) arguments
// and an empty schema selects the connection's default namespace;
// otherwise it takes the name alone.
func tableExistsQuery(dialect string) (query string, withSchema bool) {
	switch dialect {
	case DialectSQLite:
		return "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", false
	case DialectPostgreSQL, DialectCrate:
		return "SELECT count(*) FROM information_schema.tables WHERE table_name = $1 AND table_schema = coalesce(nullif($2, ''), current_schema())", true
	case DialectMySQL:
		return "SELECT count(*) FROM information_schema.tables WHERE table_name = ? AND table_schema = coalesce(nullif(?, ''), database())", true
	case DialectMSSQL:
		return "SELECT count(*) FROM information_schema.tables WHERE table_name = @p1 AND table_schema = coalesce(nullif(@p2, ''), schema_name())", true
	default:
		return "SELECT count(*) FROM information_schema.tables WHERE table_name = ?", false
	}
}

// columnTypesQuery returns the catalog query listing (column name, native
// type name) for a table in ordinal order. It returns "" for dialects
// whose catalog the bridge does not know; callers then fall back to
// result-set metadata.
func columnTypesQuery(dialect string) string {
	switch dialect {
	case DialectPostgreSQL, DialectCrate:
		return "SELECT column_name, data_type FROM information_schema.columns WHERE table_name = $1 AND table_schema = current_schema() ORDER BY ordinal_position"
	case DialectMySQL:
		return "SELECT column_name, data_type FROM information_schema.columns WHERE table_name = ? AND table_schema = database() ORDER BY ordinal_position"
	case DialectMSSQL:
		return "SELECT column_name, data_type FROM information_schema.columns WHERE table_name = @p1 AND table_schema = schema_name() ORDER BY ordinal_position"
	default:
		return ""
	}
}
