package tablesql

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nao1215/tablesql/domain/model"
)

// FromTable reads the named table into a dataset. Column kinds come from
// the live schema: each native column type maps to exactly one kind, and
// a type outside the supported set fails with UnsupportedTypeError. The
// whole table is read, unfiltered.
//
// The target may be a DSN (an engine opened and closed inside this
// call), a *DB (borrowed, never closed) or nil (an empty in-memory
// database, which fails with ErrTableNotFound).
//
// Example:
//
//	ds, err := tablesql.FromTable(ctx, tablesql.DSN("sqlite://crime.db"), "incidents")
func FromTable(ctx context.Context, target Target, tableName string, opts ...InferOptions) (*Dataset, error) {
	options := NewInferOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	s, err := resolveTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	defer s.release()

	ds, err := readTable(ctx, s, tableName, options)
	if err != nil {
		return nil, NewErrorContext("read table", s.dialect).WithTable(tableName).Error(err)
	}
	return ds, nil
}

// FromQuery runs the literal query text on a private in-memory SQLite
// database and builds a dataset from the result. Column kinds are
// inferred from the returned values, not from declared types, so they
// can differ from what FromTable reports for the same data.
//
// The statement is executed verbatim with no bind arguments; characters
// like % need no escaping.
func FromQuery(ctx context.Context, query string) (*Dataset, error) {
	s, err := ephemeralSession(ctx)
	if err != nil {
		return nil, err
	}
	defer s.release()

	ds, err := queryDataset(ctx, s, query)
	if err != nil {
		return nil, NewErrorContext("query", s.dialect).Error(err)
	}
	return ds, nil
}

// readTable introspects the table's columns and scans every row.
func readTable(ctx context.Context, s *session, tableName string, o InferOptions) (*model.Dataset, error) {
	columns, found, err := introspectColumns(ctx, s, tableName, o.IntervalTypes)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(s.dialect, tableName))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !found {
		// No catalog for this dialect; fall back to result-set metadata.
		columns, err = columnsFromResultSet(rows, o.IntervalTypes)
		if err != nil {
			return nil, err
		}
	}

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(names) != len(columns) {
		return nil, fmt.Errorf("catalog lists %d columns but the table returned %d", len(columns), len(names))
	}

	data, err := scanTypedRows(rows, columns)
	if err != nil {
		return nil, err
	}
	return model.NewDataset(columns, data)
}

// introspectColumns lists the table's columns and kinds from the
// dialect's catalog. found is false when the dialect has no catalog
// query and the caller should use result-set metadata instead.
func introspectColumns(ctx context.Context, s *session, tableName string, intervalTypes []string) (columns []model.Column, found bool, err error) {
	if s.dialect == DialectSQLite {
		columns, err := sqliteColumns(ctx, s, tableName, intervalTypes)
		return columns, true, err
	}

	query := columnTypesQuery(s.dialect)
	if query == "" {
		return nil, false, nil
	}

	rows, err := s.db.QueryContext(ctx, query, tableName)
	if err != nil {
		return nil, true, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, nativeType string
		if err := rows.Scan(&name, &nativeType); err != nil {
			return nil, true, err
		}
		kind, err := kindForNativeType(nativeType, intervalTypes)
		if err != nil {
			return nil, true, err
		}
		columns = append(columns, model.Column{Name: name, Kind: kind})
	}
	if err := rows.Err(); err != nil {
		return nil, true, err
	}
	if len(columns) == 0 {
		return nil, true, fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
	}
	return columns, true, nil
}

// sqliteColumns lists columns from PRAGMA table_info in declaration order.
func sqliteColumns(ctx context.Context, s *session, tableName string, intervalTypes []string) ([]model.Column, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info("+quoteIdent(DialectSQLite, tableName)+")")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []model.Column
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, declType   string
			dflt             any
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		kind, err := kindForNativeType(declType, intervalTypes)
		if err != nil {
			return nil, err
		}
		columns = append(columns, model.Column{Name: name, Kind: kind})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
	}
	return columns, nil
}

// columnsFromResultSet maps a result set's declared types to columns.
func columnsFromResultSet(rows *sql.Rows, intervalTypes []string) ([]model.Column, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	columns := make([]model.Column, 0, len(types))
	for _, ct := range types {
		kind, err := kindForNativeType(ct.DatabaseTypeName(), intervalTypes)
		if err != nil {
			return nil, err
		}
		columns = append(columns, model.Column{Name: ct.Name(), Kind: kind})
	}
	return columns, nil
}

// queryDataset executes one statement and builds a dataset from its
// result rows and declared column names, inferring kinds from the values.
func queryDataset(ctx context.Context, s *session, query string) (*model.Dataset, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	raw, err := collectRows(rows, len(names))
	if err != nil {
		return nil, err
	}

	kinds := inferValueKinds(len(names), raw)
	columns := make([]model.Column, len(names))
	for i, name := range names {
		columns[i] = model.Column{Name: name, Kind: kinds[i]}
	}

	data := make([]model.Row, len(raw))
	for r, rawRow := range raw {
		row := make(model.Row, len(columns))
		for i, v := range rawRow {
			cv, err := coerceValue(columns[i].Kind, v)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", columns[i].Name, err)
			}
			row[i] = cv
		}
		data[r] = row
	}
	return model.NewDataset(columns, data)
}

// collectRows scans every remaining row into memory. Byte slices are
// copied to strings because drivers may reuse their buffers.
func collectRows(rows *sql.Rows, columnCount int) ([][]any, error) {
	var out [][]any
	buf := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range buf {
		ptrs[i] = &buf[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]any, columnCount)
		for i, v := range buf {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			} else {
				row[i] = v
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// scanTypedRows scans every row, coercing values to their column kinds.
func scanTypedRows(rows *sql.Rows, columns []model.Column) ([]model.Row, error) {
	var out []model.Row
	buf := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range buf {
		ptrs[i] = &buf[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(model.Row, len(columns))
		for i, v := range buf {
			cv, err := coerceValue(columns[i].Kind, v)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", columns[i].Name, err)
			}
			row[i] = cv
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// kindForNativeType maps a native SQL type name to a column kind. Names
// are matched after upper-casing, stripping parenthesized arguments and
// collapsing whitespace. Interval names match first so dialect interval
// variants win over the general families; intervalTypes extends the
// built-in interval names per call. Any other name fails with
// UnsupportedTypeError.
func kindForNativeType(native string, intervalTypes []string) (model.Kind, error) {
	tag := normalizeTypeName(native)
	if tag == "" {
		return 0, &UnsupportedTypeError{Type: "(untyped)"}
	}

	if tag == "INTERVAL" || strings.HasPrefix(tag, "INTERVAL ") {
		return model.TimeDelta, nil
	}
	for _, extra := range intervalTypes {
		if tag == normalizeTypeName(extra) {
			return model.TimeDelta, nil
		}
	}

	switch tag {
	case "BOOL", "BOOLEAN", "BIT":
		return model.Boolean, nil
	case "INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT",
		"INT2", "INT4", "INT8", "SERIAL", "SMALLSERIAL", "BIGSERIAL",
		"UNSIGNED BIG INT",
		"DECIMAL", "NUMERIC", "NUMBER", "MONEY", "SMALLMONEY",
		"REAL", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "DOUBLE PRECISION":
		return model.Number, nil
	case "DATE":
		return model.Date, nil
	case "DATETIME", "DATETIME2", "SMALLDATETIME", "DATETIMEOFFSET",
		"TIMESTAMP", "TIMESTAMPTZ",
		"TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITHOUT TIME ZONE":
		return model.DateTime, nil
	case "CHAR", "NCHAR", "BPCHAR", "CHARACTER", "CHARACTER VARYING",
		"VARCHAR", "NVARCHAR", "VARCHAR2", "NVARCHAR2",
		"TEXT", "NTEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT", "CLOB":
		return model.Text, nil
	default:
		return 0, &UnsupportedTypeError{Type: tag}
	}
}

// normalizeTypeName upper-cases a native type name, strips parenthesized
// arguments and collapses whitespace, so "varchar(30)" becomes VARCHAR
// and "timestamp  without time zone" becomes TIMESTAMP WITHOUT TIME ZONE.
func normalizeTypeName(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// coerceValue converts a scanned driver value to the kind's Go type.
// Numbers always land as fixed-point decimals, including values the
// driver scanned as floats.
func coerceValue(kind model.Kind, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch kind {
	case model.Boolean:
		switch x := v.(type) {
		case bool:
			return x, nil
		case int64:
			return x != 0, nil
		case []byte:
			return parseBoolValue(string(x))
		case string:
			return parseBoolValue(x)
		}
	case model.Number:
		switch x := v.(type) {
		case int64:
			return decimal.NewFromInt(x), nil
		case float64:
			return decimal.NewFromFloat(x), nil
		case []byte:
			return parseDecimalValue(string(x))
		case string:
			return parseDecimalValue(x)
		}
	case model.Date, model.DateTime:
		switch x := v.(type) {
		case time.Time:
			return truncateForKind(kind, x), nil
		case []byte:
			return parseTimeValue(kind, string(x))
		case string:
			return parseTimeValue(kind, x)
		}
	case model.TimeDelta:
		switch x := v.(type) {
		case time.Duration:
			return x, nil
		case int64:
			// Bare numbers are seconds, the SQL epoch convention.
			return time.Duration(x) * time.Second, nil
		case float64:
			return time.Duration(x * float64(time.Second)), nil
		case []byte:
			return parseInterval(string(x))
		case string:
			return parseInterval(x)
		}
	case model.Text:
		switch x := v.(type) {
		case string:
			return x, nil
		case []byte:
			return string(x), nil
		case bool:
			return strconv.FormatBool(x), nil
		case int64:
			return strconv.FormatInt(x, 10), nil
		case float64:
			return strconv.FormatFloat(x, 'g', -1, 64), nil
		case time.Time:
			return x.Format(time.RFC3339), nil
		}
	}
	return nil, fmt.Errorf("cannot read %T as %s", v, kind)
}

// parseBoolValue reads stored boolean text. Unlike inference, it also
// accepts "1" and "0".
func parseBoolValue(s string) (any, error) {
	if b, ok := parseBoolToken(s); ok {
		return b, nil
	}
	switch strings.TrimSpace(s) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return nil, fmt.Errorf("cannot read %q as Boolean", s)
}

func parseDecimalValue(s string) (any, error) {
	n, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("cannot read %q as Number", s)
	}
	return n, nil
}

// storedTimeLayouts are the text layouts dates and timestamps come back
// in from drivers that store them as text.
var storedTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func parseTimeValue(kind model.Kind, s string) (any, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range storedTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return truncateForKind(kind, t), nil
		}
	}
	return nil, fmt.Errorf("cannot read %q as %s", s, kind)
}

// truncateForKind drops the time component for Date columns.
func truncateForKind(kind model.Kind, t time.Time) time.Time {
	if kind != model.Date {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseInterval reads interval text: "HH:MM:SS[.ffffff]" with unbounded
// hours, Go duration syntax, and the verbose "[N day[s]] HH:MM:SS" form
// PostgreSQL prints.
func parseInterval(s string) (any, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return nil, fmt.Errorf("cannot read %q as TimeDelta", s)
	}

	neg := false
	if strings.HasPrefix(str, "-") {
		neg = true
		str = strings.TrimSpace(str[1:])
	}

	var total time.Duration
	fields := strings.Fields(str)
	if len(fields) >= 2 && strings.HasPrefix(fields[1], "day") {
		days, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("cannot read %q as TimeDelta", s)
		}
		total += time.Duration(days) * 24 * time.Hour
		fields = fields[2:]
	}

	switch len(fields) {
	case 0:
	case 1:
		part := fields[0]
		if strings.Contains(part, ":") {
			d, err := parseClock(part)
			if err != nil {
				return nil, fmt.Errorf("cannot read %q as TimeDelta", s)
			}
			total += d
		} else {
			d, err := time.ParseDuration(part)
			if err != nil {
				return nil, fmt.Errorf("cannot read %q as TimeDelta", s)
			}
			total += d
		}
	default:
		return nil, fmt.Errorf("cannot read %q as TimeDelta", s)
	}

	if neg {
		total = -total
	}
	return total, nil
}
