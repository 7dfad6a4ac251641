package tablesql

import (
	"io"
	"log/slog"
)

// WriteOptions configures how a dataset is materialized into a database
// table.
//
// Example:
//
//	options := tablesql.NewWriteOptions().
//		WithOverwrite(true).
//		WithChunkSize(500)
//
//	def, err := tablesql.Write(ctx, ds, tablesql.DSN("postgres://..."), "users", options)
type WriteOptions struct {
	// Create controls whether the table is created before inserting.
	Create bool
	// Overwrite drops an existing table before creating it.
	Overwrite bool
	// CreateIfNotExists skips creation when the table already exists
	// instead of surfacing the database's error.
	CreateIfNotExists bool
	// Insert controls whether the dataset rows are inserted.
	Insert bool
	// Prefixes are keywords placed between INSERT and INTO, such as
	// "OR IGNORE" or "DELAYED".
	Prefixes []string
	// DBSchema is the schema namespace to create and insert into.
	DBSchema string
	// Constraints controls whether NOT NULL, character lengths and
	// decimal precision are derived from the data.
	Constraints bool
	// UniqueConstraint lists columns for a table-level UNIQUE constraint.
	UniqueConstraint []string
	// ChunkSize is the number of rows per INSERT statement. Zero or less
	// writes all rows in one statement.
	ChunkSize int
	// MinColumnLen is the smallest character length given to a bounded
	// text column.
	MinColumnLen int
	// ColumnLenMultiplier scales measured text lengths to leave headroom
	// for rows outside the dataset.
	ColumnLenMultiplier float64
	// Logger receives debug events for DDL and batch progress. Nil keeps
	// the bridge silent.
	Logger *slog.Logger
}

// NewWriteOptions creates default write options: create the table, derive
// constraints, insert all rows in a single statement.
//
// Modify with:
//   - WithOverwrite(): Drop an existing table first
//   - WithCreateIfNotExists(): Tolerate an existing table
//   - WithChunkSize(): Bound rows per INSERT
//   - WithPrefixes(): Add INSERT keywords
//   - WithoutCreate() / WithoutInsert(): Run only half the flow
func NewWriteOptions() WriteOptions {
	return WriteOptions{
		Create:              true,
		Insert:              true,
		Constraints:         true,
		MinColumnLen:        1,
		ColumnLenMultiplier: 1,
	}
}

// WithOverwrite drops an existing table before creating it.
func (o WriteOptions) WithOverwrite(overwrite bool) WriteOptions {
	o.Overwrite = overwrite
	return o
}

// WithCreateIfNotExists skips creation when the table already exists.
func (o WriteOptions) WithCreateIfNotExists(skip bool) WriteOptions {
	o.CreateIfNotExists = skip
	return o
}

// WithoutCreate leaves table creation to the caller and only inserts.
func (o WriteOptions) WithoutCreate() WriteOptions {
	o.Create = false
	return o
}

// WithoutInsert creates the table but writes no rows.
func (o WriteOptions) WithoutInsert() WriteOptions {
	o.Insert = false
	return o
}

// WithPrefixes places keywords between INSERT and INTO.
func (o WriteOptions) WithPrefixes(prefixes ...string) WriteOptions {
	o.Prefixes = prefixes
	return o
}

// WithDBSchema sets the schema namespace for the table.
func (o WriteOptions) WithDBSchema(dbSchema string) WriteOptions {
	o.DBSchema = dbSchema
	return o
}

// WithoutConstraints synthesizes bare nullable columns with no lengths
// or precision.
func (o WriteOptions) WithoutConstraints() WriteOptions {
	o.Constraints = false
	return o
}

// WithUniqueConstraint adds a table-level UNIQUE constraint over the
// named columns.
func (o WriteOptions) WithUniqueConstraint(columns ...string) WriteOptions {
	o.UniqueConstraint = columns
	return o
}

// WithChunkSize bounds the number of rows per INSERT statement.
func (o WriteOptions) WithChunkSize(chunkSize int) WriteOptions {
	o.ChunkSize = chunkSize
	return o
}

// WithMinColumnLen sets the smallest character length for bounded text
// columns.
func (o WriteOptions) WithMinColumnLen(minLen int) WriteOptions {
	o.MinColumnLen = minLen
	return o
}

// WithColumnLenMultiplier scales measured text lengths.
func (o WriteOptions) WithColumnLenMultiplier(multiplier float64) WriteOptions {
	o.ColumnLenMultiplier = multiplier
	return o
}

// WithLogger emits debug events for DDL and batch progress to l.
func (o WriteOptions) WithLogger(l *slog.Logger) WriteOptions {
	o.Logger = l
	return o
}

func (o WriteOptions) synthParams() synthParams {
	return synthParams{
		dbSchema:      o.DBSchema,
		constraints:   o.Constraints,
		unique:        o.UniqueConstraint,
		minColumnLen:  o.MinColumnLen,
		lenMultiplier: o.ColumnLenMultiplier,
	}
}

// logger returns the configured logger or a silent one.
func (o WriteOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DDLOptions configures CreateStatement.
//
// Example:
//
//	options := tablesql.NewDDLOptions().
//		WithDialect(tablesql.DialectMySQL).
//		WithUniqueConstraint("id")
type DDLOptions struct {
	// Dialect selects the SQL dialect. Empty renders generic ANSI DDL.
	Dialect string
	// DBSchema is the schema namespace to qualify the table with.
	DBSchema string
	// Constraints controls whether NOT NULL, character lengths and
	// decimal precision are derived from the data.
	Constraints bool
	// UniqueConstraint lists columns for a table-level UNIQUE constraint.
	UniqueConstraint []string
	// MinColumnLen is the smallest character length given to a bounded
	// text column.
	MinColumnLen int
	// ColumnLenMultiplier scales measured text lengths.
	ColumnLenMultiplier float64
}

// NewDDLOptions creates default DDL options: generic dialect with
// data-derived constraints.
func NewDDLOptions() DDLOptions {
	return DDLOptions{
		Constraints:         true,
		MinColumnLen:        1,
		ColumnLenMultiplier: 1,
	}
}

// WithDialect selects the SQL dialect to render for.
func (o DDLOptions) WithDialect(dialect string) DDLOptions {
	o.Dialect = dialect
	return o
}

// WithDBSchema sets the schema namespace for the table.
func (o DDLOptions) WithDBSchema(dbSchema string) DDLOptions {
	o.DBSchema = dbSchema
	return o
}

// WithoutConstraints renders bare nullable columns.
func (o DDLOptions) WithoutConstraints() DDLOptions {
	o.Constraints = false
	return o
}

// WithUniqueConstraint adds a table-level UNIQUE constraint over the
// named columns.
func (o DDLOptions) WithUniqueConstraint(columns ...string) DDLOptions {
	o.UniqueConstraint = columns
	return o
}

// WithMinColumnLen sets the smallest character length for bounded text
// columns.
func (o DDLOptions) WithMinColumnLen(minLen int) DDLOptions {
	o.MinColumnLen = minLen
	return o
}

// WithColumnLenMultiplier scales measured text lengths.
func (o DDLOptions) WithColumnLenMultiplier(multiplier float64) DDLOptions {
	o.ColumnLenMultiplier = multiplier
	return o
}

func (o DDLOptions) synthParams() synthParams {
	return synthParams{
		dbSchema:      o.DBSchema,
		constraints:   o.Constraints,
		unique:        o.UniqueConstraint,
		minColumnLen:  o.MinColumnLen,
		lenMultiplier: o.ColumnLenMultiplier,
	}
}

// QueryOptions configures Query.
type QueryOptions struct {
	// TableName is the name the dataset is materialized under for the
	// duration of the query. Defaults to "data".
	TableName string
}

// NewQueryOptions creates default query options.
func NewQueryOptions() QueryOptions {
	return QueryOptions{
		TableName: DefaultTableName,
	}
}

// WithTableName sets the name the dataset is queryable under.
func (o QueryOptions) WithTableName(name string) QueryOptions {
	o.TableName = name
	return o
}

// InferOptions configures FromTable.
type InferOptions struct {
	// IntervalTypes lists additional native type names treated as
	// elapsed-time columns, on top of the built-in interval names.
	IntervalTypes []string
}

// NewInferOptions creates default inference options.
func NewInferOptions() InferOptions {
	return InferOptions{}
}

// WithIntervalTypes treats the given native type names as elapsed-time
// columns.
func (o InferOptions) WithIntervalTypes(types ...string) InferOptions {
	o.IntervalTypes = types
	return o
}
