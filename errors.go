package tablesql

import (
	"errors"
	"fmt"
	"strings"

	tablesqldriver "github.com/nao1215/tablesql/driver"
)

// Standard error values returned by bridge operations.
var (
	// ErrEmptyDataset indicates a dataset with no columns.
	ErrEmptyDataset = errors.New("tablesql: dataset has no columns")

	// ErrNoStatements indicates query text with no executable statements.
	ErrNoStatements = errors.New("tablesql: no statements in query")

	// ErrUnknownScheme indicates a connection string whose scheme matches
	// no supported engine.
	ErrUnknownScheme = tablesqldriver.ErrUnsupportedScheme

	// ErrTableNotFound indicates that the named table does not exist.
	ErrTableNotFound = errors.New("tablesql: table not found")

	// ErrNoDialect indicates a wrapped database handle without a dialect name.
	ErrNoDialect = errors.New("tablesql: dialect name is required")
)

// UnsupportedTypeError is returned when a native database type has no
// column kind, or a column kind has no SQL type for the requested dialect.
type UnsupportedTypeError struct {
	// Type is the offending type name.
	Type string
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return "tablesql: unsupported type: " + e.Type
}

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	Dialect   string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, dialect string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		Dialect:   dialect,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("tablesql: %s failed", ec.Operation))

	if ec.Dialect != "" {
		parts = append(parts, "dialect: "+ec.Dialect)
	}

	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}
