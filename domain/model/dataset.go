package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Dataset represents an in-memory table: ordered columns and rows of
// kind-typed values. A Dataset is immutable once built; bridge operations
// only read it.
type Dataset struct {
	columns []Column
	rows    []Row
}

// NewDataset builds a Dataset after validating that column names are
// unique, that every row matches the column count and that every value
// belongs to its column's kind.
func NewDataset(columns []Column, rows []Row) (*Dataset, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnName, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRowLength, i, len(row), len(columns))
		}
		for j, v := range row {
			if !validValue(columns[j].Kind, v) {
				return nil, fmt.Errorf("%w: column %q row %d holds %T", ErrValueKind, columns[j].Name, i, v)
			}
		}
	}
	return &Dataset{columns: columns, rows: rows}, nil
}

// Columns returns the dataset columns in order.
func (d *Dataset) Columns() []Column {
	return d.columns
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Rows returns the dataset rows in order.
func (d *Dataset) Rows() []Row {
	return d.rows
}

// HasNulls reports whether column col contains at least one NULL.
func (d *Dataset) HasNulls(col int) bool {
	for _, row := range d.rows {
		if row[col] == nil {
			return true
		}
	}
	return false
}

// MaxTextLength returns the maximum rune count over the non-NULL values
// of column col. It returns 0 when the column holds no text.
func (d *Dataset) MaxTextLength(col int) int {
	maxLen := 0
	for _, row := range d.rows {
		if s, ok := row[col].(string); ok {
			if n := utf8.RuneCountInString(s); n > maxLen {
				maxLen = n
			}
		}
	}
	return maxLen
}

// MaxScale returns the maximum count of decimal places over the non-NULL
// values of column col. It returns 0 when the column holds no decimals.
func (d *Dataset) MaxScale(col int) int {
	maxScale := 0
	for _, row := range d.rows {
		if n, ok := row[col].(decimal.Decimal); ok {
			if s := int(-n.Exponent()); s > maxScale {
				maxScale = s
			}
		}
	}
	return maxScale
}

// Equal compares two datasets column by column and row by row.
func (d *Dataset) Equal(d2 *Dataset) bool {
	if len(d.columns) != len(d2.columns) || len(d.rows) != len(d2.rows) {
		return false
	}
	for i, c := range d.columns {
		if c != d2.columns[i] {
			return false
		}
	}
	for i, r := range d.rows {
		if !r.Equal(d2.rows[i]) {
			return false
		}
	}
	return true
}
