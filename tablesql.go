// Package tablesql moves typed tabular datasets in and out of
// relational databases.
package tablesql

import (
	"github.com/nao1215/tablesql/domain/model"
)

// Kind identifies the type of every value in a dataset column.
type Kind = model.Kind

// The six column kinds.
const (
	// Boolean columns hold bool values.
	Boolean = model.Boolean
	// Number columns hold fixed-point decimal values.
	Number = model.Number
	// Date columns hold calendar dates with no time component.
	Date = model.Date
	// DateTime columns hold timestamps.
	DateTime = model.DateTime
	// TimeDelta columns hold durations.
	TimeDelta = model.TimeDelta
	// Text columns hold strings.
	Text = model.Text
)

// Column describes one dataset column: a name and a kind.
type Column = model.Column

// Row is one dataset row, ordered like the columns.
type Row = model.Row

// Dataset is an immutable table of typed columns and rows.
type Dataset = model.Dataset

// NewDataset builds a dataset from columns and rows. Column names must
// be unique, every row must have one value per column, and every value
// must be nil or its column kind's Go type.
func NewDataset(columns []Column, rows []Row) (*Dataset, error) {
	return model.NewDataset(columns, rows)
}
