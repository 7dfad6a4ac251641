// Package model provides the tabular domain model for tablesql.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the value domain of a dataset column.
type Kind int

const (
	// Boolean holds true/false values.
	Boolean Kind = iota
	// Number holds fixed-point decimal values.
	Number
	// Date holds calendar dates without a time component.
	Date
	// DateTime holds timestamps.
	DateTime
	// TimeDelta holds elapsed-time values.
	TimeDelta
	// Text holds character data.
	Text
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Boolean:
		return "Boolean"
	case Number:
		return "Number"
	case Date:
		return "Date"
	case DateTime:
		return "DateTime"
	case TimeDelta:
		return "TimeDelta"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Column describes a dataset column.
type Column struct {
	// Name is the column name, unique within a dataset.
	Name string
	// Kind is the column's value domain.
	Kind Kind
}

// Row is one dataset row. Values are typed per the column kind: bool for
// Boolean, decimal.Decimal for Number, time.Time for Date and DateTime,
// time.Duration for TimeDelta and string for Text. SQL NULL is untyped nil.
type Row []any

// Equal compares two rows value by value.
func (r Row) Equal(r2 Row) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if !ValueEqual(v, r2[i]) {
			return false
		}
	}
	return true
}

// ValueEqual compares two dataset values. Decimals compare by numeric
// value and times by instant, so differing representations of the same
// value are equal.
func ValueEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}

// validValue reports whether v belongs to the kind's value domain.
// Untyped nil represents SQL NULL and is valid for every kind.
func validValue(k Kind, v any) bool {
	if v == nil {
		return true
	}
	switch k {
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Number:
		_, ok := v.(decimal.Decimal)
		return ok
	case Date, DateTime:
		_, ok := v.(time.Time)
		return ok
	case TimeDelta:
		_, ok := v.(time.Duration)
		return ok
	case Text:
		_, ok := v.(string)
		return ok
	default:
		return false
	}
}
