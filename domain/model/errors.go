package model

import "errors"

// ErrDuplicateColumnName is returned when dataset columns share a name.
var ErrDuplicateColumnName = errors.New("duplicate column name")

// ErrRowLength is returned when a row does not match the column count.
var ErrRowLength = errors.New("row length does not match column count")

// ErrValueKind is returned when a value does not belong to its column's kind.
var ErrValueKind = errors.New("value does not match column kind")
