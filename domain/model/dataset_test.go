package model

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewDataset(t *testing.T) {
	t.Parallel()

	columns := []Column{
		{Name: "name", Kind: Text},
		{Name: "amount", Kind: Number},
		{Name: "joined", Kind: DateTime},
	}
	rows := []Row{
		{"alice", decimal.New(105, -1), time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"bob", nil, nil},
	}

	ds, err := NewDataset(columns, rows)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(ds.Columns()) != 3 {
		t.Errorf("expected 3 columns, got %d", len(ds.Columns()))
	}
	if len(ds.Rows()) != 2 {
		t.Errorf("expected 2 rows, got %d", len(ds.Rows()))
	}

	names := ds.ColumnNames()
	if names[0] != "name" || names[1] != "amount" || names[2] != "joined" {
		t.Errorf("unexpected column names: %v", names)
	}
}

func TestNewDataset_validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []Column
		rows    []Row
		wantErr error
	}{
		{
			name: "duplicate column name",
			columns: []Column{
				{Name: "id", Kind: Number},
				{Name: "id", Kind: Text},
			},
			rows:    nil,
			wantErr: ErrDuplicateColumnName,
		},
		{
			name: "row length mismatch",
			columns: []Column{
				{Name: "id", Kind: Number},
			},
			rows: []Row{
				{decimal.New(1, 0), "extra"},
			},
			wantErr: ErrRowLength,
		},
		{
			name: "value kind mismatch",
			columns: []Column{
				{Name: "id", Kind: Number},
			},
			rows: []Row{
				{"not a decimal"},
			},
			wantErr: ErrValueKind,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewDataset(tt.columns, tt.rows); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDataset_HasNulls(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset(
		[]Column{{Name: "a", Kind: Text}, {Name: "b", Kind: Text}},
		[]Row{{"x", nil}, {"y", "z"}},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if ds.HasNulls(0) {
		t.Error("expected column 0 to have no nulls")
	}
	if !ds.HasNulls(1) {
		t.Error("expected column 1 to have nulls")
	}
}

func TestDataset_MaxTextLength(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset(
		[]Column{{Name: "a", Kind: Text}},
		[]Row{{"ab"}, {"日本語のテキスト"}, {nil}, {"abcd"}},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Rune count, not byte count.
	if got := ds.MaxTextLength(0); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}

func TestDataset_MaxScale(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset(
		[]Column{{Name: "n", Kind: Number}},
		[]Row{
			{decimal.New(1, 0)},
			{decimal.New(1234, -3)},
			{decimal.New(15, -1)},
			{nil},
		},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := ds.MaxScale(0); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestDataset_MaxScale_integersOnly(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset(
		[]Column{{Name: "n", Kind: Number}},
		[]Row{{decimal.New(42, 0)}, {decimal.New(7, 2)}},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := ds.MaxScale(0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestDataset_Equal(t *testing.T) {
	t.Parallel()

	columns := []Column{{Name: "a", Kind: Text}, {Name: "n", Kind: Number}}
	rows := []Row{{"x", decimal.New(1, 0)}, {"y", nil}}

	d1, err := NewDataset(columns, rows)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	d2, err := NewDataset(
		[]Column{{Name: "a", Kind: Text}, {Name: "n", Kind: Number}},
		[]Row{{"x", decimal.New(10, -1)}, {"y", nil}},
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	d3, err := NewDataset(columns, []Row{{"x", decimal.New(1, 0)}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	d4, err := NewDataset([]Column{{Name: "a", Kind: Text}, {Name: "n", Kind: Text}}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !d1.Equal(d2) {
		t.Error("expected datasets with equivalent values to be equal")
	}
	if d1.Equal(d3) {
		t.Error("expected datasets with different row counts to be not equal")
	}
	if d1.Equal(d4) {
		t.Error("expected datasets with different column kinds to be not equal")
	}
}

func TestDataset_empty(t *testing.T) {
	t.Parallel()

	ds, err := NewDataset(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ds.Columns()) != 0 || len(ds.Rows()) != 0 {
		t.Error("expected empty dataset")
	}
}
