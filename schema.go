package tablesql

import (
	"fmt"
	"math"

	"github.com/nao1215/tablesql/domain/model"
)

// ColumnDef is one synthesized column of a table definition.
type ColumnDef struct {
	// Name is the column name.
	Name string
	// Type is the dialect-specific SQL type.
	Type SQLType
	// Nullable reports whether the column accepts NULL. A false value
	// renders as NOT NULL.
	Nullable bool
}

// Definition is a dialect-specific table definition synthesized from a
// dataset. A definition built for one dialect is never reused for
// another; synthesize again to target a different dialect.
type Definition struct {
	// Name is the table name.
	Name string
	// DBSchema is the optional schema namespace.
	DBSchema string
	// Dialect is the dialect the definition was synthesized for.
	Dialect string
	// Columns are the synthesized columns in dataset order.
	Columns []ColumnDef
	// Unique lists the columns of the optional table-level unique
	// constraint. Empty means no constraint.
	Unique []string
}

// synthParams are the synthesizer knobs shared by Write and CreateStatement.
type synthParams struct {
	dbSchema      string
	constraints   bool
	unique        []string
	minColumnLen  int
	lenMultiplier float64
}

func defaultSynthParams() synthParams {
	return synthParams{
		constraints:   true,
		minColumnLen:  1,
		lenMultiplier: 1,
	}
}

// buildDefinition synthesizes a table definition from the dataset for one
// dialect.
//
// With constraints enabled: text columns on dialects with mandatory
// character lengths get ceil(maximum length × multiplier) characters,
// falling back to unbounded TEXT over the dialect's budget and never
// dropping below the minimum column length; decimal columns on dialects
// with mandatory precision get precision 38 with the data's maximum
// scale; every column whose data holds no NULL becomes NOT NULL, except
// DateTime columns, which stay nullable so zero-value timestamps never
// trip server-side date validation. With constraints disabled every
// column is a bare nullable type.
func buildDefinition(ds *model.Dataset, tableName, dialect string, p synthParams) (*Definition, error) {
	columns := ds.Columns()
	if len(columns) == 0 {
		return nil, ErrEmptyDataset
	}

	def := &Definition{
		Name:     tableName,
		DBSchema: p.dbSchema,
		Dialect:  dialect,
		Columns:  make([]ColumnDef, 0, len(columns)),
		Unique:   p.unique,
	}

	for _, name := range p.unique {
		found := false
		for _, c := range columns {
			if c.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("tablesql: unique constraint references unknown column %q", name)
		}
	}

	for i, c := range columns {
		t, err := typeFor(dialect, c.Kind)
		if err != nil {
			return nil, err
		}

		nullable := true
		if p.constraints {
			switch c.Kind {
			case model.Text:
				if needsTextLength(dialect) {
					length := int(math.Ceil(float64(ds.MaxTextLength(i)) * p.lenMultiplier))
					if length > maxTextLength(dialect) {
						t = SQLType{Name: "TEXT"}
					} else {
						if length < p.minColumnLen {
							length = p.minColumnLen
						}
						t.Length = length
					}
				}
			case model.Number:
				if needsNumberPrecision(dialect) {
					t.Precision = 38
					t.Scale = ds.MaxScale(i)
				}
			}
			if c.Kind != model.DateTime && !ds.HasNulls(i) {
				nullable = false
			}
		}

		def.Columns = append(def.Columns, ColumnDef{Name: c.Name, Type: t, Nullable: nullable})
	}
	return def, nil
}
