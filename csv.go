package tablesql

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nao1215/tablesql/domain/model"
)

const (
	csvDateLayout     = "2006-01-02"
	csvDateTimeLayout = "2006-01-02T15:04:05.999999999"
)

// ReadCSV parses CSV text into a dataset. The first record is the
// header and provides the column names; kinds are inferred from the
// remaining records' cells. Empty cells become nil values.
func ReadCSV(r io.Reader) (*Dataset, error) {
	csvReader := csv.NewReader(r)
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tablesql: failed to parse CSV: %w", err)
	}
	return datasetFromRecords(records)
}

// ReadCSVFile reads the CSV file at path into a dataset. Files ending
// in .gz, .bz2, .xz, or .zst are decompressed first.
func ReadCSVFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tablesql: failed to open %s: %w", path, err)
	}
	defer file.Close()

	compression, _ := compressionForPath(path)
	reader, closer, err := decompressReader(file, compression)
	if err != nil {
		return nil, err
	}
	defer closer()

	ds, err := ReadCSV(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	return ds, nil
}

// datasetFromRecords builds a dataset from string records: header row
// first, then data rows. Rows shorter than the header are padded with
// empty cells so ragged spreadsheet rows load cleanly.
func datasetFromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tablesql: empty input")
	}

	header := records[0]
	cells := make([][]string, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) > len(header) {
			return nil, fmt.Errorf("tablesql: row %d has %d cells but the header has %d", i+2, len(record), len(header))
		}
		row := make([]string, len(header))
		copy(row, record)
		cells = append(cells, row)
	}

	kinds := inferKinds(len(header), cells)
	columns := make([]model.Column, len(header))
	for i, name := range header {
		columns[i] = model.Column{Name: name, Kind: kinds[i]}
	}

	rows := make([]model.Row, len(cells))
	for r, record := range cells {
		row := make(model.Row, len(columns))
		for i, cell := range record {
			v, err := convertString(columns[i].Kind, cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", r+2, columns[i].Name, err)
			}
			row[i] = v
		}
		rows[r] = row
	}
	return model.NewDataset(columns, rows)
}

// WriteCSV renders the dataset as CSV: a header record of column names,
// then one record per row. Nil values become empty cells, dates render
// as 2006-01-02, timestamps as 2006-01-02T15:04:05, durations as
// HH:MM:SS clock text, and numbers as plain decimal strings.
func WriteCSV(w io.Writer, ds *Dataset) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("tablesql: failed to write CSV header: %w", err)
	}

	columns := ds.Columns()
	record := make([]string, len(columns))
	for _, row := range ds.Rows() {
		for i, v := range row {
			record[i] = FormatValue(columns[i].Kind, v)
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("tablesql: failed to write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteCSVFile writes the dataset as a CSV file at path. Paths ending
// in .gz, .xz, or .zst are compressed accordingly.
func WriteCSVFile(path string, ds *Dataset) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tablesql: failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	compression, _ := compressionForPath(path)
	writer, closer, err := compressWriter(file, compression)
	if err != nil {
		return err
	}

	if err := WriteCSV(writer, ds); err != nil {
		closer()
		return err
	}
	return closer()
}

// FormatValue renders one dataset value as cell text: the same
// formatting WriteCSV uses, exposed for other renderers.
func FormatValue(kind Kind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case model.Boolean:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b)
		}
	case model.Number:
		if n, ok := v.(decimal.Decimal); ok {
			return n.String()
		}
	case model.Date:
		if t, ok := v.(time.Time); ok {
			return t.Format(csvDateLayout)
		}
	case model.DateTime:
		if t, ok := v.(time.Time); ok {
			return t.Format(csvDateTimeLayout)
		}
	case model.TimeDelta:
		if d, ok := v.(time.Duration); ok {
			return formatInterval(d)
		}
	case model.Text:
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}
