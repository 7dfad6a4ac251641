package tablesql

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of an Excel workbook into a dataset. The
// first sheet is read unless a sheet name is given. The sheet's first
// row is the header; kinds are inferred from the remaining cells the
// same way ReadCSV infers them.
func ReadXLSX(path string, sheet ...string) (*Dataset, error) {
	xlsxFile, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("tablesql: failed to open %s: %w", path, err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("tablesql: no sheets found in Excel file: %s", path)
	}

	sheetName := sheetNames[0]
	if len(sheet) > 0 && sheet[0] != "" {
		sheetName = sheet[0]
		if !slices.Contains(sheetNames, sheetName) {
			return nil, fmt.Errorf("tablesql: no sheet %q in Excel file: %s", sheetName, path)
		}
	}

	rows, err := xlsxFile.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("tablesql: failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tablesql: sheet %s is empty in Excel file: %s", sheetName, path)
	}

	// Excel trims trailing empty cells, so datasetFromRecords pads
	// short rows back out to the header width.
	return datasetFromRecords(rows)
}
