package export

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"cytostats/domain/stats"
	"cytostats/internal/errors"
)

const sheetName = "Sheet1"

// Excel writes a result table as an XLSX workbook with the table on the
// first sheet. A .xlsx extension is appended when the path has none.
type Excel struct{}

func (Excel) Export(path string, t *stats.Table) (string, error) {
	if filepath.Ext(path) == "" {
		path += ".xlsx"
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, t.Columns); err != nil {
		return "", err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			return "", err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", errors.ExportError("failed to save workbook", err)
	}
	return path, nil
}

func writeRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.ExportError("failed to address cell", err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		if v, err := stats.ParseValue(c); err == nil {
			values[i] = v
		} else {
			values[i] = c
		}
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return errors.ExportError("failed to write sheet row", err)
	}
	return nil
}
