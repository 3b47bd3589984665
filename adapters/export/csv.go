// Package export writes assembled result tables to files.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"cytostats/domain/stats"
	"cytostats/internal/errors"
)

// CSV writes a result table as comma-separated text with a header row and
// no row-index column. A .csv extension is appended when the path has none.
type CSV struct{}

func (CSV) Export(path string, t *stats.Table) (final string, err error) {
	if filepath.Ext(path) == "" {
		path += ".csv"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", errors.ExportError("failed to create csv file", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.ExportError("failed to close csv file", cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return "", errors.ExportError("failed to write csv header", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return "", errors.ExportError("failed to write csv rows", err)
	}
	return path, nil
}
