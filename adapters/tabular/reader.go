// Package tabular loads event tables from CSV and XLSX files: a header row
// of channel names followed by one numeric row per event.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cytostats/domain/cyto"
)

// Reader reads one sample's events from a tabular file. The format is
// chosen by extension: .xlsx reads the first sheet, everything else is
// treated as CSV.
type Reader struct {
	path string
	xlsx bool
}

// NewReader creates a reader for the file at path.
func NewReader(path string) *Reader {
	return &Reader{
		path: path,
		xlsx: strings.EqualFold(filepath.Ext(path), ".xlsx"),
	}
}

// ReadSample loads the file into a sample with the given name. An empty
// name defaults to the file base name without extension.
func (r *Reader) ReadSample(name string) (*cyto.Sample, error) {
	if name == "" {
		base := filepath.Base(r.path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	var rows [][]string
	var err error
	if r.xlsx {
		rows, err = r.readXLSX()
	} else {
		rows, err = r.readCSV()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%s: missing header row", r.path)
	}

	channels := rows[0]
	events := make([][]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(channels) {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d", r.path, i+2, len(row), len(channels))
		}
		event := make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %q: %v", r.path, i+2, channels[j], err)
			}
			event[j] = v
		}
		events = append(events, event)
	}
	return cyto.NewSample(name, channels, events)
}

func (r *Reader) readCSV() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := csv.NewReader(f)
	c.Comment = '#'
	return c.ReadAll()
}

func (r *Reader) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", r.path)
	}
	return f.GetRows(sheets[0])
}
