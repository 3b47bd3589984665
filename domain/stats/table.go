package stats

import "strconv"

// Table is a flat tabular result: a header row of column names and string
// cells, ready for delimited or spreadsheet export. Numeric cells are
// formatted with full float64 round-trip precision.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		c.Rows[i] = append([]string(nil), row...)
	}
	return c
}

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// FormatValue renders a statistic value as a table cell.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseValue parses a table cell back into a statistic value.
func ParseValue(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
