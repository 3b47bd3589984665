package stats

import (
	"fmt"
	"strings"

	"cytostats/domain/core"
)

// Table-level layout conversions. These are the inverse projections used
// when a table re-enters the pipeline (re-imported CSV, API payloads); a
// wide table converted to long and back reproduces the original up to
// row and column order.

// ToLong converts a wide-format table to long format. Count tables are
// returned unchanged (cloned) since counts are not per-channel.
func ToLong(t *Table, kind Kind) (*Table, error) {
	if kind == KindCount {
		return t.Clone(), nil
	}
	p := t.ColumnIndex(ColPopulation)
	if p < 0 {
		return nil, fmt.Errorf("%w: table has no %s column", core.ErrInvalidSample, ColPopulation)
	}

	keyCol, valueCol := ColMarker, kind.Label()
	if kind == KindFreq {
		keyCol, valueCol = ColParent, ColFrequency
	}

	meta := t.Columns[:p+1]
	keys := t.Columns[p+1:]
	out := &Table{Columns: append(append([]string(nil), meta...), keyCol, valueCol)}
	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: ragged table row", core.ErrInvalidSample)
		}
		for i, key := range keys {
			long := append([]string(nil), row[:p+1]...)
			long = append(long, key, row[p+1+i])
			out.Rows = append(out.Rows, long)
		}
	}
	return out, nil
}

// ToWide converts a long-format table to wide format. Key order follows
// first appearance; row order follows first appearance of each
// (metadata, population) group.
func ToWide(t *Table, kind Kind) (*Table, error) {
	if kind == KindCount {
		return t.Clone(), nil
	}
	p := t.ColumnIndex(ColPopulation)
	if p < 0 {
		return nil, fmt.Errorf("%w: table has no %s column", core.ErrInvalidSample, ColPopulation)
	}
	if len(t.Columns) != p+3 {
		return nil, fmt.Errorf("%w: long table must end with key and value columns", core.ErrInvalidSample)
	}

	var keys []string
	keySeen := make(map[string]int)
	var groups []string
	groupRows := make(map[string][]string)
	groupVals := make(map[string]map[string]string)

	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: ragged table row", core.ErrInvalidSample)
		}
		gk := strings.Join(row[:p+1], "\x00")
		if _, ok := groupVals[gk]; !ok {
			groups = append(groups, gk)
			groupRows[gk] = append([]string(nil), row[:p+1]...)
			groupVals[gk] = make(map[string]string)
		}
		key, val := row[p+1], row[p+2]
		if _, ok := keySeen[key]; !ok {
			keySeen[key] = len(keys)
			keys = append(keys, key)
		}
		groupVals[gk][key] = val
	}

	out := &Table{Columns: append(append([]string(nil), t.Columns[:p+1]...), keys...)}
	for _, gk := range groups {
		row := append([]string(nil), groupRows[gk]...)
		for _, key := range keys {
			row = append(row, groupVals[gk][key])
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
