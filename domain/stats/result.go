package stats

import (
	"cytostats/domain/cyto"
)

// Column names shared by both output layouts.
const (
	ColPopulation = "Population"
	ColMarker     = "Marker"
	ColParent     = "Parent"
	ColFrequency  = "Frequency"
)

// Quad is the canonical result element: one computed scalar for a
// (sample, population, key) triple. Key is the channel for per-channel
// statistics, the parent alias for frequencies, and empty for counts.
// Wide and long tables are pure projections of the quad list; the quad
// order is the row order contract (sample, then alias, then key).
type Quad struct {
	Sample     string
	Population string
	Key        string
	Value      float64
}

// ResultSet is the assembled outcome of one pipeline invocation.
type ResultSet struct {
	Kind     Kind
	Samples  []string // sample order, as enumerated by the source
	Aliases  []string // population order, as requested
	Channels []string // per-channel kinds: channel order
	Parents  []string // freq: parent order
	Details  *cyto.Details
	Quads    []Quad
	Warnings []Warning
}

// keys returns the inner iteration keys for the kind.
func (r *ResultSet) keys() []string {
	switch {
	case r.Kind == KindFreq:
		return r.Parents
	case r.Kind.PerChannel():
		return r.Channels
	}
	return []string{""}
}

func (r *ResultSet) valueIndex() map[[3]string]float64 {
	idx := make(map[[3]string]float64, len(r.Quads))
	for _, q := range r.Quads {
		idx[[3]string{q.Sample, q.Population, q.Key}] = q.Value
	}
	return idx
}

// Wide projects the result set to wide format: one row per
// (sample, population) with one value column per key. Metadata columns
// precede statistic columns.
func (r *ResultSet) Wide() *Table {
	keys := r.keys()
	meta := r.Details.Columns()

	columns := append(meta, ColPopulation)
	if r.Kind.PerChannel() || r.Kind == KindFreq {
		columns = append(columns, keys...)
	} else {
		columns = append(columns, r.Kind.Label())
	}

	idx := r.valueIndex()
	t := &Table{Columns: columns}
	for _, sample := range r.Samples {
		metaRow := r.Details.Row(sample)
		for _, alias := range r.Aliases {
			row := append(append([]string(nil), metaRow...), alias)
			for _, key := range keys {
				row = append(row, FormatValue(idx[[3]string{sample, alias, key}]))
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// Long projects the result set to long format: one row per
// (sample, population, key). Per-channel statistics melt into a Marker
// column and a statistic-labelled value column; frequencies melt across
// parents into Parent and Frequency columns. Count is single-valued per
// population and is identical in both layouts.
func (r *ResultSet) Long() *Table {
	if r.Kind == KindCount {
		return r.Wide()
	}

	meta := r.Details.Columns()
	keyCol, valueCol := ColMarker, r.Kind.Label()
	if r.Kind == KindFreq {
		keyCol, valueCol = ColParent, ColFrequency
	}
	columns := append(append(meta, ColPopulation), keyCol, valueCol)

	keys := r.keys()
	idx := r.valueIndex()
	t := &Table{Columns: columns}
	for _, sample := range r.Samples {
		metaRow := r.Details.Row(sample)
		for _, alias := range r.Aliases {
			for _, key := range keys {
				row := append(append([]string(nil), metaRow...), alias, key,
					FormatValue(idx[[3]string{sample, alias, key}]))
				t.Rows = append(t.Rows, row)
			}
		}
	}
	return t
}

// Table projects to the requested layout.
func (r *ResultSet) Table(long bool) *Table {
	if long {
		return r.Long()
	}
	return r.Wide()
}
