package cyto

import (
	"fmt"

	"cytostats/domain/core"
)

// Details is the experiment metadata table: one row per sample, keyed by
// sample name. The first column is always "Sample" and holds the name.
type Details struct {
	columns []string
	rows    map[string][]string
}

// NewDetails creates a metadata table with the given extra columns beyond
// the implicit leading "Sample" column.
func NewDetails(extra ...string) *Details {
	columns := append([]string{"Sample"}, extra...)
	return &Details{
		columns: columns,
		rows:    make(map[string][]string),
	}
}

// DefaultDetails builds a name-only metadata table for the given samples.
func DefaultDetails(names ...string) *Details {
	d := NewDetails()
	for _, name := range names {
		d.rows[name] = nil
	}
	return d
}

// Columns returns the ordered metadata column names.
func (d *Details) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Set records the extra metadata values for a sample, aligned with the
// extra columns passed to NewDetails.
func (d *Details) Set(sample string, extra ...string) error {
	if len(extra) != len(d.columns)-1 {
		return fmt.Errorf("%w: sample %q metadata has %d values, want %d",
			core.ErrInvalidSample, sample, len(extra), len(d.columns)-1)
	}
	d.rows[sample] = append([]string(nil), extra...)
	return nil
}

// Row returns the metadata row for a sample. Samples without recorded
// metadata get the name plus empty extra cells.
func (d *Details) Row(sample string) []string {
	row := make([]string, len(d.columns))
	row[0] = sample
	copy(row[1:], d.rows[sample])
	return row
}

// Merge combines two detail tables with identical columns. Used when
// concatenating hierarchy sets.
func (d *Details) Merge(other *Details) (*Details, error) {
	if len(d.columns) != len(other.columns) {
		return nil, fmt.Errorf("%w: metadata column mismatch", core.ErrInvalidSample)
	}
	for i := range d.columns {
		if d.columns[i] != other.columns[i] {
			return nil, fmt.Errorf("%w: metadata column mismatch: %q != %q",
				core.ErrInvalidSample, d.columns[i], other.columns[i])
		}
	}
	merged := &Details{
		columns: d.columns,
		rows:    make(map[string][]string, len(d.rows)+len(other.rows)),
	}
	for k, v := range d.rows {
		merged.rows[k] = v
	}
	for k, v := range other.rows {
		merged.rows[k] = v
	}
	return merged, nil
}
