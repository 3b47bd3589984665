package cyto

import (
	"fmt"

	"cytostats/domain/core"
)

// Gate selects a subset of events from a sample. The pipeline never
// interprets gate geometry; it only filters rows through Contains.
type Gate interface {
	// Name identifies the gate in logs and errors.
	Name() string
	// Channels returns the channels the gate is defined on.
	Channels() []string
	// Contains reports whether an event is inside the gate boundary.
	// coords holds one value per gate channel, aligned with Channels.
	Contains(coords []float64) bool
}

// ApplyGate returns the subset of s whose events fall inside g.
func ApplyGate(s *Sample, g Gate) (*Sample, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil gate", core.ErrInvalidGate)
	}
	chans := g.Channels()
	if len(chans) == 0 {
		return nil, fmt.Errorf("%w: gate %q has no channels", core.ErrInvalidGate, g.Name())
	}
	cols := make([][]float64, len(chans))
	for i, ch := range chans {
		col, err := s.Column(ch)
		if err != nil {
			return nil, fmt.Errorf("gate %q: %w", g.Name(), err)
		}
		cols[i] = col
	}

	coords := make([]float64, len(chans))
	var keep []int
	for r := 0; r < s.Events(); r++ {
		for i := range cols {
			coords[i] = cols[i][r]
		}
		if g.Contains(coords) {
			keep = append(keep, r)
		}
	}
	return s.Subset(keep)
}
