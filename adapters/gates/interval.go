package gates

import (
	"fmt"

	"cytostats/domain/core"
)

// Interval is a one-dimensional range gate: events with
// min <= value <= max on a single channel.
type Interval struct {
	name     string
	channel  string
	min, max float64
}

// NewInterval creates an interval gate. min must not exceed max.
func NewInterval(name, channel string, min, max float64) (*Interval, error) {
	if channel == "" {
		return nil, fmt.Errorf("%w: interval gate %q has no channel", core.ErrInvalidGate, name)
	}
	if min > max {
		return nil, fmt.Errorf("%w: interval gate %q has min > max", core.ErrInvalidGate, name)
	}
	return &Interval{name: name, channel: channel, min: min, max: max}, nil
}

func (g *Interval) Name() string { return g.name }

func (g *Interval) Channels() []string { return []string{g.channel} }

func (g *Interval) Contains(coords []float64) bool {
	return coords[0] >= g.min && coords[0] <= g.max
}
