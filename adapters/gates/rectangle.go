package gates

import (
	"fmt"

	"cytostats/domain/core"
)

// Rectangle is a two-dimensional axis-aligned range gate.
type Rectangle struct {
	name     string
	channels [2]string
	min, max [2]float64
}

// NewRectangle creates a rectangle gate over (xChannel, yChannel).
func NewRectangle(name, xChannel, yChannel string, xMin, xMax, yMin, yMax float64) (*Rectangle, error) {
	if xChannel == "" || yChannel == "" || xChannel == yChannel {
		return nil, fmt.Errorf("%w: rectangle gate %q needs two distinct channels", core.ErrInvalidGate, name)
	}
	if xMin > xMax || yMin > yMax {
		return nil, fmt.Errorf("%w: rectangle gate %q has min > max", core.ErrInvalidGate, name)
	}
	return &Rectangle{
		name:     name,
		channels: [2]string{xChannel, yChannel},
		min:      [2]float64{xMin, yMin},
		max:      [2]float64{xMax, yMax},
	}, nil
}

func (g *Rectangle) Name() string { return g.name }

func (g *Rectangle) Channels() []string { return g.channels[:] }

func (g *Rectangle) Contains(coords []float64) bool {
	return coords[0] >= g.min[0] && coords[0] <= g.max[0] &&
		coords[1] >= g.min[1] && coords[1] <= g.max[1]
}
