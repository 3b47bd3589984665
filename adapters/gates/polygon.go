package gates

import (
	"fmt"

	"cytostats/domain/core"
)

// Polygon is a two-dimensional gate bounded by a closed polygon. Membership
// uses even-odd ray casting; boundary behavior follows the crossing rule.
type Polygon struct {
	name     string
	channels [2]string
	xs, ys   []float64
}

// NewPolygon creates a polygon gate from vertex coordinates. At least
// three vertices are required; the polygon closes implicitly.
func NewPolygon(name, xChannel, yChannel string, xs, ys []float64) (*Polygon, error) {
	if xChannel == "" || yChannel == "" || xChannel == yChannel {
		return nil, fmt.Errorf("%w: polygon gate %q needs two distinct channels", core.ErrInvalidGate, name)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: polygon gate %q has %d x and %d y vertices",
			core.ErrInvalidGate, name, len(xs), len(ys))
	}
	if len(xs) < 3 {
		return nil, fmt.Errorf("%w: polygon gate %q needs at least 3 vertices", core.ErrInvalidGate, name)
	}
	return &Polygon{
		name:     name,
		channels: [2]string{xChannel, yChannel},
		xs:       append([]float64(nil), xs...),
		ys:       append([]float64(nil), ys...),
	}, nil
}

func (g *Polygon) Name() string { return g.name }

func (g *Polygon) Channels() []string { return g.channels[:] }

func (g *Polygon) Contains(coords []float64) bool {
	x, y := coords[0], coords[1]
	inside := false
	n := len(g.xs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := g.xs[i], g.ys[i]
		xj, yj := g.xs[j], g.ys[j]
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
