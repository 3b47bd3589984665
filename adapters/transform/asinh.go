package transform

import (
	"fmt"
	"math"

	"cytostats/domain/core"
)

// Asinh is the arcsinh display transform x -> asinh(x / cofactor). It is
// linear near zero and logarithmic for large magnitudes, and unlike log it
// is defined for non-positive values.
type Asinh struct {
	cofactor float64
}

// NewAsinh creates an arcsinh transform. The cofactor must be positive.
func NewAsinh(cofactor float64) (*Asinh, error) {
	if cofactor <= 0 {
		return nil, fmt.Errorf("%w: asinh cofactor must be positive, got %v", core.ErrInvalidTransform, cofactor)
	}
	return &Asinh{cofactor: cofactor}, nil
}

func (t *Asinh) Apply(v float64) float64 {
	return math.Asinh(v / t.cofactor)
}

func (t *Asinh) Invert(v float64) float64 {
	return math.Sinh(v) * t.cofactor
}
