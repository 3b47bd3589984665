package transform

import (
	"fmt"
	"math"

	"cytostats/domain/core"
)

// Log is the logarithmic display transform x -> log_base(x).
type Log struct {
	base float64
}

// NewLog creates a log transform. The base must exceed 1.
func NewLog(base float64) (*Log, error) {
	if base <= 1 {
		return nil, fmt.Errorf("%w: log base must exceed 1, got %v", core.ErrInvalidTransform, base)
	}
	return &Log{base: base}, nil
}

func (t *Log) Apply(v float64) float64 {
	return math.Log(v) / math.Log(t.base)
}

func (t *Log) Invert(v float64) float64 {
	return math.Pow(t.base, v)
}
