package transform

import (
	"fmt"

	"cytostats/domain/core"
)

// Set maps channels to transforms. It implements cyto.TransformSet.
type Set struct {
	transforms map[string]Transform
}

// NewSet creates an empty transform set.
func NewSet() *Set {
	return &Set{transforms: make(map[string]Transform)}
}

// Add registers a transform for a channel.
func (s *Set) Add(channel string, t Transform) error {
	if channel == "" {
		return fmt.Errorf("%w: empty channel", core.ErrInvalidTransform)
	}
	if t == nil {
		return fmt.Errorf("%w: nil transform for %q", core.ErrInvalidTransform, channel)
	}
	s.transforms[channel] = t
	return nil
}

// Has reports whether a transform is defined for channel.
func (s *Set) Has(channel string) bool {
	_, ok := s.transforms[channel]
	return ok
}

// Inverse maps display-scale values back to the linear scale. The input
// slice is never mutated.
func (s *Set) Inverse(channel string, values []float64) ([]float64, error) {
	t, ok := s.transforms[channel]
	if !ok {
		return nil, fmt.Errorf("%w: no transform for channel %q", core.ErrInvalidTransform, channel)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.Invert(v)
	}
	return out, nil
}
