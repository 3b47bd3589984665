// Package transform provides per-channel display transforms and their
// inverses. Cytometry data is commonly stored on an arcsinh or log display
// scale; scale statistics are computed on the linear scale by inverting the
// stored values first.
package transform

// Transform is a monotonic bijection between the linear machine scale and
// a display scale.
type Transform interface {
	// Apply maps a linear value to the display scale.
	Apply(v float64) float64
	// Invert maps a display value back to the linear scale.
	Invert(v float64) float64
}
