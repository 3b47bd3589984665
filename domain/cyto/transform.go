package cyto

// TransformSet maps channels to per-channel display transforms. The
// statistics pipeline only ever uses the inverse direction, mapping stored
// display-scale values back to the linear machine scale before aggregation.
type TransformSet interface {
	// Has reports whether a transform is defined for channel.
	Has(channel string) bool
	// Inverse maps display-scale values back to the linear scale. The input
	// slice is not mutated. Inverse fails for channels without a transform.
	Inverse(channel string, values []float64) ([]float64, error)
}
