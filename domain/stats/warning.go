package stats

// WarningCode represents structured advisory types surfaced on a result.
// Warnings never abort a computation.
type WarningCode string

const (
	// WarningMissingTransform is raised when a scale-dependent statistic is
	// computed on channels without an inverse transform; values stay on the
	// stored (possibly non-linear) scale.
	WarningMissingTransform WarningCode = "MISSING_TRANSFORM"

	// WarningDefaultedParent is raised when a frequency computation had no
	// parent populations supplied and root was assumed.
	WarningDefaultedParent WarningCode = "DEFAULTED_PARENT"
)

// Warning is a non-fatal advisory attached to a result set.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
