package stats

import "cytostats/domain/cyto"

// Request describes one statistics computation over a sample source.
// Requests are immutable per invocation.
type Request struct {
	// Statistic is the requested statistic name; parsed once by ParseKind.
	Statistic string

	// Aliases names the populations of interest. Defaults to root.
	Aliases []string

	// Parents names the parent populations for frequency computation.
	// Ignored for other statistics. Defaults to root with an advisory.
	Parents []string

	// Channels restricts per-channel statistics to a subset of the source
	// channels. Defaults to all source channels, in source order.
	Channels []string

	// Transforms optionally maps channel values back to the linear scale
	// before aggregation.
	Transforms cyto.TransformSet

	// Gate optionally restricts events before any statistic is computed.
	Gate cyto.Gate

	// DensitySmooth scales the automatic kernel density bandwidth used by
	// the mode statistic. Values <= 0 mean no adjustment (1.0).
	DensitySmooth float64

	// Long selects long-format output assembly.
	Long bool
}

// RootAlias is the name of the ungated population at the top of every
// hierarchy.
const RootAlias = "root"
