package ports

import "cytostats/domain/cyto"

// SampleSource is the hierarchical-sample provider the statistics pipeline
// computes against. Implementations range from a single ungated sample to a
// set of gated population hierarchies; the pipeline never distinguishes
// between them beyond this interface.
type SampleSource interface {
	// Names returns the sample names in presentation order. Output row
	// order follows this order.
	Names() []string

	// Channels returns the ordered channel names shared by all samples.
	Channels() []string

	// Extract returns the named population of the named sample. The root
	// alias always resolves to the full ungated sample.
	Extract(sample, alias string) (*cyto.Sample, error)

	// Details returns the per-sample metadata table.
	Details() *cyto.Details
}
