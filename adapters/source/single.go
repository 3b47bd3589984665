package source

import (
	"cytostats/domain/core"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
)

// SingleSample exposes one ungated sample as a sample source. The only
// population is root.
type SingleSample struct {
	sample  *cyto.Sample
	details *cyto.Details
}

// NewSingleSample wraps a sample.
func NewSingleSample(s *cyto.Sample) *SingleSample {
	return &SingleSample{
		sample:  s,
		details: cyto.DefaultDetails(s.Name()),
	}
}

// SetDetails replaces the metadata table.
func (s *SingleSample) SetDetails(d *cyto.Details) {
	s.details = d
}

func (s *SingleSample) Names() []string {
	return []string{s.sample.Name()}
}

func (s *SingleSample) Channels() []string {
	return s.sample.Channels()
}

func (s *SingleSample) Details() *cyto.Details {
	return s.details
}

func (s *SingleSample) Extract(sample, alias string) (*cyto.Sample, error) {
	if sample != s.sample.Name() {
		return nil, core.ErrMissingSample
	}
	if alias != stats.RootAlias {
		return nil, core.NewMissingPopulationError(sample, alias)
	}
	return s.sample, nil
}
