package source

import (
	"fmt"

	"cytostats/domain/core"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
)

// SampleSet exposes an ordered collection of ungated samples sharing one
// channel layout.
type SampleSet struct {
	names    []string
	samples  map[string]*cyto.Sample
	channels []string
	details  *cyto.Details
}

// NewSampleSet builds a set from samples. Sample names must be unique and
// channel layouts identical.
func NewSampleSet(samples ...*cyto.Sample) (*SampleSet, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty sample set", core.ErrInvalidSample)
	}
	set := &SampleSet{
		samples:  make(map[string]*cyto.Sample, len(samples)),
		channels: samples[0].Channels(),
	}
	for _, s := range samples {
		if _, dup := set.samples[s.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate sample name %q", core.ErrInvalidSample, s.Name())
		}
		if err := sameChannels(set.channels, s); err != nil {
			return nil, err
		}
		set.names = append(set.names, s.Name())
		set.samples[s.Name()] = s
	}
	set.details = cyto.DefaultDetails(set.names...)
	return set, nil
}

func sameChannels(want []string, s *cyto.Sample) error {
	got := s.Channels()
	if len(got) != len(want) {
		return fmt.Errorf("%w: sample %q channel layout mismatch", core.ErrInvalidSample, s.Name())
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: sample %q channel layout mismatch at %q",
				core.ErrInvalidSample, s.Name(), got[i])
		}
	}
	return nil
}

// SetDetails replaces the metadata table.
func (s *SampleSet) SetDetails(d *cyto.Details) {
	s.details = d
}

func (s *SampleSet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *SampleSet) Channels() []string {
	return append([]string(nil), s.channels...)
}

func (s *SampleSet) Details() *cyto.Details {
	return s.details
}

func (s *SampleSet) Extract(sample, alias string) (*cyto.Sample, error) {
	smp, ok := s.samples[sample]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrMissingSample, sample)
	}
	if alias != stats.RootAlias {
		return nil, core.NewMissingPopulationError(sample, alias)
	}
	return smp, nil
}
