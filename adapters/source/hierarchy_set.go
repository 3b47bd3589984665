package source

import (
	"fmt"

	"cytostats/domain/core"
	"cytostats/domain/cyto"
)

// HierarchySet is an ordered collection of population hierarchies, one per
// sample, sharing one channel layout. Results computed over a set are
// concatenated in hierarchy order.
type HierarchySet struct {
	names       []string
	hierarchies map[string]*Hierarchy
	channels    []string
	details     *cyto.Details
}

// NewHierarchySet builds a set from hierarchies. Sample names must be
// unique, channel layouts identical and metadata columns compatible.
func NewHierarchySet(hierarchies ...*Hierarchy) (*HierarchySet, error) {
	if len(hierarchies) == 0 {
		return nil, fmt.Errorf("%w: empty hierarchy set", core.ErrInvalidSample)
	}
	set := &HierarchySet{
		hierarchies: make(map[string]*Hierarchy, len(hierarchies)),
		channels:    hierarchies[0].Channels(),
	}
	for _, h := range hierarchies {
		name := h.sample.Name()
		if _, dup := set.hierarchies[name]; dup {
			return nil, fmt.Errorf("%w: duplicate sample name %q", core.ErrInvalidSample, name)
		}
		if err := sameChannels(set.channels, h.sample); err != nil {
			return nil, err
		}
		set.names = append(set.names, name)
		set.hierarchies[name] = h

		if set.details == nil {
			set.details = h.details
			continue
		}
		merged, err := set.details.Merge(h.details)
		if err != nil {
			return nil, err
		}
		set.details = merged
	}
	return set, nil
}

func (s *HierarchySet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s *HierarchySet) Channels() []string {
	return append([]string(nil), s.channels...)
}

func (s *HierarchySet) Details() *cyto.Details {
	return s.details
}

func (s *HierarchySet) Extract(sample, alias string) (*cyto.Sample, error) {
	h, ok := s.hierarchies[sample]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrMissingSample, sample)
	}
	return h.Extract(sample, alias)
}
