package source

import (
	"fmt"

	"cytostats/domain/core"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
)

// Hierarchy is one sample's gated population tree, rooted at the ungated
// sample. Populations are extracted on demand by applying the gate path
// from root down to the alias; nothing is cached.
type Hierarchy struct {
	sample  *cyto.Sample
	nodes   map[string]node
	order   []string
	details *cyto.Details
}

type node struct {
	parent string
	gate   cyto.Gate
}

// NewHierarchy creates a hierarchy containing only the root population.
func NewHierarchy(sample *cyto.Sample) *Hierarchy {
	return &Hierarchy{
		sample:  sample,
		nodes:   map[string]node{stats.RootAlias: {}},
		order:   []string{stats.RootAlias},
		details: cyto.DefaultDetails(sample.Name()),
	}
}

// AddPopulation registers a gated population under an existing parent.
func (h *Hierarchy) AddPopulation(alias, parent string, gate cyto.Gate) error {
	if alias == "" || alias == stats.RootAlias {
		return fmt.Errorf("%w: reserved alias %q", core.ErrInvalidGate, alias)
	}
	if _, dup := h.nodes[alias]; dup {
		return fmt.Errorf("%w: duplicate alias %q", core.ErrInvalidGate, alias)
	}
	if _, ok := h.nodes[parent]; !ok {
		return core.NewMissingPopulationError(h.sample.Name(), parent)
	}
	if gate == nil {
		return fmt.Errorf("%w: nil gate for %q", core.ErrInvalidGate, alias)
	}
	h.nodes[alias] = node{parent: parent, gate: gate}
	h.order = append(h.order, alias)
	return nil
}

// Aliases returns the population aliases in insertion order, root first.
func (h *Hierarchy) Aliases() []string {
	return append([]string(nil), h.order...)
}

// Parent returns the parent alias of a population. Root has no parent.
func (h *Hierarchy) Parent(alias string) (string, error) {
	n, ok := h.nodes[alias]
	if !ok {
		return "", core.NewMissingPopulationError(h.sample.Name(), alias)
	}
	return n.parent, nil
}

// SetDetails replaces the metadata table.
func (h *Hierarchy) SetDetails(d *cyto.Details) {
	h.details = d
}

func (h *Hierarchy) Names() []string {
	return []string{h.sample.Name()}
}

func (h *Hierarchy) Channels() []string {
	return h.sample.Channels()
}

func (h *Hierarchy) Details() *cyto.Details {
	return h.details
}

// Extract applies the gate path from root to alias and returns the
// resulting population.
func (h *Hierarchy) Extract(sample, alias string) (*cyto.Sample, error) {
	if sample != h.sample.Name() {
		return nil, fmt.Errorf("%w: %q", core.ErrMissingSample, sample)
	}
	if _, ok := h.nodes[alias]; !ok {
		return nil, core.NewMissingPopulationError(sample, alias)
	}

	// Collect the gate path leaf to root, then apply root to leaf.
	var path []cyto.Gate
	for cur := alias; cur != stats.RootAlias; {
		n := h.nodes[cur]
		path = append(path, n.gate)
		cur = n.parent
	}
	pop := h.sample
	var err error
	for i := len(path) - 1; i >= 0; i-- {
		pop, err = cyto.ApplyGate(pop, path[i])
		if err != nil {
			return nil, fmt.Errorf("extracting %q: %w", alias, err)
		}
	}
	return pop, nil
}
