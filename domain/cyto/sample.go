package cyto

import (
	"fmt"

	"cytostats/domain/core"
)

// Sample is an immutable table of numeric observations: one row per event,
// one column per channel. Samples are produced by the calling layer (file
// ingestion, API payloads) and are never mutated by the pipeline; gating and
// transformation always allocate new data.
type Sample struct {
	name     string
	channels []string
	index    map[string]int
	cols     [][]float64
	events   int
}

// NewSample builds a sample from row-major event data. Every row must have
// one value per channel.
func NewSample(name string, channels []string, events [][]float64) (*Sample, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty sample name", core.ErrInvalidSample)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: sample %q has no channels", core.ErrInvalidSample, name)
	}
	index := make(map[string]int, len(channels))
	for i, ch := range channels {
		if ch == "" {
			return nil, fmt.Errorf("%w: sample %q has an empty channel name", core.ErrInvalidSample, name)
		}
		if _, dup := index[ch]; dup {
			return nil, fmt.Errorf("%w: sample %q has duplicate channel %q", core.ErrInvalidSample, name, ch)
		}
		index[ch] = i
	}

	cols := make([][]float64, len(channels))
	for i := range cols {
		cols[i] = make([]float64, len(events))
	}
	for r, row := range events {
		if len(row) != len(channels) {
			return nil, fmt.Errorf("%w: sample %q event %d has %d values, want %d",
				core.ErrInvalidSample, name, r, len(row), len(channels))
		}
		for c, v := range row {
			cols[c][r] = v
		}
	}

	return &Sample{
		name:     name,
		channels: append([]string(nil), channels...),
		index:    index,
		cols:     cols,
		events:   len(events),
	}, nil
}

// Name returns the unique sample name.
func (s *Sample) Name() string { return s.name }

// Events returns the number of events (rows).
func (s *Sample) Events() int { return s.events }

// Channels returns the ordered channel names.
func (s *Sample) Channels() []string {
	return append([]string(nil), s.channels...)
}

// HasChannel reports whether the sample measures channel.
func (s *Sample) HasChannel(channel string) bool {
	_, ok := s.index[channel]
	return ok
}

// Column returns a copy of the values for channel, in event order.
func (s *Sample) Column(channel string) ([]float64, error) {
	i, ok := s.index[channel]
	if !ok {
		return nil, core.NewMissingChannelError(s.name, channel)
	}
	return append([]float64(nil), s.cols[i]...), nil
}

// Subset returns a new sample holding the given event rows, in order.
func (s *Sample) Subset(rows []int) (*Sample, error) {
	cols := make([][]float64, len(s.cols))
	for c := range s.cols {
		cols[c] = make([]float64, len(rows))
	}
	for i, r := range rows {
		if r < 0 || r >= s.events {
			return nil, fmt.Errorf("%w: sample %q row %d out of range", core.ErrInvalidSample, s.name, r)
		}
		for c := range s.cols {
			cols[c][i] = s.cols[c][r]
		}
	}
	return &Sample{
		name:     s.name,
		channels: s.channels,
		index:    s.index,
		cols:     cols,
		events:   len(rows),
	}, nil
}
