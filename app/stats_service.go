package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cytostats/adapters/stats/engine"
	"cytostats/domain/core"
	"cytostats/domain/stats"
	"cytostats/internal"
	"cytostats/ports"
)

// StatsService runs the statistics pipeline: extract populations from a
// sample source, compute the requested statistic, and assemble a flat
// result set. Samples are computed concurrently into index-addressed slots
// so output order is exactly source order regardless of completion order.
type StatsService struct {
	engine *engine.Engine
	log    *internal.Logger
}

// NewStatsService creates a stats service. A nil logger falls back to the
// default.
func NewStatsService(logger *internal.Logger) *StatsService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &StatsService{
		engine: engine.New(logger),
		log:    logger,
	}
}

// Compute runs one pipeline invocation. The statistic name is parsed once
// here; any failure aborts the whole call with no partial result.
func (s *StatsService) Compute(ctx context.Context, src ports.SampleSource, req stats.Request) (*stats.ResultSet, error) {
	kind, err := stats.ParseKind(req.Statistic)
	if err != nil {
		return nil, err
	}

	aliases := req.Aliases
	if len(aliases) == 0 {
		aliases = []string{stats.RootAlias}
	}

	channels := req.Channels
	if kind.PerChannel() {
		if len(channels) == 0 {
			channels = src.Channels()
		} else if err := validateChannels(src.Channels(), channels); err != nil {
			return nil, err
		}
	} else {
		channels = nil
	}

	var warnings []stats.Warning
	parents := req.Parents
	if kind == stats.KindFreq && len(parents) == 0 {
		parents = []string{stats.RootAlias}
		msg := "no parent populations supplied; frequencies computed against root"
		s.log.Warn("%s", msg)
		warnings = append(warnings, stats.Warning{Code: stats.WarningDefaultedParent, Message: msg})
	}

	opt := engine.Options{
		Transforms:    req.Transforms,
		Gate:          req.Gate,
		DensitySmooth: req.DensitySmooth,
	}

	names := src.Names()
	sampleQuads := make([][]stats.Quad, len(names))
	sampleWarnings := make([][]stats.Warning, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			quads, ws, err := s.computeSample(ctx, src, name, kind, aliases, parents, channels, opt)
			if err != nil {
				return err
			}
			sampleQuads[i] = quads
			sampleWarnings[i] = ws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rs := &stats.ResultSet{
		Kind:    kind,
		Samples: names,
		Aliases: aliases,
		Details: src.Details(),
	}
	if kind.PerChannel() {
		rs.Channels = channels
	}
	if kind == stats.KindFreq {
		rs.Parents = parents
	}
	for _, quads := range sampleQuads {
		rs.Quads = append(rs.Quads, quads...)
	}
	rs.Warnings = dedupeWarnings(warnings, sampleWarnings)
	return rs, nil
}

func (s *StatsService) computeSample(ctx context.Context, src ports.SampleSource, name string, kind stats.Kind, aliases, parents, channels []string, opt engine.Options) ([]stats.Quad, []stats.Warning, error) {
	var quads []stats.Quad
	var warnings []stats.Warning

	// Frequency divides per-alias counts by parent counts, so parent
	// counts are computed up front.
	parentCounts := make(map[string]float64, len(parents))
	if kind == stats.KindFreq {
		for _, parent := range parents {
			pop, err := src.Extract(name, parent)
			if err != nil {
				return nil, nil, err
			}
			c, err := s.engine.Count(pop, opt.Gate)
			if err != nil {
				return nil, nil, err
			}
			parentCounts[parent] = c
		}
	}

	for _, alias := range aliases {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		pop, err := src.Extract(name, alias)
		if err != nil {
			return nil, nil, err
		}

		switch kind {
		case stats.KindCount:
			c, err := s.engine.Count(pop, opt.Gate)
			if err != nil {
				return nil, nil, err
			}
			quads = append(quads, stats.Quad{Sample: name, Population: alias, Value: c})

		case stats.KindFreq:
			c, err := s.engine.Count(pop, opt.Gate)
			if err != nil {
				return nil, nil, err
			}
			for _, parent := range parents {
				f, err := engine.Frequency(c, parentCounts[parent])
				if err != nil {
					return nil, nil, fmt.Errorf("frequency of %q in %q for sample %q: %w", alias, parent, name, err)
				}
				quads = append(quads, stats.Quad{Sample: name, Population: alias, Key: parent, Value: f})
			}

		default:
			values, ws, err := s.engine.Compute(pop, kind, channels, opt)
			if err != nil {
				return nil, nil, err
			}
			warnings = append(warnings, ws...)
			for _, ch := range channels {
				quads = append(quads, stats.Quad{Sample: name, Population: alias, Key: ch, Value: values[ch]})
			}
		}
	}
	return quads, warnings, nil
}

// Save assembles the result in the requested layout and writes it through
// the exporter, returning the final path.
func (s *StatsService) Save(rs *stats.ResultSet, long bool, exp ports.Exporter, path string) (string, error) {
	out, err := exp.Export(path, rs.Table(long))
	if err != nil {
		return "", err
	}
	s.log.Info("result written to %s", out)
	return out, nil
}

func validateChannels(available, requested []string) error {
	known := make(map[string]bool, len(available))
	for _, ch := range available {
		known[ch] = true
	}
	for _, ch := range requested {
		if !known[ch] {
			return fmt.Errorf("%w: %q", core.ErrMissingChannel, ch)
		}
	}
	return nil
}

// dedupeWarnings merges warnings in deterministic order: request-level
// first, then per-sample in source order, dropping repeats.
func dedupeWarnings(head []stats.Warning, perSample [][]stats.Warning) []stats.Warning {
	seen := make(map[string]bool)
	var out []stats.Warning
	add := func(w stats.Warning) {
		key := string(w.Code) + "\x00" + w.Message
		if !seen[key] {
			seen[key] = true
			out = append(out, w)
		}
	}
	for _, w := range head {
		add(w)
	}
	for _, ws := range perSample {
		for _, w := range ws {
			add(w)
		}
	}
	return out
}
