// Package engine computes per-sample statistics. Every computation is a
// pure function of its inputs: gating and transformation allocate new data
// and the input sample is never mutated.
package engine

import (
	"fmt"
	"math"
	"strings"

	mstats "github.com/montanaflynn/stats"

	"cytostats/domain/core"
	"cytostats/domain/cyto"
	"cytostats/domain/stats"
	"cytostats/internal"
)

// Engine computes statistics over single samples.
type Engine struct {
	log *internal.Logger
}

// New creates an engine. A nil logger falls back to the default.
func New(logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Engine{log: logger}
}

// Options carries the optional per-computation inputs.
type Options struct {
	// Transforms maps stored display-scale values back to the linear scale
	// before aggregation. Channels without a transform proceed on the
	// stored scale with an advisory.
	Transforms cyto.TransformSet

	// Gate restricts events before any statistic is computed.
	Gate cyto.Gate

	// DensitySmooth scales the automatic kernel bandwidth for the mode
	// statistic. Values <= 0 mean no adjustment.
	DensitySmooth float64
}

// Count returns the number of events in s, restricted to gate when set.
func (e *Engine) Count(s *cyto.Sample, gate cyto.Gate) (float64, error) {
	if gate != nil {
		gated, err := cyto.ApplyGate(s, gate)
		if err != nil {
			return 0, err
		}
		return float64(gated.Events()), nil
	}
	return float64(s.Events()), nil
}

// Frequency returns the percentage of parentCount represented by count.
// A zero parent count is an explicit error, never NaN.
func Frequency(count, parentCount float64) (float64, error) {
	if parentCount == 0 {
		return 0, core.ErrZeroParentCount
	}
	return 100 * count / parentCount, nil
}

// Compute returns one value per channel for a per-channel statistic kind.
func (e *Engine) Compute(s *cyto.Sample, kind stats.Kind, channels []string, opt Options) (map[string]float64, []stats.Warning, error) {
	if !kind.PerChannel() {
		return nil, nil, fmt.Errorf("%w: %q is not a per-channel statistic", core.ErrUnsupportedStatistic, kind)
	}

	pop := s
	if opt.Gate != nil {
		var err error
		pop, err = cyto.ApplyGate(s, opt.Gate)
		if err != nil {
			return nil, nil, err
		}
	}
	if pop.Events() == 0 {
		return nil, nil, fmt.Errorf("%w: sample %q", core.ErrNoEvents, s.Name())
	}

	var untransformed []string
	values := make(map[string]float64, len(channels))
	for _, ch := range channels {
		col, err := pop.Column(ch)
		if err != nil {
			return nil, nil, err
		}
		if opt.Transforms != nil && opt.Transforms.Has(ch) {
			col, err = opt.Transforms.Inverse(ch, col)
			if err != nil {
				return nil, nil, err
			}
		} else if kind.ScaleDependent() {
			untransformed = append(untransformed, ch)
		}

		v, err := e.channelStatistic(kind, col, opt.DensitySmooth)
		if err != nil {
			return nil, nil, fmt.Errorf("%s of channel %q in sample %q: %w", kind, ch, s.Name(), err)
		}
		values[ch] = v
	}

	var warnings []stats.Warning
	if len(untransformed) > 0 {
		msg := fmt.Sprintf("no inverse transform for channel(s) %s in sample %q; %s computed on the stored scale",
			strings.Join(untransformed, ", "), s.Name(), kind)
		e.log.Warn("%s", msg)
		warnings = append(warnings, stats.Warning{Code: stats.WarningMissingTransform, Message: msg})
	}
	return values, warnings, nil
}

func (e *Engine) channelStatistic(kind stats.Kind, values []float64, smooth float64) (float64, error) {
	switch kind {
	case stats.KindMean:
		return mstats.Mean(values)
	case stats.KindMedian:
		return mstats.Median(values)
	case stats.KindGeoMean:
		return geometricMean(values)
	case stats.KindMode:
		return modeEstimate(values, smooth)
	case stats.KindCV:
		return coefficientOfVariation(values)
	}
	return 0, core.NewUnsupportedStatisticError(string(kind))
}

// geometricMean is exp(mean(log x)). It fails explicitly for non-positive
// values, where the statistic is undefined.
func geometricMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, core.ErrNoEvents
	}
	sum := 0.0
	for _, v := range values {
		if v <= 0 {
			return 0, fmt.Errorf("%w: %v", core.ErrNonPositiveValue, v)
		}
		sum += math.Log(v)
	}
	return math.Exp(sum / float64(len(values))), nil
}

// coefficientOfVariation is the sample standard deviation over the mean,
// as a percentage.
func coefficientOfVariation(values []float64) (float64, error) {
	mean, err := mstats.Mean(values)
	if err != nil {
		return 0, err
	}
	sd, err := mstats.StandardDeviationSample(values)
	if err != nil {
		return 0, err
	}
	return 100 * sd / mean, nil
}
