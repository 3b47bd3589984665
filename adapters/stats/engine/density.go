package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"cytostats/domain/core"
)

const gridPoints = 512

// modeEstimate returns the location of the global maximum of a Gaussian
// kernel density estimate over values. smooth scales the automatic
// bandwidth; values <= 0 leave it unadjusted.
func modeEstimate(values []float64, smooth float64) (float64, error) {
	switch len(values) {
	case 0:
		return 0, core.ErrNoEvents
	case 1:
		return values[0], nil
	}
	if smooth <= 0 {
		smooth = 1
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	h := nrd0(sorted) * smooth

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if h == 0 || lo == hi {
		// Degenerate distribution; the sole support point is the mode.
		return lo, nil
	}

	kernel := distuv.Normal{Mu: 0, Sigma: h}
	lo, hi = lo-3*h, hi+3*h
	step := (hi - lo) / (gridPoints - 1)

	best, bestDensity := lo, math.Inf(-1)
	for i := 0; i < gridPoints; i++ {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range values {
			density += kernel.Prob(x - v)
		}
		if density > bestDensity {
			best, bestDensity = x, density
		}
	}
	return best, nil
}

// nrd0 is Silverman's rule-of-thumb bandwidth: 0.9 min(sd, iqr/1.34) n^-1/5,
// with the usual fallbacks when the spread estimates collapse to zero.
// values must be sorted.
func nrd0(values []float64) float64 {
	n := float64(len(values))
	sd := stat.StdDev(values, nil)
	iqr := stat.Quantile(0.75, stat.Empirical, values, nil) -
		stat.Quantile(0.25, stat.Empirical, values, nil)

	sigma := math.Min(sd, iqr/1.34)
	if sigma == 0 {
		sigma = sd
	}
	if sigma == 0 {
		sigma = math.Abs(values[0])
	}
	if sigma == 0 {
		sigma = 1
	}
	return 0.9 * sigma * math.Pow(n, -0.2)
}
