package stats

import (
	"strings"

	"cytostats/domain/core"
)

// Kind is the canonical statistic identifier. String statistic names are
// parsed to a Kind exactly once at the pipeline boundary and never
// re-parsed downstream.
type Kind string

const (
	KindCount   Kind = "count"
	KindFreq    Kind = "freq"
	KindMean    Kind = "mean"
	KindGeoMean Kind = "geo_mean"
	KindMedian  Kind = "median"
	KindMode    Kind = "mode"
	KindCV      Kind = "cv"
)

// Kinds lists the supported statistic kinds in presentation order.
func Kinds() []Kind {
	return []Kind{KindCount, KindFreq, KindMean, KindGeoMean, KindMedian, KindMode, KindCV}
}

// ParseKind resolves a statistic name, case-insensitively and across the
// accepted aliases, to its canonical kind.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")

	switch s {
	case "count", "events":
		return KindCount, nil
	case "freq", "frequency", "percent":
		return KindFreq, nil
	case "mean":
		return KindMean, nil
	case "geo mean", "geomean", "geometric mean":
		return KindGeoMean, nil
	case "median":
		return KindMedian, nil
	case "mode":
		return KindMode, nil
	case "cv", "coefficient of variation":
		return KindCV, nil
	}
	return "", core.NewUnsupportedStatisticError(name)
}

// Label returns the fixed output column label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindCount:
		return "Count"
	case KindFreq:
		return "Percent"
	case KindMean:
		return "MFI"
	case KindGeoMean:
		return "GMFI"
	case KindMedian:
		return "MedFI"
	case KindMode:
		return "ModFI"
	case KindCV:
		return "CV"
	}
	return string(k)
}

// PerChannel reports whether the kind produces one value per channel.
// Count and frequency are single-valued per population.
func (k Kind) PerChannel() bool {
	switch k {
	case KindCount, KindFreq:
		return false
	}
	return true
}

// ScaleDependent reports whether the kind is computed on channel values and
// therefore benefits from an inverse transform back to the linear scale.
func (k Kind) ScaleDependent() bool {
	return k.PerChannel()
}
