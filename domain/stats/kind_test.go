package stats

import (
	"errors"
	"testing"

	"cytostats/domain/core"
)

func TestParseKind_Aliases(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"count", KindCount},
		{"Count", KindCount},
		{"COUNT", KindCount},
		{"events", KindCount},
		{"freq", KindFreq},
		{"Freq", KindFreq},
		{"percent", KindFreq},
		{"frequency", KindFreq},
		{"mean", KindMean},
		{"Mean", KindMean},
		{"MEAN", KindMean},
		{"geo mean", KindGeoMean},
		{"Geo Mean", KindGeoMean},
		{"geo.mean", KindGeoMean},
		{"geo_mean", KindGeoMean},
		{"geomean", KindGeoMean},
		{"geometric mean", KindGeoMean},
		{"median", KindMedian},
		{"mode", KindMode},
		{"Mode", KindMode},
		{"cv", KindCV},
		{"CV", KindCV},
		{" mean ", KindMean},
	}
	for _, c := range cases {
		got, err := ParseKind(c.name)
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKind(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestParseKind_Unsupported(t *testing.T) {
	for _, name := range []string{"", "variance", "sum", "meanx", "geo"} {
		_, err := ParseKind(name)
		if !errors.Is(err, core.ErrUnsupportedStatistic) {
			t.Errorf("ParseKind(%q) error = %v, want ErrUnsupportedStatistic", name, err)
		}
	}
}

func TestKind_Labels(t *testing.T) {
	want := map[Kind]string{
		KindCount:   "Count",
		KindFreq:    "Percent",
		KindMean:    "MFI",
		KindGeoMean: "GMFI",
		KindMedian:  "MedFI",
		KindMode:    "ModFI",
		KindCV:      "CV",
	}
	for k, label := range want {
		if got := k.Label(); got != label {
			t.Errorf("%q.Label() = %q, want %q", k, got, label)
		}
	}
}

func TestKind_PerChannel(t *testing.T) {
	for _, k := range Kinds() {
		perChannel := k != KindCount && k != KindFreq
		if got := k.PerChannel(); got != perChannel {
			t.Errorf("%q.PerChannel() = %v, want %v", k, got, perChannel)
		}
	}
}
