package cyto

import (
	"errors"
	"reflect"
	"testing"

	"cytostats/domain/core"
)

func mustSample(t *testing.T, name string, channels []string, events [][]float64) *Sample {
	t.Helper()
	s, err := NewSample(name, channels, events)
	if err != nil {
		t.Fatalf("NewSample(%q): %v", name, err)
	}
	return s
}

func TestNewSample_Validation(t *testing.T) {
	cases := []struct {
		name     string
		sample   string
		channels []string
		events   [][]float64
	}{
		{"empty name", "", []string{"a"}, nil},
		{"no channels", "s", nil, nil},
		{"empty channel name", "s", []string{"a", ""}, nil},
		{"duplicate channel", "s", []string{"a", "a"}, nil},
		{"ragged row", "s", []string{"a", "b"}, [][]float64{{1, 2}, {3}}},
	}
	for _, c := range cases {
		if _, err := NewSample(c.sample, c.channels, c.events); !errors.Is(err, core.ErrInvalidSample) {
			t.Errorf("%s: error = %v, want ErrInvalidSample", c.name, err)
		}
	}
}

func TestSample_Column(t *testing.T) {
	s := mustSample(t, "s", []string{"a", "b"}, [][]float64{{1, 10}, {2, 20}, {3, 30}})

	col, err := s.Column("b")
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{10, 20, 30}; !reflect.DeepEqual(col, want) {
		t.Errorf("Column(b) = %v, want %v", col, want)
	}

	// The returned slice is a copy; mutating it must not touch the sample.
	col[0] = -1
	again, _ := s.Column("b")
	if again[0] != 10 {
		t.Error("Column returned a live reference to sample data")
	}

	if _, err := s.Column("missing"); !errors.Is(err, core.ErrMissingChannel) {
		t.Errorf("Column(missing) error = %v, want ErrMissingChannel", err)
	}
}

func TestSample_Subset(t *testing.T) {
	s := mustSample(t, "s", []string{"a"}, [][]float64{{1}, {2}, {3}, {4}})

	sub, err := s.Subset([]int{3, 1})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Events() != 2 {
		t.Fatalf("Events() = %d, want 2", sub.Events())
	}
	col, _ := sub.Column("a")
	if want := []float64{4, 2}; !reflect.DeepEqual(col, want) {
		t.Errorf("subset column = %v, want %v", col, want)
	}

	if _, err := s.Subset([]int{4}); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("Subset out of range error = %v, want ErrInvalidSample", err)
	}
}

type thresholdGate struct {
	channel string
	min     float64
}

func (g thresholdGate) Name() string       { return "threshold" }
func (g thresholdGate) Channels() []string { return []string{g.channel} }

func (g thresholdGate) Contains(c []float64) bool { return c[0] >= g.min }

func TestApplyGate(t *testing.T) {
	s := mustSample(t, "s", []string{"a", "b"}, [][]float64{{1, 10}, {5, 20}, {9, 30}})

	gated, err := ApplyGate(s, thresholdGate{channel: "a", min: 5})
	if err != nil {
		t.Fatal(err)
	}
	if gated.Events() != 2 {
		t.Fatalf("gated events = %d, want 2", gated.Events())
	}
	col, _ := gated.Column("b")
	if want := []float64{20, 30}; !reflect.DeepEqual(col, want) {
		t.Errorf("gated column b = %v, want %v", col, want)
	}
	if s.Events() != 3 {
		t.Error("gating mutated the input sample")
	}

	if _, err := ApplyGate(s, nil); !errors.Is(err, core.ErrInvalidGate) {
		t.Errorf("ApplyGate(nil) error = %v, want ErrInvalidGate", err)
	}
	if _, err := ApplyGate(s, thresholdGate{channel: "missing"}); !errors.Is(err, core.ErrMissingChannel) {
		t.Errorf("ApplyGate on missing channel error = %v, want ErrMissingChannel", err)
	}
}
