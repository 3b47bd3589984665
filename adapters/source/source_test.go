package source

import (
	"errors"
	"reflect"
	"testing"

	"cytostats/adapters/gates"
	"cytostats/domain/core"
	"cytostats/domain/cyto"
)

// rampSample holds n events with value i on both channels.
func rampSample(t *testing.T, name string, n int) *cyto.Sample {
	t.Helper()
	events := make([][]float64, n)
	for i := range events {
		events[i] = []float64{float64(i), float64(i)}
	}
	s, err := cyto.NewSample(name, []string{"FSC-A", "SSC-A"}, events)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func interval(t *testing.T, name string, min, max float64) *gates.Interval {
	t.Helper()
	g, err := gates.NewInterval(name, "FSC-A", min, max)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSampleSet(t *testing.T) {
	set, err := NewSampleSet(rampSample(t, "s1", 3), rampSample(t, "s2", 5))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"s1", "s2"}; !reflect.DeepEqual(set.Names(), want) {
		t.Errorf("Names() = %v, want %v", set.Names(), want)
	}
	if want := []string{"FSC-A", "SSC-A"}; !reflect.DeepEqual(set.Channels(), want) {
		t.Errorf("Channels() = %v, want %v", set.Channels(), want)
	}

	smp, err := set.Extract("s2", "root")
	if err != nil {
		t.Fatal(err)
	}
	if smp.Events() != 5 {
		t.Errorf("extracted events = %d, want 5", smp.Events())
	}

	if _, err := set.Extract("s2", "Live"); !core.IsMissing(err) {
		t.Errorf("Extract non-root error = %v, want missing-population", err)
	}
	if _, err := set.Extract("nope", "root"); !errors.Is(err, core.ErrMissingSample) {
		t.Errorf("Extract unknown sample error = %v, want ErrMissingSample", err)
	}
}

func TestSingleSample(t *testing.T) {
	src := NewSingleSample(rampSample(t, "s1", 4))
	if want := []string{"s1"}; !reflect.DeepEqual(src.Names(), want) {
		t.Errorf("Names() = %v, want %v", src.Names(), want)
	}
	smp, err := src.Extract("s1", "root")
	if err != nil {
		t.Fatal(err)
	}
	if smp.Events() != 4 {
		t.Errorf("Extract events = %d, want 4", smp.Events())
	}
	if _, err := src.Extract("s1", "Live"); !core.IsMissing(err) {
		t.Errorf("Extract non-root error = %v, want missing-population", err)
	}
	if _, err := src.Extract("other", "root"); !errors.Is(err, core.ErrMissingSample) {
		t.Errorf("Extract unknown sample error = %v, want ErrMissingSample", err)
	}
}

func TestSampleSet_Validation(t *testing.T) {
	if _, err := NewSampleSet(); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("empty set error = %v, want ErrInvalidSample", err)
	}
	if _, err := NewSampleSet(rampSample(t, "s1", 1), rampSample(t, "s1", 1)); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("duplicate name error = %v, want ErrInvalidSample", err)
	}

	other, err := cyto.NewSample("s2", []string{"FSC-A"}, [][]float64{{1}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewSampleSet(rampSample(t, "s1", 1), other); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("channel mismatch error = %v, want ErrInvalidSample", err)
	}
}

func buildHierarchy(t *testing.T, name string) *Hierarchy {
	t.Helper()
	h := NewHierarchy(rampSample(t, name, 100))
	steps := []struct {
		alias, parent string
		min, max      float64
	}{
		{"Live Cells", "root", 0, 99},
		{"T Cells", "Live Cells", 0, 49.5},
		{"CD4 T Cells", "T Cells", 0, 24.5},
		{"CD8 T Cells", "T Cells", 25, 49.5},
	}
	for _, s := range steps {
		if err := h.AddPopulation(s.alias, s.parent, interval(t, s.alias, s.min, s.max)); err != nil {
			t.Fatalf("AddPopulation(%q): %v", s.alias, err)
		}
	}
	return h
}

func TestHierarchy_Extract(t *testing.T) {
	h := buildHierarchy(t, "activation_1")

	counts := map[string]int{
		"root":        100,
		"Live Cells":  100,
		"T Cells":     50,
		"CD4 T Cells": 25,
		"CD8 T Cells": 25,
	}
	for alias, want := range counts {
		pop, err := h.Extract("activation_1", alias)
		if err != nil {
			t.Fatalf("Extract(%q): %v", alias, err)
		}
		if pop.Events() != want {
			t.Errorf("Extract(%q) events = %d, want %d", alias, pop.Events(), want)
		}
	}

	// CD8 events survive both the T Cells and CD8 gates.
	pop, _ := h.Extract("activation_1", "CD8 T Cells")
	col, _ := pop.Column("FSC-A")
	if col[0] != 25 || col[len(col)-1] != 49 {
		t.Errorf("CD8 range = [%v, %v], want [25, 49]", col[0], col[len(col)-1])
	}

	if _, err := h.Extract("activation_1", "B Cells"); !core.IsMissing(err) {
		t.Errorf("Extract unknown alias error = %v, want missing-population", err)
	}
	if _, err := h.Extract("other", "root"); !errors.Is(err, core.ErrMissingSample) {
		t.Errorf("Extract unknown sample error = %v, want ErrMissingSample", err)
	}
}

func TestHierarchy_AddPopulation(t *testing.T) {
	h := NewHierarchy(rampSample(t, "s", 10))
	g := interval(t, "g", 0, 5)

	if err := h.AddPopulation("root", "root", g); !errors.Is(err, core.ErrInvalidGate) {
		t.Errorf("reserved alias error = %v, want ErrInvalidGate", err)
	}
	if err := h.AddPopulation("Live", "missing", g); !core.IsMissing(err) {
		t.Errorf("unknown parent error = %v, want missing-population", err)
	}
	if err := h.AddPopulation("Live", "root", nil); !errors.Is(err, core.ErrInvalidGate) {
		t.Errorf("nil gate error = %v, want ErrInvalidGate", err)
	}
	if err := h.AddPopulation("Live", "root", g); err != nil {
		t.Fatal(err)
	}
	if err := h.AddPopulation("Live", "root", g); !errors.Is(err, core.ErrInvalidGate) {
		t.Errorf("duplicate alias error = %v, want ErrInvalidGate", err)
	}

	if want := []string{"root", "Live"}; !reflect.DeepEqual(h.Aliases(), want) {
		t.Errorf("Aliases() = %v, want %v", h.Aliases(), want)
	}
	parent, err := h.Parent("Live")
	if err != nil || parent != "root" {
		t.Errorf("Parent(Live) = %q, %v, want root", parent, err)
	}
}

func TestHierarchySet(t *testing.T) {
	set, err := NewHierarchySet(buildHierarchy(t, "activation_1"), buildHierarchy(t, "activation_2"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"activation_1", "activation_2"}; !reflect.DeepEqual(set.Names(), want) {
		t.Errorf("Names() = %v, want %v", set.Names(), want)
	}

	pop, err := set.Extract("activation_2", "CD4 T Cells")
	if err != nil {
		t.Fatal(err)
	}
	if pop.Events() != 25 {
		t.Errorf("extracted events = %d, want 25", pop.Events())
	}

	if _, err := NewHierarchySet(buildHierarchy(t, "a"), buildHierarchy(t, "a")); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("duplicate name error = %v, want ErrInvalidSample", err)
	}
}
