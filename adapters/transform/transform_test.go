package transform

import (
	"errors"
	"math"
	"testing"

	"cytostats/domain/core"
)

func TestAsinh_RoundTrip(t *testing.T) {
	tr, err := NewAsinh(150)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{-5000, -1, 0, 0.5, 1, 150, 1e6} {
		got := tr.Invert(tr.Apply(v))
		if math.Abs(got-v) > 1e-6*math.Max(1, math.Abs(v)) {
			t.Errorf("Invert(Apply(%v)) = %v", v, got)
		}
	}

	if _, err := NewAsinh(0); !errors.Is(err, core.ErrInvalidTransform) {
		t.Errorf("zero cofactor error = %v, want ErrInvalidTransform", err)
	}
}

func TestLog_RoundTrip(t *testing.T) {
	tr, err := NewLog(10)
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Apply(1000); math.Abs(got-3) > 1e-12 {
		t.Errorf("Apply(1000) = %v, want 3", got)
	}
	if got := tr.Invert(2); math.Abs(got-100) > 1e-9 {
		t.Errorf("Invert(2) = %v, want 100", got)
	}

	if _, err := NewLog(1); !errors.Is(err, core.ErrInvalidTransform) {
		t.Errorf("base 1 error = %v, want ErrInvalidTransform", err)
	}
}

func TestSet_Inverse(t *testing.T) {
	set := NewSet()
	lg, _ := NewLog(10)
	if err := set.Add("CD4", lg); err != nil {
		t.Fatal(err)
	}

	if !set.Has("CD4") || set.Has("CD8") {
		t.Errorf("Has: CD4=%v CD8=%v, want true false", set.Has("CD4"), set.Has("CD8"))
	}

	in := []float64{0, 1, 2}
	out, err := set.Inverse("CD4", in)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 10, 100}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("Inverse[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if in[1] != 1 {
		t.Error("Inverse mutated its input")
	}

	if _, err := set.Inverse("CD8", in); !errors.Is(err, core.ErrInvalidTransform) {
		t.Errorf("Inverse on unknown channel error = %v, want ErrInvalidTransform", err)
	}
	if err := set.Add("", lg); !errors.Is(err, core.ErrInvalidTransform) {
		t.Errorf("Add empty channel error = %v, want ErrInvalidTransform", err)
	}
	if err := set.Add("CD8", nil); !errors.Is(err, core.ErrInvalidTransform) {
		t.Errorf("Add nil transform error = %v, want ErrInvalidTransform", err)
	}
}
