package cyto

import (
	"errors"
	"reflect"
	"testing"

	"cytostats/domain/core"
)

func TestDetails_SetAndRow(t *testing.T) {
	d := NewDetails("Treatment", "Batch")
	if want := []string{"Sample", "Treatment", "Batch"}; !reflect.DeepEqual(d.Columns(), want) {
		t.Fatalf("Columns() = %v, want %v", d.Columns(), want)
	}

	if err := d.Set("s1", "Stim-A", "b1"); err != nil {
		t.Fatal(err)
	}
	if want := []string{"s1", "Stim-A", "b1"}; !reflect.DeepEqual(d.Row("s1"), want) {
		t.Errorf("Row(s1) = %v, want %v", d.Row("s1"), want)
	}

	// Unset samples still get a full-width row.
	if want := []string{"s2", "", ""}; !reflect.DeepEqual(d.Row("s2"), want) {
		t.Errorf("Row(s2) = %v, want %v", d.Row("s2"), want)
	}

	if err := d.Set("s3", "only-one"); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("Set with wrong arity error = %v, want ErrInvalidSample", err)
	}
}

func TestDetails_Merge(t *testing.T) {
	a := NewDetails("Treatment")
	_ = a.Set("s1", "Stim-A")
	b := NewDetails("Treatment")
	_ = b.Set("s2", "Stim-B")

	merged, err := a.Merge(b)
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.Row("s1"); got[1] != "Stim-A" {
		t.Errorf("merged Row(s1) = %v", got)
	}
	if got := merged.Row("s2"); got[1] != "Stim-B" {
		t.Errorf("merged Row(s2) = %v", got)
	}

	c := NewDetails("Batch")
	if _, err := a.Merge(c); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("Merge with mismatched columns error = %v, want ErrInvalidSample", err)
	}
}
