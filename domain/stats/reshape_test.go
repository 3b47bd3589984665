package stats

import (
	"errors"
	"reflect"
	"testing"

	"cytostats/domain/core"
)

func TestToLong_MatchesProjection(t *testing.T) {
	rs := meanResultSet()
	got, err := ToLong(rs.Wide(), rs.Kind)
	if err != nil {
		t.Fatal(err)
	}
	if want := rs.Long(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToLong(Wide()) = %+v, want %+v", got, want)
	}
}

func TestToWide_MatchesProjection(t *testing.T) {
	rs := meanResultSet()
	got, err := ToWide(rs.Long(), rs.Kind)
	if err != nil {
		t.Fatal(err)
	}
	if want := rs.Wide(); !reflect.DeepEqual(got, want) {
		t.Errorf("ToWide(Long()) = %+v, want %+v", got, want)
	}
}

func TestReshape_RoundTrip(t *testing.T) {
	wide := meanResultSet().Wide()
	long, err := ToLong(wide, KindMean)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ToWide(long, KindMean)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, wide) {
		t.Errorf("round trip changed the table: got %+v, want %+v", back, wide)
	}
}

func TestReshape_CountUnchanged(t *testing.T) {
	wide := &Table{
		Columns: []string{"Sample", ColPopulation, "Count"},
		Rows:    [][]string{{"s1", "root", "42"}},
	}
	long, err := ToLong(wide, KindCount)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(long, wide) {
		t.Errorf("ToLong on count = %+v, want unchanged %+v", long, wide)
	}
	long.Rows[0][2] = "0"
	if wide.Rows[0][2] != "42" {
		t.Error("ToLong on count did not clone the table")
	}
}

func TestReshape_MissingPopulationColumn(t *testing.T) {
	bad := &Table{Columns: []string{"Sample", "FSC-A"}}
	if _, err := ToLong(bad, KindMean); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("ToLong error = %v, want ErrInvalidSample", err)
	}
	if _, err := ToWide(bad, KindMean); !errors.Is(err, core.ErrInvalidSample) {
		t.Errorf("ToWide error = %v, want ErrInvalidSample", err)
	}
}
