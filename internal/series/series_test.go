package series

import "testing"

func mkSeries(key string, labels []string) Series {
	s := Series{Key: key}
	for i, l := range labels {
		s.Data = append(s.Data, Datum{Label: l, Value: float64(i)})
	}
	return s
}

func TestAlignAcceptsMatchingLabels(t *testing.T) {
	a := mkSeries("a", []string{"06/23", "06/24", "06/25"})
	b := mkSeries("b", []string{"06/23", "06/24", "06/25"})
	if err := Align([]Series{a, b}); err != nil {
		t.Fatalf("Align() = %v, want nil", err)
	}
}

func TestAlignRejectsLengthMismatch(t *testing.T) {
	a := mkSeries("a", []string{"x", "y", "z"})
	b := mkSeries("b", []string{"x", "y"})
	if err := Align([]Series{a, b}); err == nil {
		t.Fatal("Align() = nil, want error for length mismatch")
	}
}

func TestAlignRejectsLabelMismatch(t *testing.T) {
	a := mkSeries("a", []string{"x", "y"})
	b := mkSeries("b", []string{"x", "q"})
	if err := Align([]Series{a, b}); err == nil {
		t.Fatal("Align() = nil, want error for label mismatch")
	}
}

func TestAlignSingleSeriesAlwaysOK(t *testing.T) {
	if err := Align([]Series{mkSeries("a", []string{"x"})}); err != nil {
		t.Fatalf("Align() = %v, want nil", err)
	}
	if err := Align(nil); err != nil {
		t.Fatalf("Align(nil) = %v, want nil", err)
	}
}

func TestValueAtOutOfRange(t *testing.T) {
	s := mkSeries("a", []string{"x", "y"})
	if got := s.ValueAt(5); got != 0 {
		t.Fatalf("ValueAt(5) = %v, want 0", got)
	}
	if got := s.ValueAt(-1); got != 0 {
		t.Fatalf("ValueAt(-1) = %v, want 0", got)
	}
	if got := s.ValueAt(1); got != 1 {
		t.Fatalf("ValueAt(1) = %v, want 1", got)
	}
}

func TestMaxValue(t *testing.T) {
	a := Series{Key: "a", Data: []Datum{{Label: "x", Value: 12}, {Label: "y", Value: 47}}}
	b := Series{Key: "b", Data: []Datum{{Label: "x", Value: 8}}}
	if got := MaxValue([]Series{a, b}); got != 47 {
		t.Fatalf("MaxValue = %v, want 47", got)
	}
	if got := MaxValue(nil); got != 0 {
		t.Fatalf("MaxValue(nil) = %v, want 0", got)
	}
}
