package scale

import (
	"math"
	"testing"
)

func TestBandPartitionsWidthExactly(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	b := NewBand(labels, 200, 0.35)

	if got := b.Step() * float64(len(labels)); math.Abs(got-200) > 1e-9 {
		t.Fatalf("steps sum to %v, want 200", got)
	}

	// Bands must not overlap: right edge of band i stays left of band i+1.
	for i := 0; i < len(labels)-1; i++ {
		right := b.PosAt(i) + b.Bandwidth()
		next := b.PosAt(i + 1)
		if right > next+1e-9 {
			t.Fatalf("band %d right edge %v overlaps band %d at %v", i, right, i+1, next)
		}
	}
}

func TestBandwidthContract(t *testing.T) {
	b := NewBand([]string{"06/23", "06/24", "06/25"}, 90, 0.35)
	want := 90.0 / 3 * (1 - 0.35)
	if got := b.Bandwidth(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Bandwidth = %v, want %v", got, want)
	}
}

func TestBandEmptyDomainLookupFails(t *testing.T) {
	b := NewBand(nil, 100, 0.35)
	if _, ok := b.Pos("anything"); ok {
		t.Fatal("empty-domain lookup should fail")
	}
	if got := b.Step(); got != 0 {
		t.Fatalf("Step on empty domain = %v, want 0", got)
	}
}

func TestBandDeterministic(t *testing.T) {
	labels := []string{"x", "y", "z"}
	a := NewBand(labels, 123, 0.2)
	b := NewBand(labels, 123, 0.2)
	for i := range labels {
		if a.PosAt(i) != b.PosAt(i) {
			t.Fatalf("band pos at %d differs across identical constructions", i)
		}
	}
}

func TestPointSpreadsInclusive(t *testing.T) {
	p := NewPoint([]string{"a", "b", "c", "d", "e"}, 100)
	if got := p.PosAt(0); got != 0 {
		t.Fatalf("first point at %v, want 0", got)
	}
	if got := p.PosAt(4); math.Abs(got-100) > 1e-9 {
		t.Fatalf("last point at %v, want 100", got)
	}
	if got := p.PosAt(2); math.Abs(got-50) > 1e-9 {
		t.Fatalf("middle point at %v, want 50", got)
	}
}

func TestPointSingleLabelMapsToZero(t *testing.T) {
	p := NewPoint([]string{"only"}, 100)
	pos, ok := p.Pos("only")
	if !ok || pos != 0 {
		t.Fatalf("single point Pos = %v, %v; want 0, true", pos, ok)
	}
}

func TestLinearOrientation(t *testing.T) {
	l := NewLinear(0, 50, 120)
	min, max := l.Domain()
	if got := l.Pos(min); got != 120 {
		t.Fatalf("Pos(min) = %v, want 120 (bottom)", got)
	}
	if got := l.Pos(max); got != 0 {
		t.Fatalf("Pos(max) = %v, want 0 (top)", got)
	}
}

func TestNiceContainsRawDomain(t *testing.T) {
	cases := [][2]float64{{0, 47}, {3, 96}, {-12, 7}, {0.2, 0.9}, {100, 4321}}
	for _, c := range cases {
		lo, hi := Nice(c[0], c[1], 4)
		if lo > c[0] || hi < c[1] {
			t.Fatalf("Nice(%v,%v) = [%v,%v] does not contain input", c[0], c[1], lo, hi)
		}
	}
}

func TestNiceRoundsFortySevenToFifty(t *testing.T) {
	lo, hi := Nice(0, 47, 4)
	if lo != 0 || hi != 50 {
		t.Fatalf("Nice(0,47) = [%v,%v], want [0,50]", lo, hi)
	}
}

func TestNiceAppliesOnExplicitOverride(t *testing.T) {
	l := NewLinear(0, 47, 100)
	_, max := l.Domain()
	if max != 50 {
		t.Fatalf("override domain max niced to %v, want 50", max)
	}
}

func TestDefaultDomain(t *testing.T) {
	if _, max := DefaultDomain([]float64{12, 47, 8}); max != 47 {
		t.Fatalf("DefaultDomain max = %v, want 47", max)
	}
	if _, max := DefaultDomain(nil); max != 1 {
		t.Fatalf("DefaultDomain(empty) max = %v, want 1", max)
	}
	if _, max := DefaultDomain([]float64{0, 0}); max != 1 {
		t.Fatalf("DefaultDomain(zeros) max = %v, want 1", max)
	}
}

func TestDegenerateDomainStillMaps(t *testing.T) {
	l := NewLinear(5, 5, 100)
	min, max := l.Domain()
	if min >= max {
		t.Fatalf("degenerate domain not expanded: [%v,%v]", min, max)
	}
}
