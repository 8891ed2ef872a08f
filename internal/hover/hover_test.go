package hover

import (
	"testing"

	"github.com/janekbaraniewski/dashplot/internal/series"
)

func lineSeries(n int) []series.Series {
	s := series.Series{Key: "a"}
	for i := 0; i < n; i++ {
		s.Data = append(s.Data, series.Datum{Label: string(rune('a' + i)), Value: float64(i * 10)})
	}
	return []series.Series{s}
}

func TestIndexEndpoints(t *testing.T) {
	const n = 7
	const w = 120.0
	if got := Index(0, w, n); got != 0 {
		t.Fatalf("Index(0) = %d, want 0", got)
	}
	if got := Index(w, w, n); got != n-1 {
		t.Fatalf("Index(innerWidth) = %d, want %d", got, n-1)
	}
}

func TestIndexMonotone(t *testing.T) {
	const n = 9
	const w = 200.0
	prev := 0
	for mx := 0.0; mx <= w; mx += 0.5 {
		got := Index(mx, w, n)
		if got < prev {
			t.Fatalf("Index not monotone: %d after %d at mx=%v", got, prev, mx)
		}
		prev = got
	}
}

func TestIndexMidpointRoundsHalfUp(t *testing.T) {
	// 5 labels over 100px → step 25. Midpoint between index 2 and 3 is 62.5.
	first := Index(62.5, 100, 5)
	if first != 3 {
		t.Fatalf("midpoint Index = %d, want 3 (round half up)", first)
	}
	for i := 0; i < 100; i++ {
		if got := Index(62.5, 100, 5); got != first {
			t.Fatalf("midpoint resolution oscillates: %d then %d", first, got)
		}
	}
}

func TestIndexClampsOutside(t *testing.T) {
	if got := Index(-50, 100, 5); got != 0 {
		t.Fatalf("Index(-50) = %d, want 0", got)
	}
	if got := Index(500, 100, 5); got != 4 {
		t.Fatalf("Index(500) = %d, want 4", got)
	}
}

func TestIndexEmptyData(t *testing.T) {
	if got := Index(10, 100, 0); got != 0 {
		t.Fatalf("Index with no labels = %d, want 0", got)
	}
}

func TestLineValuesShortSeriesReportZero(t *testing.T) {
	long := series.Series{Key: "long", Data: []series.Datum{{Label: "x", Value: 1}, {Label: "y", Value: 2}}}
	short := series.Series{Key: "short", Data: []series.Datum{{Label: "x", Value: 9}}}
	vals := LineValues([]series.Series{long, short}, 1)
	if vals["long"] != 2 {
		t.Fatalf("long value = %v, want 2", vals["long"])
	}
	if vals["short"] != 0 {
		t.Fatalf("short value = %v, want 0 for out-of-range index", vals["short"])
	}
}

func TestBarsOpacityRule(t *testing.T) {
	b := NewBars(nil)
	const base = 0.8

	if got := b.Opacity("a", base); got != base {
		t.Fatalf("no hover opacity = %v, want %v", got, base)
	}

	b.Enter("a", 12)
	if got := b.Opacity("a", base); got != 1 {
		t.Fatalf("hovered opacity = %v, want 1", got)
	}
	if got := b.Opacity("b", base); got != base*0.5 {
		t.Fatalf("non-hovered opacity = %v, want %v", got, base*0.5)
	}

	b.Leave()
	if got := b.Opacity("b", base); got != base {
		t.Fatalf("post-leave opacity = %v, want %v", got, base)
	}
}

func TestBarsLeaveFiresNoneExactlyOnce(t *testing.T) {
	var calls []*BarPayload
	b := NewBars(func(p *BarPayload) { calls = append(calls, p) })

	b.Enter("a", 12)
	b.Leave()
	b.Leave() // second leave must not re-fire

	if len(calls) != 2 {
		t.Fatalf("callback fired %d times, want 2 (enter + one leave)", len(calls))
	}
	if calls[0] == nil || calls[0].Label != "a" || calls[0].Value != 12 {
		t.Fatalf("enter payload = %+v", calls[0])
	}
	if calls[1] != nil {
		t.Fatalf("leave payload = %+v, want explicit nil", calls[1])
	}
}

func TestLineMoveResolvesCrossSeries(t *testing.T) {
	a := series.Series{Key: "a", Data: []series.Datum{{Label: "x", Value: 1}, {Label: "y", Value: 2}, {Label: "z", Value: 3}}}
	b := series.Series{Key: "b", Data: []series.Datum{{Label: "x", Value: 10}, {Label: "y", Value: 20}, {Label: "z", Value: 30}}}

	var last *LinePayload
	l := NewLine(func(p *LinePayload) { last = p })

	l.Move(100, 100, []series.Series{a, b})
	if last == nil {
		t.Fatal("expected hover payload")
	}
	if last.Index != 2 || last.Label != "z" {
		t.Fatalf("payload = %+v, want index 2 label z", last)
	}
	if last.ValuesByKey["a"] != 3 || last.ValuesByKey["b"] != 30 {
		t.Fatalf("ValuesByKey = %v", last.ValuesByKey)
	}
}

func TestLineLeaveClearsOnce(t *testing.T) {
	count := 0
	var lastNil bool
	l := NewLine(func(p *LinePayload) {
		count++
		lastNil = p == nil
	})

	l.Move(0, 100, lineSeries(4))
	l.Leave()
	l.Leave()

	if count != 2 {
		t.Fatalf("callback fired %d times, want 2", count)
	}
	if !lastNil {
		t.Fatal("leave must fire with explicit nil payload")
	}
	if _, ok := l.Hovered(); ok {
		t.Fatal("Hovered() should report false after leave")
	}
}

func TestLineMoveOnEmptyDataReportsNoHover(t *testing.T) {
	l := NewLine(nil)
	l.Move(10, 100, nil)
	if _, ok := l.Hovered(); ok {
		t.Fatal("hover on empty data must stay none")
	}
}
