package observe

import "testing"

func TestTrackerStartsAtZero(t *testing.T) {
	tr := NewTracker()
	if got := tr.Size(); got != (Size{}) {
		t.Fatalf("initial size = %+v, want {0,0}", got)
	}
}

func TestObserveDeliversCurrentSizeImmediately(t *testing.T) {
	tr := NewTracker()
	tr.Set(Size{Width: 80, Height: 24})

	var got []Size
	cancel := tr.Observe(func(s Size) { got = append(got, s) })
	defer cancel()

	if len(got) != 1 || got[0] != (Size{Width: 80, Height: 24}) {
		t.Fatalf("initial delivery = %v, want one {80,24}", got)
	}
}

func TestSetReEmitsOnChangeOnly(t *testing.T) {
	tr := NewTracker()
	var got []Size
	cancel := tr.Observe(func(s Size) { got = append(got, s) })
	defer cancel()

	tr.Set(Size{Width: 100, Height: 30})
	tr.Set(Size{Width: 100, Height: 30}) // unchanged, no re-emit
	tr.Set(Size{Width: 120, Height: 30})

	want := []Size{{}, {Width: 100, Height: 30}, {Width: 120, Height: 30}}
	if len(got) != len(want) {
		t.Fatalf("got %d emissions %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("emission %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	tr := NewTracker()
	count := 0
	cancel := tr.Observe(func(Size) { count++ })
	cancel()

	tr.Set(Size{Width: 50, Height: 10})
	if count != 1 {
		t.Fatalf("observer fired %d times after cancel, want 1 (initial only)", count)
	}
}

func TestSetAfterCloseIsNoOp(t *testing.T) {
	tr := NewTracker()
	count := 0
	tr.Observe(func(Size) { count++ })

	tr.Close()
	tr.Set(Size{Width: 999, Height: 999})

	if count != 1 {
		t.Fatalf("late Set fired observers %d times, want no post-close delivery", count)
	}
	if got := tr.Size(); got != (Size{}) {
		t.Fatalf("size mutated after close: %+v", got)
	}
}

func TestObserveAfterCloseNeverFires(t *testing.T) {
	tr := NewTracker()
	tr.Close()
	fired := false
	cancel := tr.Observe(func(Size) { fired = true })
	cancel()
	if fired {
		t.Fatal("observer registered after close must not fire")
	}
}
