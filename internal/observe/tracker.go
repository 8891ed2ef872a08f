// Package observe models container-size observation as an explicit resource:
// acquire with Observe, release with the returned cancel func, tear the whole
// tracker down with Close. Notification is push-based; nothing polls.
package observe

import "sync"

// Size is a container's content box in cells.
type Size struct {
	Width  int
	Height int
}

// Tracker holds the latest known size of one container and fans updates out
// to observers. It starts at {0,0}, meaning not yet paintable, until the
// host pushes a real measurement.
type Tracker struct {
	mu     sync.Mutex
	size   Size
	subs   map[int]func(Size)
	nextID int
	closed bool
}

func NewTracker() *Tracker {
	return &Tracker{subs: make(map[int]func(Size))}
}

// Size returns the latest reported size.
func (t *Tracker) Size() Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Observe registers fn and immediately delivers the current size (which may
// be {0,0}). The returned cancel func unregisters fn; after cancel, fn never
// fires again.
func (t *Tracker) Observe(fn func(Size)) (cancel func()) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return func() {}
	}
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	current := t.size
	t.mu.Unlock()

	fn(current)

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Set records a new measurement and re-emits it to every live observer.
// Unchanged sizes are not re-broadcast. After Close, Set is a no-op, so a
// late resize notification arriving during teardown cannot fire callbacks.
func (t *Tracker) Set(s Size) {
	t.mu.Lock()
	if t.closed || s == t.size {
		t.mu.Unlock()
		return
	}
	t.size = s
	fns := make([]func(Size), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Close releases the observation: all observers are dropped and further Set
// calls do nothing.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.subs = map[int]func(Size){}
	t.mu.Unlock()
}
