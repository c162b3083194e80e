package client

import "sync"

// State is the lifecycle state of a list view.
type State int

const (
	// StateIdle means no load has been attempted yet.
	StateIdle State = iota
	// StateLoading means a load is in flight.
	StateLoading
	// StateLoaded means the view holds data from the last successful load.
	StateLoaded
	// StateFailed means the last load failed; previously loaded items are
	// kept untouched.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// listView tracks one collection and its load state. Transitions are driven
// only by explicit data-layer calls.
type listView[T any] struct {
	mu    sync.RWMutex
	state State
	items []T
	err   error
}

func (v *listView[T]) loading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateLoading
	v.err = nil
}

func (v *listView[T]) loaded(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateLoaded
	v.items = items
	v.err = nil
}

func (v *listView[T]) failed(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateFailed
	v.err = err
}

// snapshot returns a copy of the items plus the current state and error.
func (v *listView[T]) snapshot() ([]T, State, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	items := make([]T, len(v.items))
	copy(items, v.items)
	return items, v.state, v.err
}

// reconcile applies fn to the loaded items after a successful mutation.
func (v *listView[T]) reconcile(fn func(items []T) []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StateLoaded {
		return
	}
	v.items = fn(v.items)
}
