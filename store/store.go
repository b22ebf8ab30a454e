package store

import "sync"

// Action describes an intended state transition. Actions are plain values;
// reducers type-switch on the concrete type and must leave state unchanged
// for anything they do not recognize.
type Action any

// Tagged is implemented by actions that expose a stable tag for logs and
// traces. Implementing it is optional.
type Tagged interface {
	Tag() string
}

// Reducer computes the next state from the current state and an action. It
// must be pure, and it must return its input unchanged (the same value) for
// unrecognized actions so equality-based renderers can skip the update.
type Reducer[S any] func(S, Action) S

// Store owns exactly one state value and its listener registry. State is
// replaced only through Dispatch; listeners are managed only through
// Subscribe and the cancel it returns. Safe for concurrent use.
//
// Construct with New; the zero value has no reducer and is not usable.
type Store[S any] struct {
	mu      sync.Mutex
	reducer Reducer[S]
	state   S

	subs   map[int]func()
	order  []int
	nextID int

	notifying bool
	pending   []Action
}

// New creates a store holding initial and reducing actions through reducer.
func New[S any](reducer Reducer[S], initial S) *Store[S] {
	return &Store[S]{
		reducer: reducer,
		state:   initial,
		subs:    make(map[int]func()),
	}
}

// State returns the current state. No side effects.
func (s *Store[S]) State() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the state and then invokes every registered
// listener, in registration order, on the calling goroutine.
//
// Dispatch from inside a listener does not nest: the action is queued and
// flushed FIFO after the current notification pass completes. Listeners
// subscribed during a pass are not invoked for the in-flight dispatch;
// listeners cancelled during a pass are skipped.
func (s *Store[S]) Dispatch(a Action) {
	s.mu.Lock()
	if s.notifying {
		s.pending = append(s.pending, a)
		s.mu.Unlock()
		return
	}
	s.notifying = true

	for {
		s.state = s.reducer(s.state, a)
		ids := s.liveListeners()
		s.mu.Unlock()

		for _, id := range ids {
			s.mu.Lock()
			fn, ok := s.subs[id]
			s.mu.Unlock()
			if ok {
				fn()
			}
		}

		s.mu.Lock()
		if len(s.pending) == 0 {
			break
		}
		a = s.pending[0]
		s.pending = s.pending[1:]
	}

	s.notifying = false
	s.mu.Unlock()
}

// liveListeners snapshots registration order, compacting ids whose listener
// has been cancelled. The returned slice is a copy: listeners subscribed
// during the notification pass must not alias it. Caller must hold mu.
func (s *Store[S]) liveListeners() []int {
	live := make([]int, 0, len(s.subs))
	for _, id := range s.order {
		if _, ok := s.subs[id]; ok {
			live = append(live, id)
		}
	}
	s.order = live
	snapshot := make([]int, len(live))
	copy(snapshot, live)
	return snapshot
}

// Subscribe registers fn to run after every dispatch and returns a cancel
// function removing exactly this registration. Cancelling twice is a no-op.
// The same fn may be subscribed multiple times; each call is an independent
// registration with its own cancel.
func (s *Store[S]) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
