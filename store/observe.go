package store

// Observe attaches view as a change-detecting renderer: it invokes view with
// the current state once, synchronously, then again after any dispatch whose
// state differs from the last value delivered. Dispatches that leave the
// state equal to that value are skipped, so view runs at most once per
// distinct consecutive state.
//
// The returned cancel removes the subscription; cancelling twice is a no-op.
// view runs on the dispatching goroutine, like any listener.
func Observe[S comparable](s *Store[S], view func(S)) (cancel func()) {
	last := s.State()
	view(last)
	return s.Subscribe(func() {
		next := s.State()
		if next == last {
			return
		}
		last = next
		view(next)
	})
}
