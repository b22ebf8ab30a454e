package store

import "testing"

type add struct{ n int }

type reset struct{}

func (add) Tag() string   { return "ADD" }
func (reset) Tag() string { return "RESET" }

func reduceCounter(state int, action Action) int {
	switch a := action.(type) {
	case add:
		return state + a.n
	case reset:
		return 0
	default:
		return state
	}
}

func TestStore_DispatchReducesState(t *testing.T) {
	st := New(reduceCounter, 0)
	if got := st.State(); got != 0 {
		t.Fatalf("initial state: got %d, want 0", got)
	}

	st.Dispatch(add{n: 2})
	st.Dispatch(add{n: 3})
	if got := st.State(); got != 5 {
		t.Fatalf("state after adds: got %d, want 5", got)
	}

	st.Dispatch(reset{})
	if got := st.State(); got != 0 {
		t.Fatalf("state after reset: got %d, want 0", got)
	}
}

func TestStore_UnknownActionLeavesStateUnchanged(t *testing.T) {
	st := New(reduceCounter, 7)

	st.Dispatch(struct{ anything string }{anything: "nope"})
	if got := st.State(); got != 7 {
		t.Fatalf("state after unknown action: got %d, want 7", got)
	}
}

func TestStore_ListenersRunInRegistrationOrder(t *testing.T) {
	st := New(reduceCounter, 0)

	var calls []string
	st.Subscribe(func() { calls = append(calls, "first") })
	st.Subscribe(func() { calls = append(calls, "second") })
	st.Subscribe(func() { calls = append(calls, "third") })

	st.Dispatch(add{n: 1})
	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("listener calls: got %d, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestStore_ListenersFireEvenWhenStateUnchanged(t *testing.T) {
	st := New(reduceCounter, 0)

	fired := 0
	st.Subscribe(func() { fired++ })

	st.Dispatch(struct{}{})
	if fired != 1 {
		t.Fatalf("listener fires after no-op dispatch: got %d, want 1", fired)
	}
}

func TestStore_CancelRemovesListener(t *testing.T) {
	st := New(reduceCounter, 0)

	fired := 0
	cancel := st.Subscribe(func() { fired++ })

	st.Dispatch(add{n: 1})
	cancel()
	st.Dispatch(add{n: 1})

	if fired != 1 {
		t.Fatalf("listener fires after cancel: got %d, want 1", fired)
	}

	// Double cancel must be a no-op.
	cancel()
	st.Dispatch(add{n: 1})
	if fired != 1 {
		t.Fatalf("listener fires after double cancel: got %d, want 1", fired)
	}
}

func TestStore_SameListenerSubscribedTwice(t *testing.T) {
	st := New(reduceCounter, 0)

	fired := 0
	fn := func() { fired++ }
	cancelA := st.Subscribe(fn)
	cancelB := st.Subscribe(fn)

	st.Dispatch(add{n: 1})
	if fired != 2 {
		t.Fatalf("double-subscribed listener: got %d calls, want 2", fired)
	}

	cancelA()
	st.Dispatch(add{n: 1})
	if fired != 3 {
		t.Fatalf("after cancelling one handle: got %d calls, want 3", fired)
	}

	cancelB()
	st.Dispatch(add{n: 1})
	if fired != 3 {
		t.Fatalf("after cancelling both handles: got %d calls, want 3", fired)
	}
}

func TestStore_SubscribeDuringNotifySkipsInflightDispatch(t *testing.T) {
	st := New(reduceCounter, 0)

	lateFired := 0
	st.Subscribe(func() {
		st.Subscribe(func() { lateFired++ })
	})

	st.Dispatch(add{n: 1})
	if lateFired != 0 {
		t.Fatalf("listener added during notify fired for in-flight dispatch: got %d", lateFired)
	}

	st.Dispatch(add{n: 1})
	// One registration per prior dispatch, each firing once now.
	if lateFired != 1 {
		t.Fatalf("listener added during notify: got %d calls, want 1", lateFired)
	}
}

func TestStore_CancelDuringNotifySkipsListener(t *testing.T) {
	st := New(reduceCounter, 0)

	secondFired := 0
	var cancelSecond func()
	st.Subscribe(func() { cancelSecond() })
	cancelSecond = st.Subscribe(func() { secondFired++ })

	st.Dispatch(add{n: 1})
	if secondFired != 0 {
		t.Fatalf("listener cancelled during notify still fired: got %d", secondFired)
	}
}

func TestStore_NestedDispatchIsQueuedFIFO(t *testing.T) {
	st := New(reduceCounter, 0)

	var seen []int
	nested := false
	st.Subscribe(func() {
		if !nested {
			nested = true
			st.Dispatch(add{n: 10})
			st.Dispatch(add{n: 100})
			// Queued, not applied yet: the nested dispatches must not have
			// run their reductions inside this notification pass.
			if got := st.State(); got != 1 {
				t.Fatalf("state during notify: got %d, want 1", got)
			}
		}
		seen = append(seen, st.State())
	})

	st.Dispatch(add{n: 1})

	if got := st.State(); got != 111 {
		t.Fatalf("state after flush: got %d, want 111", got)
	}
	want := []int{1, 11, 111}
	if len(seen) != len(want) {
		t.Fatalf("notification passes: got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("pass %d state: got %d, want %d", i, seen[i], want[i])
		}
	}
}
