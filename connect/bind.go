package connect

import "github.com/iw2rmb/eddy/store"

// Bind wraps an action creator into a callable that builds the action from
// its argument and dispatches it.
func Bind[A any](d Dispatch, creator func(A) store.Action) func(A) {
	return func(v A) { d(creator(v)) }
}

// Bind0 is Bind for action creators that take no arguments.
func Bind0(d Dispatch, creator func() store.Action) func() {
	return func() { d(creator()) }
}
