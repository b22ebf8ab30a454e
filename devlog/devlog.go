// Package devlog provides development-time structured logging for store
// dispatches.
package devlog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/eddy/store"
)

// WrapReducer decorates next so every dispatch logs the action and whether
// it changed the state, then delegates. The wrapper stays pure: it adds no
// behavior beyond the log event.
//
// Actions implementing store.Tagged log their tag; anything else logs its Go
// type, which also surfaces malformed actions during development without
// turning them into faults.
func WrapReducer[S comparable](log zerolog.Logger, next store.Reducer[S]) store.Reducer[S] {
	return func(state S, action store.Action) S {
		out := next(state, action)
		log.Debug().
			Str("action", actionTag(action)).
			Bool("changed", out != state).
			Msg("dispatch")
		return out
	}
}

func actionTag(a store.Action) string {
	if t, ok := a.(store.Tagged); ok {
		return t.Tag()
	}
	return fmt.Sprintf("%T", a)
}
