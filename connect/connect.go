package connect

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/eddy/store"
)

// Dispatch sends an action to the connected store.
type Dispatch func(store.Action)

// ChangeMsg is delivered to a connected Model when its store subscription
// signals a state change. Each Model reacts only to messages from its own
// subscription and ignores the rest.
type ChangeMsg struct {
	src chan struct{}
}

// teardown is shared across copies of a Model so Unmount stays idempotent
// no matter which copy it is called on.
type teardown struct {
	once   sync.Once
	done   chan struct{}
	cancel func()
}

// Model connects a presentation render function to a store.
//
// The render function receives the derived props and a Dispatch for wiring
// action callbacks; it is invoked at mount and then once per distinct props
// value. Model follows the usual Bubble Tea value-receiver shape and is
// embedded in a host model like any other component.
type Model[S any, P comparable] struct {
	st       *store.Store[S]
	selector func(S) P
	render   func(P, Dispatch) string

	props   P
	content string

	changes chan struct{}
	td      *teardown
}

// New mounts a connected component on st: it computes the initial props from
// the current state, renders once, and subscribes for changes. Callers must
// call Unmount when the component is torn down.
func New[S any, P comparable](st *store.Store[S], selector func(S) P, render func(P, Dispatch) string) Model[S, P] {
	m := Model[S, P]{
		st:       st,
		selector: selector,
		render:   render,
		changes:  make(chan struct{}, 1),
	}
	m.props = selector(st.State())
	m.content = render(m.props, st.Dispatch)

	ch := m.changes
	cancel := st.Subscribe(func() {
		// Coalescing signal: a pending notification already covers this
		// change, the model re-reads the store when it processes it.
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	m.td = &teardown{done: make(chan struct{}), cancel: cancel}
	return m
}

func (m Model[S, P]) Init() tea.Cmd { return m.wait() }

func (m Model[S, P]) wait() tea.Cmd {
	ch, done := m.changes, m.td.done
	return func() tea.Msg {
		select {
		case <-ch:
			return ChangeMsg{src: ch}
		case <-done:
			return nil
		}
	}
}

// Update recomputes the derived props on change notifications from this
// model's own subscription. Other messages pass through untouched.
func (m Model[S, P]) Update(msg tea.Msg) (Model[S, P], tea.Cmd) {
	change, ok := msg.(ChangeMsg)
	if !ok || change.src != m.changes {
		return m, nil
	}

	select {
	case <-m.td.done:
		return m, nil
	default:
	}

	next := m.selector(m.st.State())
	if next != m.props {
		m.props = next
		m.content = m.render(next, m.st.Dispatch)
	}
	return m, m.wait()
}

// View returns the last rendered content.
func (m Model[S, P]) View() string { return m.content }

// Props returns the current derived props: selector applied to the store
// state as of the last processed notification (or mount).
func (m Model[S, P]) Props() P { return m.props }

// Dispatch sends an action to the connected store.
func (m Model[S, P]) Dispatch(a store.Action) { m.st.Dispatch(a) }

// Unmount cancels the store subscription and releases the pending wait
// command. Safe to call more than once; the component stays torn down.
func (m Model[S, P]) Unmount() {
	m.td.once.Do(func() {
		m.td.cancel()
		close(m.td.done)
	})
}
