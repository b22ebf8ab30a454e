package connect

import (
	"sync"

	"github.com/iw2rmb/eddy/store"
)

// Provider carries a store handle for a subtree of components so the store
// does not have to be threaded through every constructor. It is an explicit
// dependency-injection handle, not ambient global state: components reach
// the store only through the Provider they were built with.
type Provider[S any] struct {
	st *store.Store[S]

	mu      sync.Mutex
	mounted []func()
}

// NewProvider wraps st for a component subtree.
func NewProvider[S any](st *store.Store[S]) *Provider[S] {
	return &Provider[S]{st: st}
}

// Store returns the provided store handle.
func (p *Provider[S]) Store() *store.Store[S] { return p.st }

// Shutdown unmounts every component created through Connect. Idempotent;
// components unmounted individually beforehand are unaffected.
func (p *Provider[S]) Shutdown() {
	p.mu.Lock()
	mounted := p.mounted
	p.mounted = nil
	p.mu.Unlock()

	for _, unmount := range mounted {
		unmount()
	}
}

// Connect mounts a component on the provider's store and registers it for
// Shutdown. Equivalent to New(p.Store(), ...) plus the teardown guarantee.
//
// Free function because the props type is per-component, which Go methods
// cannot parameterize.
func Connect[S any, P comparable](p *Provider[S], selector func(S) P, render func(P, Dispatch) string) Model[S, P] {
	m := New(p.st, selector, render)
	p.mu.Lock()
	p.mounted = append(p.mounted, m.Unmount)
	p.mu.Unlock()
	return m
}
