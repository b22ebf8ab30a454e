// Package connect binds a store to Bubble Tea views.
//
// A connected Model reads the store once at construction, subscribes for
// changes, and recomputes its derived props on every notification. The
// wrapped render function runs only when the props actually change; screen
// diffing stays with Bubble Tea. Unmount releases the subscription — hosts
// must call it on teardown or the store keeps a reference to a dead
// component.
//
// The store can be threaded explicitly (New) or provided ambiently to a
// subtree through a Provider handle; both give the same guarantees.
package connect
