// Package store implements a minimal unidirectional-data-flow state
// container: one state value, a pure reducer, and an ordered listener
// registry notified synchronously after every dispatch.
//
// The container itself knows nothing about rendering. Observe adds the
// change-detecting subscriber used by plain renderers; package connect binds
// a store to Bubble Tea views.
package store
