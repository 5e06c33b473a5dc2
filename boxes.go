// boxes.go — structural Trace implementations for ownership wrappers.
//
// Ownership wrappers are transparent to reachability: tracing the wrapper
// is tracing the wrapped value, nothing more. Three shapes are declared,
// mirroring how host composites tend to hold engine state: Box for a single
// owner with indirection, Shared for a hand-off between host components
// counted without atomics, and SyncShared for the same hand-off across
// goroutines. An empty wrapper traces nothing.
//
// Raw *T fields get no implicit implementation; wrap them or trace them by
// hand so ownership stays visible in the type.
package rquickjs

import "sync/atomic"

// Box owns a single heap-allocated T.
type Box[T Traceable] struct {
	p *T
}

// NewBox moves v behind an owning indirection.
func NewBox[T Traceable](v T) Box[T] { return Box[T]{p: &v} }

// Deref returns the owned value; nil for the zero Box.
func (b Box[T]) Deref() *T { return b.p }

// Trace delegates verbatim to the boxed value.
func (b Box[T]) Trace(t Tracer) {
	if b.p != nil {
		(*b.p).Trace(t)
	}
}

// Shared is a reference-counted cell shared between host components on one
// goroutine. Clone takes a new handle, Drop releases one; the count is
// bookkeeping for the host's own discipline and is invisible to the engine.
type Shared[T Traceable] struct {
	s *sharedCell[T]
}

type sharedCell[T Traceable] struct {
	v    T
	refs int64
}

// NewShared wraps v with an initial count of one.
func NewShared[T Traceable](v T) Shared[T] {
	return Shared[T]{s: &sharedCell[T]{v: v, refs: 1}}
}

// Clone returns a new handle to the same cell.
func (s Shared[T]) Clone() Shared[T] {
	if s.s != nil {
		s.s.refs++
	}
	return s
}

// Drop releases one handle and reports whether the cell is now unreferenced.
func (s Shared[T]) Drop() bool {
	if s.s == nil {
		return false
	}
	s.s.refs--
	return s.s.refs <= 0
}

// Deref returns the shared value; nil for the zero Shared.
func (s Shared[T]) Deref() *T {
	if s.s == nil {
		return nil
	}
	return &s.s.v
}

// Trace delegates verbatim to the shared value.
func (s Shared[T]) Trace(t Tracer) {
	if s.s != nil {
		s.s.v.Trace(t)
	}
}

// SyncShared is Shared with an atomic count, for handles passed between
// goroutines. The tracing contract is unchanged: mark passes run
// single-threaded, so Trace itself needs no synchronization.
type SyncShared[T Traceable] struct {
	s *syncSharedCell[T]
}

type syncSharedCell[T Traceable] struct {
	v    T
	refs atomic.Int64
}

// NewSyncShared wraps v with an initial count of one.
func NewSyncShared[T Traceable](v T) SyncShared[T] {
	c := &syncSharedCell[T]{v: v}
	c.refs.Store(1)
	return SyncShared[T]{s: c}
}

// Clone returns a new handle to the same cell.
func (s SyncShared[T]) Clone() SyncShared[T] {
	if s.s != nil {
		s.s.refs.Add(1)
	}
	return s
}

// Drop releases one handle and reports whether the cell is now unreferenced.
func (s SyncShared[T]) Drop() bool {
	if s.s == nil {
		return false
	}
	return s.s.refs.Add(-1) <= 0
}

// Deref returns the shared value; nil for the zero SyncShared.
func (s SyncShared[T]) Deref() *T {
	if s.s == nil {
		return nil
	}
	return &s.s.v
}

// Trace delegates verbatim to the shared value.
func (s SyncShared[T]) Trace(t Tracer) {
	if s.s != nil {
		s.s.v.Trace(t)
	}
}
