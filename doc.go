// Package rquickjs models the embedding surface of a QuickJS-style
// reference-counted value engine, centered on its cycle-aware garbage
// collection tracing layer.
//
// Reference counting reclaims acyclic values on its own; cycles need a
// collector that periodically walks the heap and asks every composite which
// managed values it references. Composites answer by implementing Traceable
// and reporting each reference through a pass-scoped Tracer. The library
// ships no collector policy of its own: deciding when a pass runs, recursing
// into reported children, detecting cycles and freeing memory all belong to
// the collector driving the pass (see internal/collector for the driver used
// by the tests and tools in this repository).
//
// An incomplete Trace implementation cannot corrupt the engine; reference
// counting still governs deallocation, so a missed edge only leaks the
// cycles it was keeping hidden.
package rquickjs
