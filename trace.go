// trace.go — the Trace capability and its leaf implementations.
//
// The engine reclaims values by reference counting, with periodic mark
// passes to break cycles. During a pass the collector needs to know, for
// every composite, which managed values it references; Traceable is how a
// composite reports them. Implementing Trace incorrectly by omitting a
// reference can never make the engine unsound: reference counting still
// governs deallocation, so a missed edge only keeps a cyclic structure alive
// forever (a leak, not a use-after-free).
//
// Correct composition is meant to be the path of least resistance: leaf
// kinds are no-ops, engine kinds report themselves, and the structural
// implementations in containers.go, tuple.go and boxes.go derive traversal
// mechanically from a type's shape. A hand-written Trace usually reduces to
// one t.Mark or child.Trace(t) call per field.
package rquickjs

// Traceable is implemented by every type that can hold managed references.
//
// Trace must report every managed value reachable from the receiver in one
// level of indirection: mark direct Value/Context fields, and forward the
// tracer to nested composites so they report their own fields. It must not
// allocate engine objects, run script, mutate engine-visible state or block;
// a mark pass is not a safe re-entrancy point. What gets reported must be
// deterministic, though the order carries no meaning for the collector.
type Traceable interface {
	Trace(t Tracer)
}

// Trace on a Value reports the value itself. This is the base forwarding
// implementation everything else bottoms out in.
func (v Value) Trace(t Tracer) { t.Mark(v) }

// Trace on a Context reports the context.
func (c *Context) Trace(t Tracer) { t.MarkContext(c) }

// ----------------------------------------------------------------------------
// Leaf kinds
// ----------------------------------------------------------------------------

// Atom is an interned name. A leaf kind: it can never hold an outgoing
// managed reference.
type Atom struct {
	id   uint32
	name string
}

func (a Atom) Name() string   { return a.name }
func (a Atom) Trace(t Tracer) {}

// Module is a loaded module handle, treated as a leaf at this layer.
type Module struct {
	name string
}

func NewModule(name string) Module { return Module{name: name} }

func (m Module) Name() string   { return m.name }
func (m Module) Trace(t Tracer) {}

// Defined scalar types with no-op Trace implementations. Plain Go scalars
// inside a hand-written composite need no reporting at all; these wrappers
// exist so scalars can appear as elements of the generic containers, which
// require every element type to be Traceable.
type (
	Bool    bool
	Int     int64
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint    uint64
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Float32 float32
	Float64 float64
	Rune    rune
	String  string
)

func (Bool) Trace(t Tracer)    {}
func (Int) Trace(t Tracer)     {}
func (Int8) Trace(t Tracer)    {}
func (Int16) Trace(t Tracer)   {}
func (Int32) Trace(t Tracer)   {}
func (Int64) Trace(t Tracer)   {}
func (Uint) Trace(t Tracer)    {}
func (Uint8) Trace(t Tracer)   {}
func (Uint16) Trace(t Tracer)  {}
func (Uint32) Trace(t Tracer)  {}
func (Uint64) Trace(t Tracer)  {}
func (Float32) Trace(t Tracer) {}
func (Float64) Trace(t Tracer) {}
func (Rune) Trace(t Tracer)    {}
func (String) Trace(t Tracer)  {}

// ----------------------------------------------------------------------------
// Dynamic traversal
// ----------------------------------------------------------------------------

// TraceAny traverses a dynamically-typed payload. Traceables trace
// themselves, values and contexts are marked, and the two untyped container
// shapes that show up in host payloads ([]any and map[string]any) are walked
// element by element. Anything else is a leaf.
//
// This is the escape hatch for heterogeneous data; statically shaped fields
// should prefer the typed containers, which the compiler checks.
func TraceAny(t Tracer, v any) {
	switch x := v.(type) {
	case nil:
	case Traceable:
		x.Trace(t)
	case []Value:
		for _, e := range x {
			t.Mark(e)
		}
	case []any:
		for _, e := range x {
			TraceAny(t, e)
		}
	case map[string]any:
		for _, e := range x {
			TraceAny(t, e)
		}
	}
}
