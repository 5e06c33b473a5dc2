// tracer.go — the pass-scoped mark visitor.
//
// During a mark pass the collector wraps its raw (runtime, mark callback)
// pair into a Tracer and hands it to every live object's Trace
// implementation. The Tracer is the only way a Trace implementation can
// report a reference; implementations never see the callback itself.
//
// A Tracer is a lightweight descriptor, freely copyable and passed by value,
// but it is valid only for the duration of the single Trace call it was
// passed into. Go cannot express that lifetime in the type system the way a
// borrow does, so the contract is enforced two ways: the documented
// obligations on UnsafeNewTracer, and a pass token that makes a retained
// tracer panic the moment it is used after its pass ended or against a
// different runtime.
package rquickjs

import "unsafe"

// MarkFunc is the collector's raw mark callback. It receives the runtime the
// pass is bound to and the native pointer of one reachable cell or context.
// Reporting the same pointer multiple times per pass is harmless; the
// collector deduplicates.
type MarkFunc func(rt *Runtime, p unsafe.Pointer)

// passToken scopes a tracer to one runtime and one mark pass.
type passToken struct {
	rt   [16]byte // runtime identity (uuid bytes)
	pass uint64   // pass ordinal handed out by BeginMarkPass
}

// Tracer reports reachable references to the collector driving the current
// mark pass. Copies share the same binding; none of them may outlive the
// Trace call they were passed into.
type Tracer struct {
	rt    *Runtime
	mark  MarkFunc
	token passToken
}

// UnsafeNewTracer wraps a raw runtime/callback pair into a pass-scoped
// tracer. Only collectors call this, once per mark pass, between
// BeginMarkPass and EndMarkPass.
//
// The caller must guarantee that rt and mark stay valid for the entire pass
// and that the tracer (and every copy of it) is discarded when the pass
// ends. Constructing a tracer with a nil callback, or outside an active
// pass, yields a tracer whose Mark operations panic; that is a collector
// bug, never something a Trace implementation can cause.
func UnsafeNewTracer(rt *Runtime, mark MarkFunc) Tracer {
	return Tracer{
		rt:   rt,
		mark: mark,
		token: passToken{
			rt:   rt.Identity(),
			pass: rt.currentPass(),
		},
	}
}

// Mark reports v as reachable from the object currently being traced.
// Immediates carry no reference count and are skipped; managed values are
// forwarded to the bound callback with the bound runtime. Safe to call any
// number of times per pass, including repeatedly for the same value.
func (t Tracer) Mark(v Value) {
	if !v.HasRefCount() {
		return
	}
	t.report(v.Raw())
}

// MarkContext reports a context as reachable. Contexts are always reference
// counted, so the report is unconditional.
func (t Tracer) MarkContext(c *Context) {
	t.report(c.Raw())
}

func (t Tracer) report(p unsafe.Pointer) {
	if t.mark == nil {
		panic("rquickjs: tracer has no mark callback; tracers must come from UnsafeNewTracer inside a mark pass")
	}
	if t.token.pass == 0 || t.token.rt != t.rt.Identity() || t.token.pass != t.rt.currentPass() {
		panic("rquickjs: tracer used outside its mark pass; tracers must not be retained")
	}
	t.mark(t.rt, p)
}
