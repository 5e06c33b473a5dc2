// runtime.go — Runtime and Context handles.
//
// A Runtime owns the registry of live heap cells and the mark-pass
// bookkeeping; Contexts are reference-counted execution scopes created from
// a Runtime. Script execution, interning details and the rest of the engine
// surface are out of scope here: this file carries exactly what the tracing
// layer and the cycle collector need.
//
// Mark passes are single-threaded by contract: BeginMarkPass admits one pass
// at a time and hands out the pass ordinal that tracers are scoped to. A
// tracer from a finished pass fails loudly when used (see tracer.go).
package rquickjs

import (
	"fmt"
	"sort"
	"sync"
	"unsafe"

	"github.com/google/uuid"
)

// Runtime owns every managed cell allocated through its contexts. One
// runtime corresponds to one heap; tracers are bound to exactly one runtime
// and cannot be threaded into another one's pass.
type Runtime struct {
	id uuid.UUID

	mu       sync.Mutex
	cells    map[*heapCell]struct{}
	contexts map[*Context]struct{}
	nextCell uint64

	pass    uint64 // ordinal of the active mark pass, 0 when none
	passSeq uint64 // ordinal source; incremented at BeginMarkPass
}

// NewRuntime creates an empty runtime with a fresh identity.
func NewRuntime() *Runtime {
	return &Runtime{
		id:       uuid.New(),
		cells:    map[*heapCell]struct{}{},
		contexts: map[*Context]struct{}{},
	}
}

// Identity returns the runtime's unique id. Tracer pass tokens embed it so a
// visitor can never be associated with a different runtime.
func (r *Runtime) Identity() uuid.UUID { return r.id }

// NewContext creates a context owned by this runtime. The caller holds one
// reference; contexts are always reference counted.
func (r *Runtime) NewContext() *Context {
	c := &Context{rt: r, refs: 1, atoms: map[string]Atom{}}
	r.mu.Lock()
	r.contexts[c] = struct{}{}
	r.mu.Unlock()
	return c
}

// BeginMarkPass starts a mark pass and returns its ordinal (always >= 1).
// Only one pass may be active per runtime; a second concurrent pass is an
// error, not a panic, since a collector can legitimately be asked to run
// while another run is in flight.
func (r *Runtime) BeginMarkPass() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pass != 0 {
		return 0, fmt.Errorf("mark pass %d already active", r.pass)
	}
	r.passSeq++
	r.pass = r.passSeq
	return r.pass, nil
}

// EndMarkPass ends the active pass. Tracers scoped to it become stale.
func (r *Runtime) EndMarkPass() {
	r.mu.Lock()
	r.pass = 0
	r.mu.Unlock()
}

// currentPass returns the ordinal of the active pass, 0 when none.
func (r *Runtime) currentPass() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pass
}

// Cells returns a snapshot of all live managed values, ordered by allocation
// id so collector output is deterministic.
func (r *Runtime) Cells() []Value {
	r.mu.Lock()
	out := make([]Value, 0, len(r.cells))
	for c := range r.cells {
		out = append(out, Value{Tag: c.kind, Data: c})
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// LiveCount returns the number of registered managed cells.
func (r *Runtime) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cells)
}

// ContextFromRaw resolves a native pointer back to a live context, if it is
// one. Collectors use this to classify mark reports.
func (r *Runtime) ContextFromRaw(p unsafe.Pointer) (*Context, bool) {
	c := (*Context)(p)
	r.mu.Lock()
	_, ok := r.contexts[c]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	return c, true
}

// ReclaimCycle removes a set of cells the collector proved unreachable and
// releases the references they hold into the surviving heap. The cells are
// unregistered first so mutual references inside the set cannot cascade into
// double frees. Returns the number of cells reclaimed.
//
// This is the engine's deallocation path for cyclic garbage; the tracing
// layer itself never frees anything.
func (r *Runtime) ReclaimCycle(vs []Value) int {
	dead := map[*heapCell]bool{}
	r.mu.Lock()
	for _, v := range vs {
		c := v.cell()
		if c == nil {
			continue
		}
		if _, live := r.cells[c]; !live {
			continue
		}
		delete(r.cells, c)
		dead[c] = true
	}
	r.mu.Unlock()

	for c := range dead {
		c.refs = 0
		children := c.ownedChildren()
		c.props = nil
		c.elems = nil
		c.host = nil
		c.data = nil
		for _, ch := range children {
			if cc := ch.cell(); cc != nil && !dead[cc] {
				ch.Free()
			}
		}
	}
	return len(dead)
}

func (r *Runtime) register(c *heapCell) {
	r.mu.Lock()
	r.nextCell++
	c.id = r.nextCell
	r.cells[c] = struct{}{}
	r.mu.Unlock()
}

func (r *Runtime) unregister(c *heapCell) {
	r.mu.Lock()
	delete(r.cells, c)
	r.mu.Unlock()
}

// Context is a reference-counted execution scope. Unlike values, contexts
// are always reference counted: MarkContext forwards them unconditionally.
type Context struct {
	rt       *Runtime
	refs     int32
	atoms    map[string]Atom
	nextAtom uint32
}

// Runtime returns the owning runtime.
func (c *Context) Runtime() *Runtime { return c.rt }

// Raw returns the context's native pointer, the identity the mark callback
// receives when a composite keeps a context alive.
func (c *Context) Raw() unsafe.Pointer { return unsafe.Pointer(c) }

// Dup takes an additional reference to the context.
func (c *Context) Dup() *Context {
	c.rt.mu.Lock()
	c.refs++
	c.rt.mu.Unlock()
	return c
}

// Free releases one reference; the last release removes the context from
// the runtime.
func (c *Context) Free() {
	c.rt.mu.Lock()
	c.refs--
	if c.refs <= 0 {
		delete(c.rt.contexts, c)
	}
	c.rt.mu.Unlock()
}

// NewAtom interns a name in this context and returns its atom. Atoms are
// leaf kinds: the engine representation guarantees they hold no further
// managed references, so their Trace reports nothing.
func (c *Context) NewAtom(name string) Atom {
	if a, ok := c.atoms[name]; ok {
		return a
	}
	c.nextAtom++
	a := Atom{id: c.nextAtom, name: name}
	c.atoms[name] = a
	return a
}

// newCell allocates a managed cell of the given kind with one reference,
// owned by the caller.
func (c *Context) newCell(kind ValueTag) *heapCell {
	cell := &heapCell{refs: 1, kind: kind, ctx: c}
	c.rt.register(cell)
	return cell
}
