// value.go — the managed value model.
//
// Values come in two families:
//
//   - Immediates (undefined, null, bool, int, float): carried inline, never
//     reference counted, invisible to the cycle collector.
//   - Managed kinds (object, array, function, big int, symbol, exception,
//     string): a Value is a handle to a reference-counted heap cell owned by
//     the engine. The cell carries the reference count, a stable id, the
//     owning Context, and the kind-specific payload (property table for
//     objects, element slice for arrays, an optional host payload, ...).
//
// The tracing layer (trace.go, tracer.go) reads exactly two things from a
// Value: whether it is reference counted (HasRefCount) and its native cell
// pointer (Raw). Everything else here is engine bookkeeping: Dup/Free adjust
// the reference count, and plain reference counting reclaims acyclic garbage
// on its own. Cyclic garbage is the collector's job (internal/collector),
// driven by TraceChildren.
package rquickjs

import (
	"fmt"
	"math/big"
	"strconv"
	"unsafe"
)

// ValueTag enumerates the runtime kinds a Value may hold. Tags at or above
// TagObject are managed (reference-counted) kinds; the rest are immediates.
type ValueTag int

const (
	TagUndefined ValueTag = iota // no payload
	TagNull                      // no payload
	TagBool                      // bool
	TagInt                       // int64
	TagFloat                     // float64
	TagObject                    // *heapCell: property table + optional host payload
	TagArray                     // *heapCell: element slice
	TagFunction                  // *heapCell: captured values
	TagBigInt                    // *heapCell: *big.Int payload
	TagSymbol                    // *heapCell: description payload
	TagException                 // *heapCell: message payload
	TagString                    // *heapCell: string payload (heap string, not leaf text)
)

// Value is the universal handle to an engine value. Immediates carry their
// payload in Data; managed kinds carry a *heapCell. The zero Value is
// undefined.
type Value struct {
	Tag  ValueTag
	Data any
}

// Undefined and Null are the immediate singletons.
var (
	Undefined = Value{Tag: TagUndefined}
	Null      = Value{Tag: TagNull}
)

// Immediate constructors. These values never carry a reference count.
func NewBool(b bool) Value     { return Value{Tag: TagBool, Data: b} }
func NewInt(n int64) Value     { return Value{Tag: TagInt, Data: n} }
func NewFloat(f float64) Value { return Value{Tag: TagFloat, Data: f} }

// heapCell is the engine-side header of every managed value. Exactly one
// cell exists per managed object; all Value handles to the same object share
// it. The collector identifies cells by their address (see Raw).
type heapCell struct {
	id   uint64
	refs int32
	kind ValueTag
	ctx  *Context

	props *propTable // objects: named properties, insertion ordered
	elems []Value    // arrays, functions: positional slots
	host  Traceable  // optional host payload attached via Object.SetOpaque
	data  any        // kind payload: string, *big.Int, symbol description, ...
}

// propTable is an insertion-ordered string-keyed table. Keys preserves the
// order in which keys were first set; Entries is the backing map.
type propTable struct {
	Entries map[string]Value
	Keys    []string
}

func newPropTable() *propTable {
	return &propTable{Entries: map[string]Value{}}
}

func (p *propTable) set(key string, v Value) (prev Value, existed bool) {
	prev, existed = p.Entries[key]
	if !existed {
		p.Keys = append(p.Keys, key)
	}
	p.Entries[key] = v
	return prev, existed
}

func (p *propTable) delete(key string) (Value, bool) {
	prev, ok := p.Entries[key]
	if !ok {
		return Undefined, false
	}
	delete(p.Entries, key)
	for i, k := range p.Keys {
		if k == key {
			p.Keys = append(p.Keys[:i], p.Keys[i+1:]...)
			break
		}
	}
	return prev, true
}

// cell returns the backing heap cell, or nil for immediates.
func (v Value) cell() *heapCell {
	c, _ := v.Data.(*heapCell)
	return c
}

// HasRefCount reports whether v is a managed (reference-counted) kind.
// Immediates return false; marking them is a no-op.
func (v Value) HasRefCount() bool { return v.cell() != nil }

// Raw returns the native cell pointer for managed kinds, nil for immediates.
// This is the identity the mark callback receives during a pass.
func (v Value) Raw() unsafe.Pointer {
	if c := v.cell(); c != nil {
		return unsafe.Pointer(c)
	}
	return nil
}

// Ctx returns the owning context of a managed value, nil for immediates.
func (v Value) Ctx() *Context {
	if c := v.cell(); c != nil {
		return c.ctx
	}
	return nil
}

// ID returns the engine-assigned id of a managed value (0 for immediates).
// Ids are stable for the lifetime of the cell; useful for debugging output.
func (v Value) ID() uint64 {
	if c := v.cell(); c != nil {
		return c.id
	}
	return 0
}

// RefCount returns the current reference count, 0 for immediates.
func (v Value) RefCount() int {
	if c := v.cell(); c != nil {
		return int(c.refs)
	}
	return 0
}

// Dup takes an additional reference to a managed value and returns the same
// handle. Immediates pass through unchanged.
func (v Value) Dup() Value {
	if c := v.cell(); c != nil {
		c.refs++
	}
	return v
}

// Free releases one reference. When the count reaches zero the cell is
// removed from the runtime registry and the references it owns are released
// in turn; plain reference counting therefore reclaims all acyclic garbage.
// Freeing an immediate is a no-op.
func (v Value) Free() {
	c := v.cell()
	if c == nil {
		return
	}
	if c.refs <= 0 {
		// Already reclaimed (for instance by the cycle collector).
		return
	}
	c.refs--
	if c.refs > 0 {
		return
	}
	c.ctx.rt.unregister(c)
	children := c.ownedChildren()
	c.props = nil
	c.elems = nil
	c.host = nil
	for _, ch := range children {
		ch.Free()
	}
}

// ownedChildren collects the managed values this cell holds a reference to,
// in traversal order (properties in insertion order, then elements).
func (c *heapCell) ownedChildren() []Value {
	var out []Value
	if c.props != nil {
		for _, k := range c.props.Keys {
			if pv := c.props.Entries[k]; pv.HasRefCount() {
				out = append(out, pv)
			}
		}
	}
	for _, e := range c.elems {
		if e.HasRefCount() {
			out = append(out, e)
		}
	}
	return out
}

// TraceChildren reports every managed value this value directly owns:
// properties in insertion order, then elements, then the host payload's own
// Trace. This is the engine's per-object mark hook; the collector calls it
// for each live cell and decides recursion itself.
func (v Value) TraceChildren(t Tracer) {
	c := v.cell()
	if c == nil {
		return
	}
	if c.props != nil {
		for _, k := range c.props.Keys {
			c.props.Entries[k].Trace(t)
		}
	}
	for _, e := range c.elems {
		e.Trace(t)
	}
	if c.host != nil {
		c.host.Trace(t)
	}
}

// String renders a short debug representation.
func (v Value) String() string {
	switch v.Tag {
	case TagUndefined:
		return "undefined"
	case TagNull:
		return "null"
	case TagBool:
		return strconv.FormatBool(v.Data.(bool))
	case TagInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case TagFloat:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case TagString:
		return fmt.Sprintf("%q", v.cell().data.(string))
	case TagBigInt:
		return v.cell().data.(*big.Int).String() + "n"
	default:
		return fmt.Sprintf("<%s #%d>", v.Tag.name(), v.ID())
	}
}

func (tag ValueTag) name() string {
	switch tag {
	case TagUndefined:
		return "undefined"
	case TagNull:
		return "null"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagFunction:
		return "function"
	case TagBigInt:
		return "bigint"
	case TagSymbol:
		return "symbol"
	case TagException:
		return "exception"
	case TagString:
		return "string"
	default:
		return "unknown"
	}
}
