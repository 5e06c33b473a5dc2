// kinds.go — typed views of the built-in managed value kinds, each with a
// forwarding Trace implementation.
//
// Object, Array, Function, BigInt, Symbol, Exception and StringValue are
// thin wrappers around a managed Value. For tracing purposes each of them is
// itself the reportable unit: Trace reports exactly one reference, the
// wrapper converted to its generic Value view. Host composites can therefore
// hold these kinds as fields without extra boilerplate while the engine
// still sees the edge.
package rquickjs

import "math/big"

// Object is the generic property-bag kind. Properties own a reference to
// their value and are traversed in insertion order.
type Object struct{ v Value }

// NewObject allocates an empty object. The caller owns one reference.
func (c *Context) NewObject() Object {
	cell := c.newCell(TagObject)
	cell.props = newPropTable()
	return Object{v: Value{Tag: TagObject, Data: cell}}
}

// AsValue returns the generic value view of the object.
func (o Object) AsValue() Value { return o.v }

// Trace reports the object itself.
func (o Object) Trace(t Tracer) { o.v.Trace(t) }

// Set stores a property. The object takes a reference to v; a replaced
// value's reference is released.
func (o Object) Set(key string, v Value) {
	prev, existed := o.v.cell().props.set(key, v.Dup())
	if existed {
		prev.Free()
	}
}

// Get returns the property value without taking a reference; callers that
// retain it must Dup it themselves.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.v.cell().props.Entries[key]
	return v, ok
}

// Delete removes a property and releases its reference.
func (o Object) Delete(key string) bool {
	prev, ok := o.v.cell().props.delete(key)
	if ok {
		prev.Free()
	}
	return ok
}

// Keys returns the property names in insertion order.
func (o Object) Keys() []string {
	keys := o.v.cell().props.Keys
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// SetOpaque attaches a host payload. The payload's Trace is invoked as part
// of the object's TraceChildren, so managed references held by host data
// participate in cycle collection.
func (o Object) SetOpaque(h Traceable) { o.v.cell().host = h }

// Opaque returns the attached host payload, nil when none.
func (o Object) Opaque() Traceable { return o.v.cell().host }

// AsObject converts a generic value back to its object view.
func (v Value) AsObject() (Object, bool) {
	if v.Tag != TagObject || v.cell() == nil {
		return Object{}, false
	}
	return Object{v: v}, true
}

// Array is the positional kind. Elements own a reference, traversed front
// to back.
type Array struct{ v Value }

// NewArray allocates an empty array. The caller owns one reference.
func (c *Context) NewArray() Array {
	return Array{v: Value{Tag: TagArray, Data: c.newCell(TagArray)}}
}

func (a Array) AsValue() Value { return a.v }
func (a Array) Trace(t Tracer) { a.v.Trace(t) }
func (a Array) Len() int       { return len(a.v.cell().elems) }
func (a Array) At(i int) Value { return a.v.cell().elems[i] }

// Push appends a value; the array takes a reference.
func (a Array) Push(v Value) {
	cell := a.v.cell()
	cell.elems = append(cell.elems, v.Dup())
}

// Function is a callable kind; its captured values own references.
type Function struct{ v Value }

// NewFunction allocates a function cell capturing the given values (each is
// retained). Body and calling convention are engine concerns beyond this
// layer.
func (c *Context) NewFunction(name string, captures ...Value) Function {
	cell := c.newCell(TagFunction)
	cell.data = name
	for _, cv := range captures {
		cell.elems = append(cell.elems, cv.Dup())
	}
	return Function{v: Value{Tag: TagFunction, Data: cell}}
}

func (f Function) AsValue() Value { return f.v }
func (f Function) Trace(t Tracer) { f.v.Trace(t) }
func (f Function) Name() string   { return f.v.cell().data.(string) }

// BigInt is an arbitrary-precision integer kind.
type BigInt struct{ v Value }

func (c *Context) NewBigInt(x *big.Int) BigInt {
	cell := c.newCell(TagBigInt)
	cell.data = new(big.Int).Set(x)
	return BigInt{v: Value{Tag: TagBigInt, Data: cell}}
}

func (b BigInt) AsValue() Value { return b.v }
func (b BigInt) Trace(t Tracer) { b.v.Trace(t) }
func (b BigInt) Int() *big.Int  { return b.v.cell().data.(*big.Int) }

// Symbol is a unique-identity kind with an optional description.
type Symbol struct{ v Value }

func (c *Context) NewSymbol(desc string) Symbol {
	cell := c.newCell(TagSymbol)
	cell.data = desc
	return Symbol{v: Value{Tag: TagSymbol, Data: cell}}
}

func (s Symbol) AsValue() Value      { return s.v }
func (s Symbol) Trace(t Tracer)      { s.v.Trace(t) }
func (s Symbol) Description() string { return s.v.cell().data.(string) }

// Exception is a thrown-error kind.
type Exception struct{ v Value }

func (c *Context) NewException(msg string) Exception {
	cell := c.newCell(TagException)
	cell.data = msg
	return Exception{v: Value{Tag: TagException, Data: cell}}
}

func (e Exception) AsValue() Value  { return e.v }
func (e Exception) Trace(t Tracer)  { e.v.Trace(t) }
func (e Exception) Message() string { return e.v.cell().data.(string) }

// StringValue is heap-allocated engine text, a managed kind unlike the leaf
// String wrapper over Go text.
type StringValue struct{ v Value }

func (c *Context) NewStringValue(s string) StringValue {
	cell := c.newCell(TagString)
	cell.data = s
	return StringValue{v: Value{Tag: TagString, Data: cell}}
}

func (s StringValue) AsValue() Value { return s.v }
func (s StringValue) Trace(t Tracer) { s.v.Trace(t) }
func (s StringValue) Str() string    { return s.v.cell().data.(string) }
