// containers.go — structural Trace implementations for container shapes.
//
// Go has no blanket implementations, so the "iterable of traceable
// elements" and "iterable of traceable pairs" categories are declared as
// generic container types instead: any instantiation is traceable by
// construction, and a composite built from them needs no hand-written
// traversal. Sequence containers report each element in their natural
// iteration order; associative containers report each key immediately
// followed by its value. The collector attaches no meaning to the order.
//
// The containers deliberately carry a small API (insert, lookup, length,
// iteration). They are field types for traceable composites, not a
// collections library.
package rquickjs

import (
	"cmp"
	"slices"
)

// Key constrains hash-addressed element types: traceable and usable as a
// Go map key.
type Key interface {
	comparable
	Traceable
}

// Ordered constrains sorted-container element types: traceable with a
// primitive ordering. The leaf scalar wrappers in trace.go all satisfy it.
type Ordered interface {
	cmp.Ordered
	Traceable
}

// ----------------------------------------------------------------------------
// Sequence containers
// ----------------------------------------------------------------------------

// List is a growable sequence. Trace reports elements front to back.
type List[T Traceable] []T

func (l *List[T]) Push(v T)  { *l = append(*l, v) }
func (l List[T]) Len() int   { return len(l) }
func (l List[T]) At(i int) T { return l[i] }

func (l List[T]) Trace(t Tracer) {
	for _, item := range l {
		item.Trace(t)
	}
}

// Deque is a double-ended queue. Trace reports elements front to back.
type Deque[T Traceable] struct {
	items []T
}

func (d *Deque[T]) PushBack(v T) { d.items = append(d.items, v) }
func (d *Deque[T]) PushFront(v T) {
	d.items = append([]T{v}, d.items...)
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if len(d.items) == 0 {
		return zero, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

func (d *Deque[T]) Len() int { return len(d.items) }

func (d *Deque[T]) Trace(t Tracer) {
	for _, item := range d.items {
		item.Trace(t)
	}
}

// LinkedList is a doubly linked sequence. Trace reports head to tail.
type LinkedList[T Traceable] struct {
	head, tail *listNode[T]
	n          int
}

type listNode[T Traceable] struct {
	v          T
	prev, next *listNode[T]
}

func (l *LinkedList[T]) PushBack(v T) {
	node := &listNode[T]{v: v, prev: l.tail}
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}
	l.tail = node
	l.n++
}

func (l *LinkedList[T]) PushFront(v T) {
	node := &listNode[T]{v: v, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.n++
}

func (l *LinkedList[T]) Len() int { return l.n }

func (l *LinkedList[T]) Trace(t Tracer) {
	for node := l.head; node != nil; node = node.next {
		node.v.Trace(t)
	}
}

// Set is a hash set. Trace reports members in Go map order (unspecified,
// which is the hash set's natural order).
type Set[T Key] map[T]struct{}

func NewSet[T Key]() Set[T]   { return Set[T]{} }
func (s Set[T]) Add(v T)      { s[v] = struct{}{} }
func (s Set[T]) Has(v T) bool { _, ok := s[v]; return ok }
func (s Set[T]) Remove(v T)   { delete(s, v) }
func (s Set[T]) Len() int     { return len(s) }

func (s Set[T]) Trace(t Tracer) {
	for v := range s {
		v.Trace(t)
	}
}

// SortedSet keeps members ordered by their primitive value. Trace reports
// them in ascending order.
type SortedSet[T Ordered] struct {
	items map[T]struct{}
}

func NewSortedSet[T Ordered]() *SortedSet[T] {
	return &SortedSet[T]{items: map[T]struct{}{}}
}

func (s *SortedSet[T]) Add(v T)      { s.items[v] = struct{}{} }
func (s *SortedSet[T]) Has(v T) bool { _, ok := s.items[v]; return ok }
func (s *SortedSet[T]) Len() int     { return len(s.items) }

func (s *SortedSet[T]) sorted() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (s *SortedSet[T]) Trace(t Tracer) {
	for _, v := range s.sorted() {
		v.Trace(t)
	}
}

// IndexSet is an insertion-ordered set. Trace reports members in the order
// they were first added.
type IndexSet[T Key] struct {
	seen  map[T]struct{}
	order []T
}

func NewIndexSet[T Key]() *IndexSet[T] {
	return &IndexSet[T]{seen: map[T]struct{}{}}
}

func (s *IndexSet[T]) Add(v T) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *IndexSet[T]) Has(v T) bool { _, ok := s.seen[v]; return ok }
func (s *IndexSet[T]) Len() int     { return len(s.order) }

func (s *IndexSet[T]) Trace(t Tracer) {
	for _, v := range s.order {
		v.Trace(t)
	}
}

// ----------------------------------------------------------------------------
// Associative containers
// ----------------------------------------------------------------------------

// Map is a hash map. Trace reports each key immediately followed by its
// value, entry order unspecified.
type Map[K Key, V Traceable] map[K]V

func NewMap[K Key, V Traceable]() Map[K, V] { return Map[K, V]{} }

func (m Map[K, V]) Set(k K, v V) { m[k] = v }
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}
func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Trace(t Tracer) {
	for k, v := range m {
		k.Trace(t)
		v.Trace(t)
	}
}

// SortedMap keeps entries ordered by key. Trace reports key then value in
// ascending key order.
type SortedMap[K Ordered, V Traceable] struct {
	entries map[K]V
}

func NewSortedMap[K Ordered, V Traceable]() *SortedMap[K, V] {
	return &SortedMap[K, V]{entries: map[K]V{}}
}

func (m *SortedMap[K, V]) Set(k K, v V) { m.entries[k] = v }
func (m *SortedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}
func (m *SortedMap[K, V]) Len() int { return len(m.entries) }

func (m *SortedMap[K, V]) Trace(t Tracer) {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		k.Trace(t)
		m.entries[k].Trace(t)
	}
}

// IndexMap is an insertion-ordered map: the order in which keys were first
// set is the iteration order, and Trace reports key then value per entry in
// that order.
type IndexMap[K Key, V Traceable] struct {
	entries map[K]V
	keys    []K
}

func NewIndexMap[K Key, V Traceable]() *IndexMap[K, V] {
	return &IndexMap[K, V]{entries: map[K]V{}}
}

func (m *IndexMap[K, V]) Set(k K, v V) {
	if _, ok := m.entries[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.entries[k] = v
}

func (m *IndexMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *IndexMap[K, V]) Delete(k K) bool {
	if _, ok := m.entries[k]; !ok {
		return false
	}
	delete(m.entries, k)
	for i, kk := range m.keys {
		if kk == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *IndexMap[K, V]) Len() int { return len(m.keys) }

// Keys returns the insertion order of the keys.
func (m *IndexMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *IndexMap[K, V]) Trace(t Tracer) {
	for _, k := range m.keys {
		k.Trace(t)
		m.entries[k].Trace(t)
	}
}
