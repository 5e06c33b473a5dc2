package rquickjs

import (
	"testing"
)

func newObjects(ctx *Context, n int) []Object {
	out := make([]Object, n)
	for i := range out {
		out[i] = ctx.NewObject()
	}
	return out
}

func Test_Containers_SequencesReportOnePerElement(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	objs := newObjects(ctx, 3)

	var list List[Object]
	var deque Deque[Object]
	var linked LinkedList[Object]
	idx := NewIndexSet[Object]()
	hash := NewSet[Object]()
	for _, o := range objs {
		list.Push(o)
		deque.PushBack(o)
		linked.PushBack(o)
		idx.Add(o)
		hash.Add(o)
	}

	seqs := map[string]Traceable{
		"list":   list,
		"deque":  &deque,
		"linked": &linked,
		"idxset": idx,
		"hash":   hash,
	}
	for name, seq := range seqs {
		tr, log := startPass(t, rt)
		seq.Trace(tr)
		if log.count() != len(objs) {
			t.Fatalf("%s: got %d reports, want %d", name, log.count(), len(objs))
		}
		rt.EndMarkPass()
	}
}

func Test_Containers_OrderedSequencesPreserveOrder(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	objs := newObjects(ctx, 4)

	var list List[Object]
	idx := NewIndexSet[Object]()
	for _, o := range objs {
		list.Push(o)
		idx.Add(o)
	}
	want := rawsOf(objs[0].AsValue(), objs[1].AsValue(), objs[2].AsValue(), objs[3].AsValue())

	tr, log := startPass(t, rt)
	list.Trace(tr)
	wantPtrs(t, log.ptrs, want)
	rt.EndMarkPass()

	tr, log = startPass(t, rt)
	idx.Trace(tr)
	wantPtrs(t, log.ptrs, want)
	rt.EndMarkPass()
}

func Test_Containers_DequeFrontToBack(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	a, b, c := ctx.NewObject(), ctx.NewObject(), ctx.NewObject()

	var d Deque[Object]
	d.PushBack(b)
	d.PushFront(a)
	d.PushBack(c)

	tr, log := startPass(t, rt)
	d.Trace(tr)
	wantPtrs(t, log.ptrs, rawsOf(a.AsValue(), b.AsValue(), c.AsValue()))
}

func Test_Containers_AssociativeReportKeyThenValue(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()

	// {(A,B),(C,D)} yields [A,B,C,D] in that pairing order.
	a, b := ctx.NewObject(), ctx.NewObject()
	c, d := ctx.NewObject(), ctx.NewObject()

	m := NewIndexMap[Object, Object]()
	m.Set(a, b)
	m.Set(c, d)

	tr, log := startPass(t, rt)
	m.Trace(tr)
	wantPtrs(t, log.ptrs, rawsOf(a.AsValue(), b.AsValue(), c.AsValue(), d.AsValue()))
}

func Test_Containers_HashMapReportsTwoPerEntryPaired(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()

	m := NewMap[Object, Object]()
	pairs := map[Object]Object{}
	for i := 0; i < 5; i++ {
		k, v := ctx.NewObject(), ctx.NewObject()
		m.Set(k, v)
		pairs[k] = v
	}

	tr, log := startPass(t, rt)
	m.Trace(tr)
	if log.count() != 2*m.Len() {
		t.Fatalf("got %d reports, want %d", log.count(), 2*m.Len())
	}
	// Entry order is unspecified, but each key is immediately followed by
	// its value.
	for i := 0; i < log.count(); i += 2 {
		matched := false
		for k, v := range pairs {
			if log.ptrs[i] == k.AsValue().Raw() && log.ptrs[i+1] == v.AsValue().Raw() {
				matched = true
				break
			}
		}
		if !matched {
			t.Fatalf("report pair %d is not a (key, value) entry", i/2)
		}
	}
}

func Test_Containers_SortedShapes(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	a, b := ctx.NewObject(), ctx.NewObject()

	// Sorted containers require ordered keys; forwarding values live on the
	// value side.
	m := NewSortedMap[Int, Object]()
	m.Set(2, b)
	m.Set(1, a)

	tr, log := startPass(t, rt)
	m.Trace(tr)
	// Leaf keys report nothing, so only the values appear, in key order.
	wantPtrs(t, log.ptrs, rawsOf(a.AsValue(), b.AsValue()))
	rt.EndMarkPass()

	s := NewSortedSet[String]()
	s.Add("b")
	s.Add("a")
	tr, log = startPass(t, rt)
	s.Trace(tr)
	if log.count() != 0 {
		t.Fatalf("sorted set of leaves reported %d references, want 0", log.count())
	}
}

func Test_Containers_NestingComposes(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	objs := newObjects(ctx, 4)

	// A container of tuples of wrapped managed values: one report per leaf
	// managed reference, no duplication, no omission.
	var list List[Tuple2[Box[Object], Shared[Object]]]
	list.Push(Tuple2[Box[Object], Shared[Object]]{
		V1: NewBox(objs[0]),
		V2: NewShared(objs[1]),
	})
	list.Push(Tuple2[Box[Object], Shared[Object]]{
		V1: NewBox(objs[2]),
		V2: NewShared(objs[3]),
	})

	tr, log := startPass(t, rt)
	list.Trace(tr)
	wantPtrs(t, log.ptrs, rawsOf(
		objs[0].AsValue(), objs[1].AsValue(), objs[2].AsValue(), objs[3].AsValue(),
	))
}

func Test_Containers_EmptyReportNothing(t *testing.T) {
	rt := NewRuntime()

	var list List[Object]
	var deque Deque[Object]
	var linked LinkedList[Object]

	tr, log := startPass(t, rt)
	list.Trace(tr)
	deque.Trace(tr)
	linked.Trace(tr)
	NewSet[Object]().Trace(tr)
	NewIndexSet[Object]().Trace(tr)
	NewMap[Object, Object]().Trace(tr)
	NewIndexMap[Object, Object]().Trace(tr)
	NewSortedMap[Int, Object]().Trace(tr)
	NewSortedSet[Int]().Trace(tr)
	if log.count() != 0 {
		t.Fatalf("empty containers reported %d references, want 0", log.count())
	}
}

func Test_Containers_IndexMapDeleteDropsTheEntry(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	a, b, c, d := ctx.NewObject(), ctx.NewObject(), ctx.NewObject(), ctx.NewObject()

	m := NewIndexMap[Object, Object]()
	m.Set(a, b)
	m.Set(c, d)
	if !m.Delete(a) {
		t.Fatal("Delete(a) should report true")
	}
	if m.Delete(a) {
		t.Fatal("second Delete(a) should report false")
	}

	tr, log := startPass(t, rt)
	m.Trace(tr)
	wantPtrs(t, log.ptrs, rawsOf(c.AsValue(), d.AsValue()))
}
