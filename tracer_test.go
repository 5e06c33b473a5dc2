package rquickjs

import (
	"strings"
	"testing"
	"unsafe"
)

func mustPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, substr) {
			t.Fatalf("panic %v does not mention %q", r, substr)
		}
	}()
	fn()
}

func Test_Tracer_NilCallbackIsFatal(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	obj := ctx.NewObject()

	if _, err := rt.BeginMarkPass(); err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	defer rt.EndMarkPass()

	tr := UnsafeNewTracer(rt, nil)
	mustPanic(t, "mark callback", func() { tr.Mark(obj.AsValue()) })
	mustPanic(t, "mark callback", func() { tr.MarkContext(ctx) })
}

func Test_Tracer_NilCallbackIgnoredForImmediates(t *testing.T) {
	rt := NewRuntime()
	if _, err := rt.BeginMarkPass(); err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	defer rt.EndMarkPass()

	// Marking an immediate never consults the callback at all.
	tr := UnsafeNewTracer(rt, nil)
	tr.Mark(NewInt(1))
	tr.Mark(Undefined)
}

func Test_Tracer_ConstructedOutsidePassIsFatal(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	obj := ctx.NewObject()

	tr := UnsafeNewTracer(rt, func(*Runtime, unsafe.Pointer) {})
	mustPanic(t, "outside its mark pass", func() { tr.Mark(obj.AsValue()) })
}

func Test_Tracer_RetainedPastPassIsFatal(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	obj := ctx.NewObject()

	if _, err := rt.BeginMarkPass(); err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	tr := UnsafeNewTracer(rt, func(*Runtime, unsafe.Pointer) {})
	tr.Mark(obj.AsValue()) // fine inside the pass
	rt.EndMarkPass()

	mustPanic(t, "outside its mark pass", func() { tr.Mark(obj.AsValue()) })

	// A stale tracer stays stale even once a new pass begins.
	if _, err := rt.BeginMarkPass(); err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	defer rt.EndMarkPass()
	mustPanic(t, "outside its mark pass", func() { tr.Mark(obj.AsValue()) })
}

func Test_Tracer_CopiesShareTheBinding(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	obj := ctx.NewObject()

	tr, log := startPass(t, rt)
	copies := []Tracer{tr, tr, tr}
	for _, c := range copies {
		c.Mark(obj.AsValue())
	}
	if log.count() != 3 {
		t.Fatalf("copied tracers produced %d reports, want 3", log.count())
	}
}

func Test_Runtime_SinglePassAtATime(t *testing.T) {
	rt := NewRuntime()
	first, err := rt.BeginMarkPass()
	if err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	if first == 0 {
		t.Fatal("pass ordinals start at 1")
	}
	if _, err := rt.BeginMarkPass(); err == nil {
		t.Fatal("second concurrent pass must be rejected")
	}
	rt.EndMarkPass()

	second, err := rt.BeginMarkPass()
	if err != nil {
		t.Fatalf("BeginMarkPass after EndMarkPass: %v", err)
	}
	defer rt.EndMarkPass()
	if second <= first {
		t.Fatalf("pass ordinals must increase: %d then %d", first, second)
	}
}

func Test_Tracer_ReportsCarryTheBoundRuntime(t *testing.T) {
	rt := NewRuntime()
	ctx := rt.NewContext()
	obj := ctx.NewObject()

	if _, err := rt.BeginMarkPass(); err != nil {
		t.Fatalf("BeginMarkPass: %v", err)
	}
	defer rt.EndMarkPass()

	var seen *Runtime
	tr := UnsafeNewTracer(rt, func(r *Runtime, _ unsafe.Pointer) { seen = r })
	tr.Mark(obj.AsValue())
	if seen != rt {
		t.Fatal("mark callback received a different runtime handle")
	}
}
