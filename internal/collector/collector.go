// collector.go — the mark-pass driver.
//
// This is the collaborator the tracing layer is written for: it decides when
// a pass runs, wraps its raw mark callback into a Tracer through the unsafe
// boundary, asks every live cell for its outgoing references, and does the
// cycle detection and reclamation the tracing layer deliberately leaves out.
//
// Detection is reference-count subtraction: every reported cell-to-cell edge
// corresponds to one engine-held reference, so a cell whose count exceeds
// its reported inbound edges has an external owner and is a root. Everything
// reachable from a root survives; the rest is cyclic garbage. This relies on
// TraceChildren reporting each owned reference exactly once — an
// implementation that under-reports makes its targets look externally owned,
// which leaks them (never corrupts them).
package collector

import (
	"fmt"
	"unsafe"

	"github.com/waywardmonkeys/rquickjs"
)

// Options tunes a Collector.
type Options struct {
	// Reclaim controls whether unreachable cycles are handed back to the
	// engine for deallocation, or only counted.
	Reclaim bool

	// Threshold is the live-cell count at which MaybeCollect triggers a
	// pass. Zero disables automatic triggering.
	Threshold int

	// Logf, when set, receives a line per pass with findings.
	Logf func(format string, args ...any)
}

// Stats describes one completed mark pass.
type Stats struct {
	Pass         uint64 // pass ordinal from the runtime
	Cells        int    // live cells visited
	Edges        int    // cell-to-cell references reported
	ContextEdges int    // context references reported
	Roots        int    // externally-owned cells
	Unreachable  int    // cells in unreachable cycles
	Reclaimed    int    // cells actually handed back for deallocation
}

// Collector drives mark passes over a runtime's heap.
type Collector struct {
	opts Options
}

// New returns a collector with the given options.
func New(opts Options) *Collector {
	return &Collector{opts: opts}
}

// Collect runs one mark pass over rt and returns what it found. It fails if
// another pass is already active on the runtime.
func (c *Collector) Collect(rt *rquickjs.Runtime) (Stats, error) {
	pass, err := rt.BeginMarkPass()
	if err != nil {
		return Stats{}, fmt.Errorf("collector: %w", err)
	}
	defer rt.EndMarkPass()

	cells := rt.Cells()
	stats := Stats{Pass: pass, Cells: len(cells)}

	index := make(map[unsafe.Pointer]int, len(cells))
	for i, v := range cells {
		index[v.Raw()] = i
	}

	// Mark phase: gather the edge set. The tracer lives exactly as long as
	// this loop; recursion into children is this loop, not the tracing
	// layer's concern.
	adj := make([][]int, len(cells))
	inbound := make([]int, len(cells))
	cur := -1
	tracer := rquickjs.UnsafeNewTracer(rt, func(_ *rquickjs.Runtime, p unsafe.Pointer) {
		if j, ok := index[p]; ok {
			adj[cur] = append(adj[cur], j)
			inbound[j]++
			stats.Edges++
			return
		}
		// A context (or a pointer from another heap); contexts are pinned
		// by their own references, so the report is informational here.
		stats.ContextEdges++
	})
	for i, v := range cells {
		cur = i
		v.TraceChildren(tracer)
	}

	// Sweep phase: roots are cells with references the heap cannot account
	// for; whatever they cannot reach is cyclic garbage.
	reachable := make([]bool, len(cells))
	queue := make([]int, 0, len(cells))
	for i, v := range cells {
		if v.RefCount() > inbound[i] {
			reachable[i] = true
			queue = append(queue, i)
			stats.Roots++
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range adj[i] {
			if !reachable[j] {
				reachable[j] = true
				queue = append(queue, j)
			}
		}
	}

	var garbage []rquickjs.Value
	for i, v := range cells {
		if !reachable[i] {
			garbage = append(garbage, v)
		}
	}
	stats.Unreachable = len(garbage)

	if c.opts.Reclaim && len(garbage) > 0 {
		stats.Reclaimed = rt.ReclaimCycle(garbage)
	}
	c.logf("gc pass %d: %d cells, %d edges, %d roots, %d unreachable, %d reclaimed",
		stats.Pass, stats.Cells, stats.Edges, stats.Roots, stats.Unreachable, stats.Reclaimed)
	return stats, nil
}

// MaybeCollect runs a pass only once the live-cell count has reached the
// configured threshold. The bool reports whether a pass ran.
func (c *Collector) MaybeCollect(rt *rquickjs.Runtime) (Stats, bool, error) {
	if c.opts.Threshold <= 0 || rt.LiveCount() < c.opts.Threshold {
		return Stats{}, false, nil
	}
	stats, err := c.Collect(rt)
	if err != nil {
		return Stats{}, false, err
	}
	return stats, true, nil
}

func (c *Collector) logf(format string, args ...any) {
	if c.opts.Logf != nil {
		c.opts.Logf(format, args...)
	}
}
