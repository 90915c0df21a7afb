package bluenoise

import (
	"fmt"
	"math"
	"sync"
)

// engine runs one weighted sample elimination: it owns the spatial index
// and the priority structure exclusively and is used exactly once. The
// index is read-only after construction; the elimination loop is inherently
// sequential since every step depends on all prior removals.
type engine struct {
	index   SpatialIndex
	heap    *weightHeap
	wf      weightFunc
	rmax    float64
	rmin    float64
	current int
	target  int
}

// newEngine executes the build phase: derive radii from the candidate
// geometry, build the spatial index over every input point, compute initial
// weights, and load the priority structure.
func newEngine(points []Point, targetSamples int, cfg Config) (*engine, error) {
	rmax, rmin, err := deriveRadii(pointBounds(points), len(points), targetSamples, cfg)
	if err != nil {
		return nil, err
	}

	index := newSpatialIndex(points, cfg)
	wf := weightFunc{rmax: rmax, alpha: cfg.Alpha}

	entries, err := initialWeights(index, points, wf, cfg.Workers)
	if err != nil {
		return nil, err
	}

	return &engine{
		index:   index,
		heap:    newWeightHeap(entries),
		wf:      wf,
		rmax:    rmax,
		rmin:    rmin,
		current: len(points),
		target:  targetSamples,
	}, nil
}

// initialWeights sums each point's falloff contributions from all neighbors
// within 2*rmax. Each point's weight is independent of every other's, so
// the work is split across workers over contiguous point ranges; writes
// don't overlap, so no synchronization beyond the WaitGroup is needed.
func initialWeights(index SpatialIndex, points []Point, wf weightFunc, workers int) ([]weightEntry, error) {
	entries := make([]weightEntry, len(points))

	compute := func(start, end int) {
		for i := start; i < end; i++ {
			p := points[i]
			var total float64
			for _, nb := range index.QueryRadius(p.Pos, 2*wf.rmax, p.ID) {
				total += wf.weight(nb.Dist)
			}
			entries[i] = weightEntry{id: p.ID, pos: p.Pos, weight: total}
		}
	}

	if workers <= 1 || len(points) <= 1 {
		compute(0, len(points))
	} else {
		var wg sync.WaitGroup
		perWorker := (len(points) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * perWorker
			if start >= len(points) {
				break
			}
			end := min(start+perWorker, len(points))
			wg.Add(1)
			go func(s, e int) {
				defer wg.Done()
				compute(s, e)
			}(start, end)
		}
		wg.Wait()
	}

	for _, e := range entries {
		if math.IsNaN(e.weight) || math.IsInf(e.weight, 0) {
			return nil, fmt.Errorf("bluenoise: non-finite initial weight for point %d: %w",
				e.id, ErrNumericInstability)
		}
	}
	return entries, nil
}

// eliminateOne removes the current maximum-weight point and subtracts its
// pairwise contribution from each still-live neighbor. Neighbors eliminated
// in earlier steps are no longer in the heap and are skipped.
func (e *engine) eliminateOne() weightEntry {
	top := e.heap.popMax()
	for _, nb := range e.index.QueryRadius(top.pos, 2*e.rmax, top.id) {
		e.heap.decrease(nb.ID, e.wf.weight(nb.Dist))
	}
	e.current--
	return top
}

// run executes the elimination loop until the target count remains.
func (e *engine) run() {
	for e.current > e.target {
		e.eliminateOne()
	}
}

// survivors returns the points still tracked by the priority structure,
// ordered by ascending identifier.
func (e *engine) survivors() []Point {
	out := make([]Point, 0, e.heap.Len())
	for _, entry := range e.heap.entries {
		out = append(out, Point{ID: entry.id, Pos: entry.pos})
	}
	sortPointsByID(out)
	return out
}
