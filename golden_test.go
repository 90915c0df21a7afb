package bluenoise

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// Hand-computed elimination orders on tiny configurations. The geometry is
// chosen so the neighbor graph is trivial to reason about: within the unit
// cube with target 3 or 4, 2*rmax is ~0.71-0.78, so of the five points only
// the tight pair (0, 1) interact.

func goldenPoints() []Point {
	return []Point{
		{ID: 0, Pos: r3.Vec{X: 0, Y: 0, Z: 0}},
		{ID: 1, Pos: r3.Vec{X: 0.1, Y: 0, Z: 0}},
		{ID: 2, Pos: r3.Vec{X: 1, Y: 0, Z: 0}},
		{ID: 3, Pos: r3.Vec{X: 0, Y: 1, Z: 0}},
		{ID: 4, Pos: r3.Vec{X: 0, Y: 0, Z: 1}},
	}
}

func checkIDs(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d survivors %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", got, want)
		}
	}
}

func TestGolden_TightPairLosesLowerID(t *testing.T) {
	// Only points 0 and 1 carry weight and they tie exactly, so the
	// tie-break removes point 0 first.
	for _, kind := range []IndexKind{IndexKDTree, IndexGonum} {
		cfg := DefaultConfig()
		cfg.Index = kind
		result, err := Eliminate(goldenPoints(), 4, cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		checkIDs(t, result.IDs, []int{1, 2, 3, 4})
	}
}

func TestGolden_TightPairThenTieBreakOrder(t *testing.T) {
	// After point 0 goes, point 1's weight drops to zero; every remaining
	// weight ties at zero and the lowest id is removed next.
	for _, kind := range []IndexKind{IndexKDTree, IndexGonum} {
		cfg := DefaultConfig()
		cfg.Index = kind
		result, err := Eliminate(goldenPoints(), 3, cfg)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		checkIDs(t, result.IDs, []int{2, 3, 4})
	}
}

func TestGolden_CollinearTieBreakOrder(t *testing.T) {
	// Collinear input degrades rmax to 0: no point sees a neighbor, all
	// weights are zero, and elimination proceeds in ascending id order.
	points := []Point{
		{ID: 10, Pos: r3.Vec{X: 0}},
		{ID: 20, Pos: r3.Vec{X: 1}},
		{ID: 30, Pos: r3.Vec{X: 2}},
		{ID: 40, Pos: r3.Vec{X: 3}},
	}
	result, err := Eliminate(points, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkIDs(t, result.IDs, []int{30, 40})
}
