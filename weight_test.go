package bluenoise

import (
	"math"
	"testing"
)

func TestWeightFunc_Endpoints(t *testing.T) {
	wf := weightFunc{rmax: 0.5, alpha: 8}

	if got := wf.weight(0); got != 1 {
		t.Errorf("weight(0) = %v, want 1", got)
	}
	if got := wf.weight(1.0); got != 0 { // exactly 2*rmax
		t.Errorf("weight(2*rmax) = %v, want 0", got)
	}
	if got := wf.weight(5.0); got != 0 {
		t.Errorf("weight beyond 2*rmax = %v, want 0", got)
	}
}

func TestWeightFunc_MonotoneNonIncreasing(t *testing.T) {
	wf := weightFunc{rmax: 1, alpha: 8}

	prev := math.Inf(1)
	for d := 0.0; d <= 2.5; d += 0.01 {
		w := wf.weight(d)
		if w > prev {
			t.Fatalf("weight(%v) = %v increased from %v", d, w, prev)
		}
		if w < 0 {
			t.Fatalf("weight(%v) = %v, want >= 0", d, w)
		}
		prev = w
	}
}

func TestWeightFunc_KnownValue(t *testing.T) {
	// rmax = 0.5, d = 0.5: (1 - 0.5/1)^8 = 2^-8.
	wf := weightFunc{rmax: 0.5, alpha: 8}
	want := 1.0 / 256
	if got := wf.weight(0.5); math.Abs(got-want) > floatTol {
		t.Errorf("weight(rmax) = %v, want %v", got, want)
	}
}

func TestWeightFunc_ZeroRadiusNeverDivides(t *testing.T) {
	// Degenerate geometry can produce rmax = 0; the kernel must return 0
	// for every distance rather than NaN.
	wf := weightFunc{rmax: 0, alpha: 8}
	for _, d := range []float64{0, 0.1, 1} {
		if got := wf.weight(d); got != 0 {
			t.Errorf("weight(%v) with rmax=0 = %v, want 0", d, got)
		}
	}
}
