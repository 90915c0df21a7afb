package bluenoise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// deriveRadii computes the falloff radius rmax and the heuristic lower
// bound rmin for eliminating originalCount candidates down to targetCount.
//
// The volume bound assumes random close packing of spheres in the candidate
// bounding box. In surface mode with a known reference area, a 2D hexagonal
// packing bound is also computed and the tighter of the two wins.
//
// rmin is reported alongside rmax but elimination never enforces it; the
// weight kernel alone drives removal.
func deriveRadii(bounds r3.Box, originalCount, targetCount int, cfg Config) (rmax, rmin float64, err error) {
	if originalCount == 0 || targetCount <= 0 {
		return 0, 0, fmt.Errorf("bluenoise: radius heuristic needs positive sample counts, got %d -> %d: %w",
			originalCount, targetCount, ErrInvalidInput)
	}

	ext := r3.Sub(bounds.Max, bounds.Min)
	if ext.X == 0 && ext.Y == 0 && ext.Z == 0 {
		return 0, 0, fmt.Errorf("bluenoise: all candidate points coincide (zero-extent bounding box): %w",
			ErrInvalidInput)
	}

	volume := ext.X * ext.Y * ext.Z
	n := float64(targetCount)
	rmax = math.Cbrt(volume / (4 * math.Sqrt2 * n))

	if !cfg.IsVolume && cfg.MeshArea > 0 {
		// Candidates constrained to a 2D surface admit a tighter bound that
		// is immune to a thin bounding box's near-zero volume.
		surf := math.Sqrt(cfg.MeshArea / (2 * math.Sqrt(3) * n))
		rmax = math.Min(rmax, surf)
	}

	ratio := n / float64(originalCount)
	rmin = rmax * (1 - math.Pow(ratio, cfg.Gamma)) * cfg.Beta

	if math.IsNaN(rmax) || math.IsInf(rmax, 0) || math.IsNaN(rmin) || math.IsInf(rmin, 0) {
		return 0, 0, fmt.Errorf("bluenoise: radius heuristic produced non-finite bounds (rmax=%v, rmin=%v): %w",
			rmax, rmin, ErrNumericInstability)
	}
	return rmax, rmin, nil
}
