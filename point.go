package bluenoise

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point pairs a caller-supplied identifier with a 3D position. Identifiers
// must be unique but need not be contiguous. The engine only reads positions
// and tracks identifiers; the caller owns the points before and after a run.
type Point struct {
	ID  int
	Pos r3.Vec
}

// pointBounds returns the axis-aligned bounding box of pts.
// The result for an empty slice is an inverted (infinite) box.
func pointBounds(pts []Point) r3.Box {
	b := r3.Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, p := range pts {
		b.Min = minElem(b.Min, p.Pos)
		b.Max = maxElem(b.Max, p.Pos)
	}
	return b
}

func minElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		Z: math.Min(a.Z, b.Z),
	}
}

func maxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: math.Max(a.X, b.X),
		Y: math.Max(a.Y, b.Y),
		Z: math.Max(a.Z, b.Z),
	}
}

// component returns the d-th coordinate of v (0=X, 1=Y, 2=Z).
func component(v r3.Vec, d int) float64 {
	switch d {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func sortPointsByID(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return pts[i].ID < pts[j].ID })
}

func finiteVec(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
