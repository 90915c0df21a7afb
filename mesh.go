package bluenoise

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is one face of a triangle soup. The soup stands in for the host
// mesh the candidates were emitted from: it supplies the reference surface
// area for surface-mode elimination and can emit candidates directly.
type Triangle [3]r3.Vec

// Area returns the triangle's area.
func (t Triangle) Area() float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0])))
}

// SurfaceArea returns the summed area of tris, suitable for Config.MeshArea.
func SurfaceArea(tris []Triangle) float64 {
	var total float64
	for _, t := range tris {
		total += t.Area()
	}
	return total
}

// SampleSurface draws n uniform random points on the soup's surface,
// weighting triangles by area. Identifiers are assigned 0..n-1. Returns nil
// when the soup is empty or has zero total area.
func SampleSurface(tris []Triangle, n int, rng *rand.Rand) []Point {
	if len(tris) == 0 || n <= 0 {
		return nil
	}

	// Cumulative areas for area-proportional triangle selection.
	cum := make([]float64, len(tris))
	var total float64
	for i, t := range tris {
		total += t.Area()
		cum[i] = total
	}
	if total <= 0 {
		return nil
	}

	points := make([]Point, n)
	for i := range points {
		ti := sort.SearchFloat64s(cum, rng.Float64()*total)
		if ti >= len(tris) {
			ti = len(tris) - 1
		}
		points[i] = Point{ID: i, Pos: uniformInTriangle(tris[ti], rng)}
	}
	return points
}

// uniformInTriangle picks a uniform random point inside t using the
// square-root barycentric trick.
func uniformInTriangle(t Triangle, rng *rand.Rand) r3.Vec {
	su := math.Sqrt(rng.Float64())
	v := rng.Float64()
	a := r3.Scale(1-su, t[0])
	b := r3.Scale(su*(1-v), t[1])
	c := r3.Scale(su*v, t[2])
	return r3.Add(a, r3.Add(b, c))
}

// SampleVolume draws n uniform random points inside box. Identifiers are
// assigned 0..n-1.
func SampleVolume(box r3.Box, n int, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}
	ext := r3.Sub(box.Max, box.Min)
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			ID: i,
			Pos: r3.Add(box.Min, r3.Vec{
				X: rng.Float64() * ext.X,
				Y: rng.Float64() * ext.Y,
				Z: rng.Float64() * ext.Z,
			}),
		}
	}
	return points
}
