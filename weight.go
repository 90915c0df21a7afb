package bluenoise

import "math"

// weightFunc is the falloff kernel summed over a point's neighborhood.
// The contribution of a neighbor at distance d is
//
//	(1 - min(d, 2*rmax)/(2*rmax))^alpha
//
// which is 1 for coincident points, monotonically non-increasing in d, and
// exactly zero at and beyond 2*rmax.
type weightFunc struct {
	rmax  float64
	alpha float64
}

func (w weightFunc) weight(d float64) float64 {
	limit := 2 * w.rmax
	if d >= limit {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return math.Pow(1-d/limit, w.alpha)
}
