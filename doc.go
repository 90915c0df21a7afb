// Package bluenoise thins an oversampled 3D point set down to a target size
// while pushing the surviving points toward a blue-noise distribution: no
// low-frequency clumping and no two survivors much closer than a principled
// minimum separation.
//
// The algorithm is weighted sample elimination. Every candidate carries a
// weight summing a compactly-supported falloff kernel over its neighbors
// within twice the falloff radius. The engine repeatedly removes the
// highest-weight point and subtracts its pairwise contributions from the
// neighbors it leaves behind, until exactly the requested number of points
// remain.
//
// Basic usage:
//
//	cfg := bluenoise.DefaultConfig()
//	result, err := bluenoise.Eliminate(points, 1000, cfg)
//	// result.Points are the surviving samples, ascending by identifier
//	// result.RMax is the falloff radius derived from the input geometry
//
// # Index selection
//
// By default (Index: IndexKDTree) the engine uses its own array-form KD-tree
// for radius queries. Set Config.Index to IndexGonum to use
// gonum.org/v1/gonum/spatial/kdtree behind the same interface instead; the
// elimination order is identical either way.
//
// # Surface mode
//
// When the candidates were emitted on a 2D surface embedded in 3D, set
// Config.IsVolume to false and supply the surface's reference area in
// Config.MeshArea. The surface packing bound is usually tighter than the
// bounding-volume bound and is not fooled by a thin bounding box.
package bluenoise
