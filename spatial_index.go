package bluenoise

import "gonum.org/v1/gonum/spatial/r3"

// Neighbor is a single radius-query result: an indexed point's position,
// identifier, and Euclidean distance to the query center.
type Neighbor struct {
	Pos  r3.Vec
	ID   int
	Dist float64
}

// SpatialIndex is the read interface shared by the KD-tree implementations.
// An index is built once over the full candidate set and never mutated;
// points logically eliminated later remain queryable for the index's
// lifetime. Queries are safe for concurrent use.
type SpatialIndex interface {
	// QueryRadius returns every indexed point whose Euclidean distance to
	// center is <= radius, excluding the point carrying selfID. Coincident
	// points other than selfID are included at distance 0.
	QueryRadius(center r3.Vec, radius float64, selfID int) []Neighbor

	// NumPoints returns the number of points in the index.
	NumPoints() int
}

// newSpatialIndex builds the index implementation selected by cfg.Index.
// cfg must already be validated.
func newSpatialIndex(points []Point, cfg Config) SpatialIndex {
	switch cfg.Index {
	case IndexGonum:
		return NewGonumTree(points)
	default:
		return NewKDTree(points, cfg.LeafSize)
	}
}
