package bluenoise

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ SpatialIndex     = (*GonumTree)(nil)
	_ kdtree.Interface = kdPoints{}
)

// GonumTree is a SpatialIndex backed by gonum's spatial/kdtree package. It
// answers the same radius queries as KDTree; Config.Index picks which of
// the two Eliminate uses.
type GonumTree struct {
	tree *kdtree.Tree
	n    int
}

// NewGonumTree builds a gonum KD-tree over points.
func NewGonumTree(points []Point) *GonumTree {
	pts := make(kdPoints, len(points))
	for i, p := range points {
		pts[i] = kdPoint(p)
	}
	return &GonumTree{tree: kdtree.New(pts, true), n: len(points)}
}

// NumPoints returns the number of points in the index.
func (g *GonumTree) NumPoints() int { return g.n }

// QueryRadius returns every indexed point within radius of center,
// excluding the point carrying selfID.
func (g *GonumTree) QueryRadius(center r3.Vec, radius float64, selfID int) []Neighbor {
	if g.n == 0 || radius < 0 {
		return nil
	}
	// The keeper works in the squared-distance space used by kdPoint.Distance.
	keeper := kdtree.NewDistKeeper(radius * radius)
	g.tree.NearestSet(keeper, kdPoint{Pos: center})

	out := make([]Neighbor, 0, len(keeper.Heap))
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue // the keeper's bound sentinel
		}
		p := cd.Comparable.(kdPoint)
		if p.ID == selfID {
			continue
		}
		out = append(out, Neighbor{Pos: p.Pos, ID: p.ID, Dist: math.Sqrt(cd.Dist)})
	}
	return out
}

type kdPoint Point

// Compare returns the signed distance of p from the plane passing through c
// and perpendicular to dimension d.
func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)
	switch d {
	case 0:
		return p.Pos.X - q.Pos.X
	case 1:
		return p.Pos.Y - q.Pos.Y
	default:
		return p.Pos.Z - q.Pos.Z
	}
}

// Dims returns the number of dimensions described in the Comparable.
func (p kdPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter, as the kdtree package's pruning arithmetic expects.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(kdPoint)
	return r3.Norm2(r3.Sub(p.Pos, q.Pos))
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }

func (p kdPoints) Len() int { return len(p) }

// Pivot partitions the list based on the dimension specified.
func (p kdPoints) Pivot(d kdtree.Dim) int {
	plane := kdPlane{dim: int(d), pts: p}
	return kdtree.Partition(plane, kdtree.MedianOfMedians(plane))
}

// Slice returns a slice of the list using zero-based half-open indexing
// equivalent to built-in slice indexing.
func (p kdPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type kdPlane struct {
	dim int
	pts kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.pts[i].Compare(p.pts[j], kdtree.Dim(p.dim)) < 0
}
func (p kdPlane) Swap(i, j int) { p.pts[i], p.pts[j] = p.pts[j], p.pts[i] }
func (p kdPlane) Len() int      { return len(p.pts) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.pts = p.pts[start:end]
	return p
}
