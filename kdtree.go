package bluenoise

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// KDTree is a 3D KD-tree for radius-range queries. Points are reordered
// internally via an index permutation array; the tree never moves or drops
// a point after construction.
//
// The tree is stored as a complete binary tree in array form:
//   - node i has children at 2*i+1 and 2*i+2
//   - node bounds are stored as a min/max vector per node
type KDTree struct {
	points   []Point
	n        int
	leafSize int
	idxArray []int      // permutation: tree-order position → points index
	nodes    []nodeData // one entry per tree node
	// boundsMin[node]/boundsMax[node] is the AABB of the node's points.
	boundsMin []r3.Vec
	boundsMax []r3.Vec
	numNodes  int
}

type nodeData struct {
	idxStart, idxEnd int
	isLeaf           bool
}

// NewKDTree builds a KD-tree over points. leafSize controls the max points
// per leaf node.
func NewKDTree(points []Point, leafSize int) *KDTree {
	if leafSize < 1 {
		leafSize = 1
	}

	n := len(points)
	ptsCopy := make([]Point, n)
	copy(ptsCopy, points)
	idxArray := make([]int, n)
	for i := range idxArray {
		idxArray[i] = i
	}

	// Pre-allocate tree arrays. A complete binary tree with n leaves of
	// size leafSize needs at most 2*ceil(n/leafSize) nodes, but we use a
	// generous upper bound since the median split may not be perfectly balanced.
	maxNodes := kdMaxNodes(n, leafSize)

	t := &KDTree{
		points:    ptsCopy,
		n:         n,
		leafSize:  leafSize,
		idxArray:  idxArray,
		nodes:     make([]nodeData, maxNodes),
		boundsMin: make([]r3.Vec, maxNodes),
		boundsMax: make([]r3.Vec, maxNodes),
	}

	if n > 0 {
		t.buildNode(0, 0, n)
		t.numNodes = kdCountNodes(t.nodes, 0, maxNodes)
	}

	return t
}

// kdMaxNodes returns an upper bound on the number of nodes needed for a
// binary tree with n points and the given leaf size.
func kdMaxNodes(n, leafSize int) int {
	if n == 0 {
		return 1
	}
	// Depth of tree: ceil(log2(ceil(n/leafSize))) + 1.
	// Number of nodes in a complete binary tree of depth d = 2^(d+1) - 1.
	leaves := (n + leafSize - 1) / leafSize
	depth := 0
	v := 1
	for v < leaves {
		v *= 2
		depth++
	}
	return (1 << (depth + 1)) - 1 + 2 // +2 for safety margin
}

// kdCountNodes counts how many nodes were actually initialized by the build.
func kdCountNodes(nodes []nodeData, nodeID, maxNodes int) int {
	if nodeID >= maxNodes {
		return 0
	}
	if nodes[nodeID].idxStart == 0 && nodes[nodeID].idxEnd == 0 && nodeID != 0 {
		return 0
	}
	count := 1
	if !nodes[nodeID].isLeaf {
		count += kdCountNodes(nodes, 2*nodeID+1, maxNodes)
		count += kdCountNodes(nodes, 2*nodeID+2, maxNodes)
	}
	return count
}

// buildNode recursively builds the tree for points in idxArray[start:end].
func (t *KDTree) buildNode(nodeID, start, end int) {
	// Grow arrays if needed (shouldn't happen with good upper bound).
	for nodeID >= len(t.nodes) {
		t.nodes = append(t.nodes, nodeData{})
		t.boundsMin = append(t.boundsMin, r3.Vec{})
		t.boundsMax = append(t.boundsMax, r3.Vec{})
	}

	t.computeNodeBounds(nodeID, start, end)

	count := end - start
	if count <= t.leafSize {
		t.nodes[nodeID] = nodeData{idxStart: start, idxEnd: end, isLeaf: true}
		return
	}

	// Split on the dimension with greatest spread.
	spread := r3.Sub(t.boundsMax[nodeID], t.boundsMin[nodeID])
	splitDim := 0
	maxSpread := spread.X
	if spread.Y > maxSpread {
		splitDim, maxSpread = 1, spread.Y
	}
	if spread.Z > maxSpread {
		splitDim = 2
	}

	// Sort by the split dimension and split at the median.
	t.sortByDimension(start, end, splitDim)
	mid := start + count/2

	t.nodes[nodeID] = nodeData{idxStart: start, idxEnd: end, isLeaf: false}

	t.buildNode(2*nodeID+1, start, mid)
	t.buildNode(2*nodeID+2, mid, end)
}

// computeNodeBounds computes the AABB of points idxArray[start:end].
func (t *KDTree) computeNodeBounds(nodeID, start, end int) {
	lo := r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi := r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for i := start; i < end; i++ {
		pos := t.points[t.idxArray[i]].Pos
		lo = minElem(lo, pos)
		hi = maxElem(hi, pos)
	}
	t.boundsMin[nodeID] = lo
	t.boundsMax[nodeID] = hi
}

// sortByDimension sorts idxArray[start:end] by the given dimension.
func (t *KDTree) sortByDimension(start, end, dim int) {
	sub := t.idxArray[start:end]
	pts := t.points
	sort.Slice(sub, func(i, j int) bool {
		return component(pts[sub[i]].Pos, dim) < component(pts[sub[j]].Pos, dim)
	})
}

// NumPoints returns the number of points in the index.
func (t *KDTree) NumPoints() int { return t.n }

// QueryRadius returns every indexed point within radius of center,
// excluding the point carrying selfID.
func (t *KDTree) QueryRadius(center r3.Vec, radius float64, selfID int) []Neighbor {
	if t.n == 0 || radius < 0 {
		return nil
	}
	var out []Neighbor
	t.radiusSearch(0, center, radius, selfID, &out)
	return out
}

// radiusSearch traverses the tree, pruning nodes whose bounding box lies
// entirely outside the query ball.
func (t *KDTree) radiusSearch(nodeID int, center r3.Vec, radius float64, selfID int, out *[]Neighbor) {
	if nodeID >= len(t.nodes) {
		return
	}
	node := t.nodes[nodeID]
	if node.idxStart == node.idxEnd && nodeID != 0 {
		return // uninitialized node
	}
	if t.minDist2ToNode(nodeID, center) > radius*radius {
		return
	}

	if node.isLeaf {
		for i := node.idxStart; i < node.idxEnd; i++ {
			p := t.points[t.idxArray[i]]
			if p.ID == selfID {
				continue
			}
			d := r3.Norm(r3.Sub(p.Pos, center))
			if d <= radius {
				*out = append(*out, Neighbor{Pos: p.Pos, ID: p.ID, Dist: d})
			}
		}
		return
	}

	t.radiusSearch(2*nodeID+1, center, radius, selfID, out)
	t.radiusSearch(2*nodeID+2, center, radius, selfID, out)
}

// minDist2ToNode returns the squared distance from point to the node's
// bounding box (0 if the point is inside the box).
func (t *KDTree) minDist2ToNode(nodeID int, point r3.Vec) float64 {
	lo := t.boundsMin[nodeID]
	hi := t.boundsMax[nodeID]
	var d2 float64
	for dim := 0; dim < 3; dim++ {
		v := component(point, dim)
		var d float64
		if l := component(lo, dim); v < l {
			d = l - v
		} else if h := component(hi, dim); v > h {
			d = v - h
		}
		d2 += d * d
	}
	return d2
}
