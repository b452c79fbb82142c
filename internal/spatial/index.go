// Package spatial indexes summit locations for nearest-distance queries on
// the projected canvas.
package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Index answers nearest-summit distance queries in O(log n) using an R-tree.
// Way selection asks it once per way barycenter and once per way node, so a
// linear scan would make selection quadratic in practice.
type Index struct {
	rtree *rtreego.Rtree
	count int
}

// indexedPoint wraps a canvas point for R-tree storage.
type indexedPoint struct {
	point orb.Point
}

// Bounds implements rtreego.Spatial interface.
func (e *indexedPoint) Bounds() rtreego.Rect {
	// R-tree requires non-zero dimensions, so points get a tiny box
	const epsilon = 0.0001
	rect, _ := rtreego.NewRect(rtreego.Point{e.point[0], e.point[1]}, []float64{epsilon, epsilon})
	return rect
}

// NewIndex builds an index over the given points.
func NewIndex(pts []orb.Point) *Index {
	ix := &Index{count: len(pts)}
	if len(pts) == 0 {
		return ix
	}

	// 2D, min=25 max=50 children per node
	ix.rtree = rtreego.NewTree(2, 25, 50)
	for _, p := range pts {
		ix.rtree.Insert(&indexedPoint{point: p})
	}
	return ix
}

// NearestDistance returns the exact planar distance from p to the closest
// indexed point, or +Inf when the index is empty. Callers apply their own
// threshold comparisons.
func (ix *Index) NearestDistance(p orb.Point) float64 {
	if ix == nil || ix.rtree == nil {
		return math.Inf(1)
	}

	nearest := ix.rtree.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if nearest == nil {
		return math.Inf(1)
	}

	entry := nearest.(*indexedPoint)
	return planar.Distance(p, entry.point)
}

// Len returns the number of indexed points.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.count
}
