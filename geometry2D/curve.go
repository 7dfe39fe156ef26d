package geometry2D

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// OrderClosedCurve orders an unordered point cloud into a closed tour by a
// greedy nearest-unvisited-neighbour walk starting at points[0]. No
// backtracking is done. When the resulting tour crosses itself the tour is
// still returned, together with a *GeometryError naming the first pair of
// intersecting edges.
func OrderClosedCurve(points []Point) (c Curve, err error) {
	var (
		n       = len(points)
		visited = make([]bool, n)
		cp      = make(curvePoints, n)
		tree    *kdtree.Tree
	)
	if n == 0 {
		return
	}
	for i, pt := range points {
		cp[i] = curvePoint{Point: pt, idx: i}
	}
	tree = kdtree.New(cp, false)
	c = make(Curve, 0, n)
	cur := 0
	for {
		visited[cur] = true
		c = append(c, points[cur])
		if len(c) == n {
			break
		}
		keep := unvisitedKeeper{NKeeper: kdtree.NewNKeeper(1), visited: visited}
		tree.NearestSet(keep, curvePoint{Point: points[cur], idx: -1})
		if keep.Len() == 0 || keep.Heap[0].Comparable == nil {
			break
		}
		cur = keep.Heap[0].Comparable.(curvePoint).idx
	}
	if i, j, found := c.SelfIntersection(); found {
		err = &GeometryError{
			Row:      -1,
			Segments: [2]int{i, j},
			Count:    len(c),
			Reason:   "greedy tour crosses itself",
		}
	}
	return
}

// SelfIntersection finds the first pair of non-adjacent edges that touch.
func (c Curve) SelfIntersection() (i, j int, found bool) {
	var (
		n     = len(c)
		boxes = make([]*BoundingBox, n)
	)
	if n < 4 {
		return
	}
	for i := range c {
		a, b := c.Segment(i)
		boxes[i] = NewBoundingBox([]Point{a, b})
	}
	for i = 0; i < n; i++ {
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			a, b := c.Segment(i)
			p, q := c.Segment(j)
			if SegmentsIntersect(a, b, p, q) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

type curvePoint struct {
	Point
	idx int
}

func (p curvePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(curvePoint)
	return p.X[d] - q.X[d]
}

func (p curvePoint) Dims() int { return 2 }

// Distance is squared Euclidean, as kdtree expects.
func (p curvePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(curvePoint)
	dx, dy := p.X[0]-q.X[0], p.X[1]-q.X[1]
	return dx*dx + dy*dy
}

type curvePoints []curvePoint

func (p curvePoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p curvePoints) Len() int                              { return len(p) }
func (p curvePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p curvePoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(curvePlane{curvePoints: p, Dim: d}, kdtree.MedianOfMedians(curvePlane{curvePoints: p, Dim: d}))
}

type curvePlane struct {
	curvePoints
	kdtree.Dim
}

func (p curvePlane) Less(i, j int) bool {
	return p.curvePoints[i].X[p.Dim] < p.curvePoints[j].X[p.Dim]
}
func (p curvePlane) Slice(start, end int) kdtree.SortSlicer {
	return curvePlane{curvePoints: p.curvePoints[start:end], Dim: p.Dim}
}
func (p curvePlane) Swap(i, j int) {
	p.curvePoints[i], p.curvePoints[j] = p.curvePoints[j], p.curvePoints[i]
}

// unvisitedKeeper retains the single nearest point not yet on the tour.
type unvisitedKeeper struct {
	*kdtree.NKeeper
	visited []bool
}

func (k unvisitedKeeper) Keep(c kdtree.ComparableDist) {
	if p, ok := c.Comparable.(curvePoint); ok && p.idx >= 0 && k.visited[p.idx] {
		return
	}
	k.NKeeper.Keep(c)
}
