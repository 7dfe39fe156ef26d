package geometry2D

import (
	"math"
)

// Point is a 2D coordinate. In the angular form used by the crossing finder
// X[0] is the longitude-like (scan) coordinate and X[1] the colatitude-like
// (row) coordinate.
type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Minus(rhs Point) Point {
	return Point{X: [2]float64{
		pt.X[0] - rhs.X[0],
		pt.X[1] - rhs.X[1],
	}}
}

func (pt Point) Plus(rhs Point) Point {
	return Point{X: [2]float64{
		pt.X[0] + rhs.X[0],
		pt.X[1] + rhs.X[1],
	}}
}

func (pt Point) Equal(rhs Point) bool {
	return pt.X[0] == rhs.X[0] && pt.X[1] == rhs.X[1]
}

func (pt Point) Dist(rhs Point) float64 {
	return math.Hypot(pt.X[0]-rhs.X[0], pt.X[1]-rhs.X[1])
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin, Box.XMax = Geometry[0].X, Geometry[0].X
	for _, point := range Geometry {
		for i := 0; i < 2; i++ {
			if point.X[i] < Box.XMin[i] {
				Box.XMin[i] = point.X[i]
			}
			if point.X[i] > Box.XMax[i] {
				Box.XMax[i] = point.X[i]
			}
		}
	}
	return Box
}

func (bb *BoundingBox) PointInside(point Point) (within bool) {
	for i := 0; i < 2; i++ {
		if point.X[i] < bb.XMin[i] || point.X[i] > bb.XMax[i] {
			return false
		}
	}
	return true
}

func (bb *BoundingBox) Overlaps(other *BoundingBox) bool {
	for i := 0; i < 2; i++ {
		if bb.XMax[i] < other.XMin[i] || other.XMax[i] < bb.XMin[i] {
			return false
		}
	}
	return true
}

// Curve is an ordered closed sequence of points. The last point connects back
// to the first; the first point is not repeated at the end.
type Curve []Point

func (c Curve) Box() *BoundingBox { return NewBoundingBox(c) }

// Segment returns the i-th edge, closing from the last point to the first.
func (c Curve) Segment(i int) (a, b Point) {
	return c[i], c[(i+1)%len(c)]
}

// Area is the signed area (positive for counterclockwise traversal).
func (c Curve) Area() (area float64) {
	/*
		Algorithm: Green's theorem in the plane
	*/
	for i := range c {
		pt0, pt1 := c.Segment(i)
		area += pt0.X[0]*pt1.X[1] - pt1.X[0]*pt0.X[1]
	}
	return 0.5 * area
}

func (c Curve) Centroid() (centroid Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	var (
		area = c.Area()
		ct   [2]float64
	)
	for i := range c {
		pt0, pt1 := c.Segment(i)
		x0, y0 := pt0.X[0], pt0.X[1]
		x1, y1 := pt1.X[0], pt1.X[1]
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	for i := 0; i < 2; i++ {
		centroid.X[i] = ct[i] / (6 * area)
	}
	return
}

// PointInside uses the winding number, from
// http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly()
func (c Curve) PointInside(point Point) (inside bool) {
	if len(c) < 3 || !c.Box().PointInside(point) {
		return false
	}
	var wn int
	for i := range c {
		pt0, pt1 := c.Segment(i)
		if pt0.X[1] <= point.X[1] {
			if pt1.X[1] > point.X[1] {
				if isLeft(pt0, pt1, point) > 0 {
					wn++
				}
			}
		} else {
			if pt1.X[1] <= point.X[1] {
				if isLeft(pt0, pt1, point) < 0 {
					wn--
				}
			}
		}
	}
	return wn != 0
}

// isLeft is >0 for P2 left of the line through P0 and P1, =0 on it, <0 right.
func isLeft(P0, P1, P2 Point) float64 {
	return (P1.X[0]-P0.X[0])*(P2.X[1]-P0.X[1]) -
		(P2.X[0]-P0.X[0])*(P1.X[1]-P0.X[1])
}

// SegmentsIntersect reports whether the closed segments p1-p2 and p3-p4 share
// at least one point, including touching and collinear overlap.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	var (
		d1 = isLeft(p3, p4, p1)
		d2 = isLeft(p3, p4, p2)
		d3 = isLeft(p1, p2, p3)
		d4 = isLeft(p1, p2, p4)
	)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	onSegment := func(a, b, p Point) bool {
		return math.Min(a.X[0], b.X[0]) <= p.X[0] && p.X[0] <= math.Max(a.X[0], b.X[0]) &&
			math.Min(a.X[1], b.X[1]) <= p.X[1] && p.X[1] <= math.Max(a.X[1], b.X[1])
	}
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// NewNgon generates a regular n sided polygon, counterclockwise, starting on
// the positive X axis.
func NewNgon(centroid Point, radius float64, n int) (c Curve) {
	var (
		angleInc = 2 * math.Pi / float64(n)
	)
	c = make(Curve, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * angleInc
		c[i] = centroid.Plus(Point{X: [2]float64{
			math.Cos(angle) * radius,
			math.Sin(angle) * radius,
		}})
	}
	return
}

// NearestPoint returns the index of the point closest to q, -1 for no points.
func NearestPoint(points []Point, q Point) (iMin int) {
	var (
		dMin = math.Inf(1)
	)
	iMin = -1
	for i, pt := range points {
		if d := pt.Dist(q); d < dMin {
			dMin, iMin = d, i
		}
	}
	return
}

// Sub2Ind converts a (row, col) subscript of an nr x nc row-major grid into
// a linear index, -1 when out of range.
func Sub2Ind(nr, nc, row, col int) int {
	if row < 0 || row >= nr || col < 0 || col >= nc {
		return -1
	}
	return row*nc + col
}
