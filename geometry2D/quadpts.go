package geometry2D

import (
	"fmt"

	"github.com/notargets/goslepian/quadrature"
	"github.com/notargets/goslepian/runlength"
)

// QuadratureNodes is a 2D node set covering a region. Nodes are ordered by
// row, then left to right within a row. RowIndex maps each node back to its
// row of the crossing table.
type QuadratureNodes struct {
	X, Y, W   []float64
	Rows      int
	RowIndex  []int
	RowErrors []*GeometryError
}

func (q *QuadratureNodes) Len() int { return len(q.W) }

// Area is the quadrature estimate of the region area.
func (q *QuadratureNodes) Area() (area float64) {
	for _, w := range q.W {
		area += w
	}
	return
}

func (q *QuadratureNodes) Points() (pts []Point) {
	pts = make([]Point, q.Len())
	for i := range pts {
		pts[i] = NewPoint(q.X[i], q.Y[i])
	}
	return
}

// Outside returns the indices of the nodes that c does not contain.
func (q *QuadratureNodes) Outside(c Curve) (idx []int) {
	for i := range q.W {
		if !c.PointInside(NewPoint(q.X[i], q.Y[i])) {
			idx = append(idx, i)
		}
	}
	return
}

// RowNodes returns the node indices belonging to the given crossing table rows.
func (q *QuadratureNodes) RowNodes(rows ...int) (idx []int, err error) {
	var (
		dv, _, be = runlength.Degamini(q.RowIndex)
		ranges    []int
	)
	for _, r := range rows {
		for i, val := range dv {
			if val == r {
				ranges = append(ranges, be[i][0], be[i][1])
			}
		}
	}
	return runlength.Matranges(ranges)
}

// GenerateQuadrature places the base rule into every inside interval of every
// consistent row. latWeights[r] is the weight of row r in the transverse
// direction. Rows with an odd crossing count are skipped and reported in
// RowErrors.
func GenerateQuadrature(ct CrossingTable, latWeights []float64, base quadrature.Rule) (q *QuadratureNodes, err error) {
	if len(latWeights) != len(ct.Rows) {
		err = fmt.Errorf("%w: %d row weights for %d crossing rows", ErrInvalidInput, len(latWeights), len(ct.Rows))
		return
	}
	if base.Len() == 0 {
		err = fmt.Errorf("%w: empty base quadrature rule", ErrInvalidInput)
		return
	}
	var (
		lats, wLat []float64
		rowIDs     []int
		counts     []int
	)
	q = &QuadratureNodes{}
	for r, row := range ct.Rows {
		if row.Err != nil {
			q.RowErrors = append(q.RowErrors, row.Err)
			continue
		}
		var n int
		for _, iv := range row.Intervals() {
			rule := base.Rescale(iv[0], iv[1])
			q.X = append(q.X, rule.X...)
			q.W = append(q.W, rule.W...)
			n += rule.Len()
		}
		if n == 0 {
			continue
		}
		lats = append(lats, row.Lat)
		wLat = append(wLat, latWeights[r])
		rowIDs = append(rowIDs, r)
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return
	}
	if q.Y, err = runlength.Gamini(lats, counts); err != nil {
		return
	}
	if wLat, err = runlength.Gamini(wLat, counts); err != nil {
		return
	}
	if q.RowIndex, err = runlength.Gamini(rowIDs, counts); err != nil {
		return
	}
	for i := range q.W {
		q.W[i] *= wLat[i]
	}
	dv, _, _ := runlength.Degamini(q.RowIndex)
	q.Rows = len(dv)
	return
}

// QuadratureFromCurve covers the region inside curve with nRows Gauss-Legendre
// rows across its X[1] extent and nPerInterval Gauss-Legendre nodes in each
// inside interval.
func QuadratureFromCurve(curve Curve, nRows, nPerInterval int) (q *QuadratureNodes, err error) {
	if len(curve) < 3 {
		err = fmt.Errorf("%w: curve has %d points, need at least 3", ErrInvalidInput, len(curve))
		return
	}
	var (
		box        = curve.Box()
		rows, base quadrature.Rule
	)
	if rows, err = quadrature.GaussLegendre(nRows); err != nil {
		return
	}
	if base, err = quadrature.GaussLegendre(nPerInterval); err != nil {
		return
	}
	rows = rows.Rescale(box.XMin[1], box.XMax[1])
	return GenerateQuadrature(FindCrossings(curve, rows.X), rows.W, base)
}
