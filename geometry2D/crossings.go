package geometry2D

import (
	"math"
	"sort"

	"github.com/notargets/goslepian/interp"
)

// CrossingRow holds the sorted scan coordinates where the curve meets one
// query row. Err is set when the count is odd; such a row has no intervals.
type CrossingRow struct {
	Lat       float64
	Crossings []float64
	Err       *GeometryError
}

type CrossingTable struct {
	Rows []CrossingRow
}

// Intervals pairs consecutive crossings into inside intervals under the
// even-odd rule.
func (cr CrossingRow) Intervals() (iv [][2]float64) {
	if cr.Err != nil {
		return
	}
	for i := 0; i+1 < len(cr.Crossings); i += 2 {
		iv = append(iv, [2]float64{cr.Crossings[i], cr.Crossings[i+1]})
	}
	return
}

// Errors collects the per row inconsistencies, in row order.
func (ct CrossingTable) Errors() (errs []*GeometryError) {
	for _, row := range ct.Rows {
		if row.Err != nil {
			errs = append(errs, row.Err)
		}
	}
	return
}

// FindCrossings intersects the closed curve with each row X[1] == lat.
// Each edge is taken as half-open in X[1]: it contributes when exactly one of
// its endpoints lies above the row. Horizontal edges on the row and vertices
// touching it from one side then contribute an even count, so every simple
// closed curve gives an even row. Rows the curve never reaches have no
// crossings and no error. A crossing that cannot be located, such as one on an
// edge with a non-finite vertex, is dropped and leaves the row odd.
func FindCrossings(curve Curve, lat []float64) (ct CrossingTable) {
	ct.Rows = make([]CrossingRow, len(lat))
	for r, y := range lat {
		row := CrossingRow{Lat: y}
		for i := range curve {
			a, b := curve.Segment(i)
			ya, yb := a.X[1], b.X[1]
			if (ya > y) == (yb > y) {
				continue
			}
			xs, vs := []float64{ya, yb}, []float64{a.X[0], b.X[0]}
			if ya > yb {
				xs[0], xs[1] = yb, ya
				vs[0], vs[1] = b.X[0], a.X[0]
			}
			xq, err := interp.Interp1(xs, vs, []float64{y})
			if err != nil || math.IsNaN(xq[0]) || math.IsInf(xq[0], 0) {
				continue
			}
			row.Crossings = append(row.Crossings, xq[0])
		}
		sort.Float64s(row.Crossings)
		if len(row.Crossings)%2 != 0 {
			row.Err = &GeometryError{
				Row:        r,
				Coordinate: y,
				Count:      len(row.Crossings),
				Reason:     "odd crossing count",
			}
		}
		ct.Rows[r] = row
	}
	return
}
