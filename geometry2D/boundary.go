package geometry2D

import (
	"github.com/notargets/goslepian/interp"
)

// ExtractBoundary returns the cells of mask that are set and have at least
// one 4-neighbour that is unset or off the grid. Points are (col, row) in
// row-major scan order. mask is indexed mask[row][col]; rows may be ragged.
func ExtractBoundary(mask [][]bool) (pts []Point) {
	var (
		set = func(i, j int) bool {
			if i < 0 || i >= len(mask) || j < 0 || j >= len(mask[i]) {
				return false
			}
			return mask[i][j]
		}
	)
	for i, row := range mask {
		for j, val := range row {
			if !val {
				continue
			}
			if !set(i-1, j) || !set(i+1, j) || !set(i, j-1) || !set(i, j+1) {
				pts = append(pts, NewPoint(float64(j), float64(i)))
			}
		}
	}
	return
}

// ContourPoints locates where field crosses level along every horizontal and
// vertical pair of neighbouring grid cells. Points are (col, row) with
// fractional coordinates, in row-major scan order.
func ContourPoints(field [][]float64, level float64) (pts []Point) {
	var (
		add = func(za, zb float64, pa, pb [2]float64) {
			if (za-level)*(zb-level) >= 0 {
				return
			}
			if p, ok := interp.LevelCrossing(za, zb, level, pa, pb); ok {
				pts = append(pts, Point{X: p})
			}
		}
	)
	for i, row := range field {
		for j, z := range row {
			here := [2]float64{float64(j), float64(i)}
			if z == level {
				pts = append(pts, Point{X: here})
				continue
			}
			if j+1 < len(row) {
				add(z, row[j+1], here, [2]float64{float64(j + 1), float64(i)})
			}
			if i+1 < len(field) && j < len(field[i+1]) {
				add(z, field[i+1][j], here, [2]float64{float64(j), float64(i + 1)})
			}
		}
	}
	return
}

// MaskContour returns the sub-cell boundary of a binary mask: the 0.5 level
// of the mask seen as a 0/1 field padded by one unset cell on every side.
func MaskContour(mask [][]bool) (pts []Point) {
	var (
		nr    = len(mask)
		nc    int
		field [][]float64
	)
	for _, row := range mask {
		nc = max(nc, len(row))
	}
	field = make([][]float64, nr+2)
	for i := range field {
		field[i] = make([]float64, nc+2)
	}
	for i, row := range mask {
		for j, val := range row {
			if val {
				field[i+1][j+1] = 1
			}
		}
	}
	pts = ContourPoints(field, 0.5)
	for i := range pts {
		pts[i] = pts[i].Minus(NewPoint(1, 1))
	}
	return
}
