package geometry2D

import (
	"errors"
	"fmt"
)

// ErrGeometryInconsistency marks a curve or crossing row that cannot describe
// a simple closed region: odd crossing counts, self-intersections.
var ErrGeometryInconsistency = errors.New("geometry2D: inconsistent geometry")

// ErrInvalidInput marks arguments that can never produce a quadrature:
// mismatched lengths, empty rules, curves with too few points.
var ErrInvalidInput = errors.New("invalid input")

// GeometryError locates an inconsistency. Row is the crossing table row (-1
// when not row related), Segments the pair of curve edges that intersect.
type GeometryError struct {
	Row        int
	Coordinate float64
	Count      int
	Segments   [2]int
	Reason     string
}

func (e *GeometryError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("%v: %s at row %d (coordinate %g, %d crossings)",
			ErrGeometryInconsistency, e.Reason, e.Row, e.Coordinate, e.Count)
	}
	return fmt.Sprintf("%v: %s between segments %d and %d",
		ErrGeometryInconsistency, e.Reason, e.Segments[0], e.Segments[1])
}

func (e *GeometryError) Unwrap() error {
	return ErrGeometryInconsistency
}
