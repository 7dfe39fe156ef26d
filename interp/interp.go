// Package interp provides the linear interpolation primitives used by the
// crossing finder and contour tracing.
package interp

import (
	"fmt"
	"math"
	"sort"
)

// Interp1 linearly interpolates the samples v(x) at the query points xq.
// x must be strictly increasing. Queries outside [x[0], x[n-1]] return NaN.
func Interp1(x, v, xq []float64) (vq []float64, err error) {
	var (
		n = len(x)
	)
	if n != len(v) {
		err = fmt.Errorf("interp1: len(x) = %d, len(v) = %d", n, len(v))
		return
	}
	if n < 2 {
		err = fmt.Errorf("interp1: need at least two samples, have %d", n)
		return
	}
	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			err = fmt.Errorf("interp1: sample points not strictly increasing at index %d", i)
			return
		}
	}
	vq = make([]float64, len(xq))
	for i, q := range xq {
		vq[i] = at(x, v, q)
	}
	return
}

func at(x, v []float64, q float64) float64 {
	var (
		n = len(x)
	)
	if math.IsNaN(q) || q < x[0] || q > x[n-1] {
		return math.NaN()
	}
	// First index with x[j] >= q
	j := sort.SearchFloat64s(x, q)
	if x[j] == q {
		return v[j]
	}
	t := (q - x[j-1]) / (x[j] - x[j-1])
	return v[j-1] + t*(v[j]-v[j-1])
}

// Segment interpolates the single segment (xa, va)-(xb, vb) at q, in either
// direction of x. xa == xb returns the mean of the two values.
func Segment(xa, va, xb, vb, q float64) float64 {
	if xa == xb {
		return 0.5 * (va + vb)
	}
	t := (q - xa) / (xb - xa)
	return va + t*(vb-va)
}
