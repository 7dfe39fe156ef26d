package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConditionNumber is the ratio of the extreme singular values of A, +Inf
// when A is singular or the SVD fails.
func ConditionNumber(A mat.Matrix) float64 {
	var svd mat.SVD
	if !svd.Factorize(A, mat.SVDNone) {
		return math.Inf(1)
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return math.Inf(1)
	}
	// Singular values are in descending order
	minVal, maxVal := values[len(values)-1], values[0]
	if minVal == 0 {
		return math.Inf(1)
	}
	return maxVal / minVal
}
