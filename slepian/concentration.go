package slepian

import (
	"gonum.org/v1/gonum/mat"
)

// Concentrations returns the Rayleigh quotient u^T K u / u^T G u of every
// column u of U, G == nil meaning the identity. For eigenvectors this is the
// eigenvalue, without a second eigensolve.
func Concentrations(K, G mat.Matrix, U mat.Matrix) (lambda []float64, err error) {
	if K == nil || U == nil {
		err = invalidf("nil kernel or taper matrix")
		return
	}
	var (
		nk, ck = K.Dims()
		n, k   = U.Dims()
	)
	if nk != ck || nk != n {
		err = invalidf("kernel is %dx%d, tapers have %d rows", nk, ck, n)
		return
	}
	if G != nil {
		if ng, cg := G.Dims(); ng != n || cg != n {
			err = invalidf("weight matrix is %dx%d, expected %dx%d", ng, cg, n, n)
			return
		}
	}
	lambda = make([]float64, k)
	col := make([]float64, n)
	for j := 0; j < k; j++ {
		u := mat.NewVecDense(n, mat.Col(col, j, U))
		den := mat.Dot(u, u)
		if G != nil {
			den = mat.Inner(u, G, u)
		}
		if den <= 0 {
			err = degeneratef("taper %d has non-positive norm %g", j, den)
			return nil, err
		}
		lambda[j] = mat.Inner(u, K, u) / den
	}
	return
}
