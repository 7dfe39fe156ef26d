package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewSymTriDiagonal builds the symmetric tridiagonal matrix with main
// diagonal d0 and first off-diagonal d1, len(d1) == len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymBandDense) {
	var (
		N    = len(d0)
		data = make([]float64, 2*N)
	)
	if len(d1) != N-1 && !(N == 1 && len(d1) == 0) {
		err := fmt.Errorf("off diagonal length %d does not match diagonal length %d", len(d1), N)
		panic(err)
	}
	// Band storage, row i holds (A[i,i], A[i,i+1])
	for i := 0; i < N; i++ {
		data[2*i] = d0[i]
		if i < N-1 {
			data[2*i+1] = d1[i]
		}
	}
	Tri = mat.NewSymBandDense(N, 1, data)
	return
}

// Symmetrize returns (A + A^T)/2 as a SymDense, removing the rounding
// asymmetry left by products like R^-T K R^-1.
func Symmetrize(A mat.Matrix) (S *mat.SymDense) {
	var (
		nr, nc = A.Dims()
	)
	if nr != nc {
		err := fmt.Errorf("symmetrize requires a square matrix, have %dx%d", nr, nc)
		panic(err)
	}
	S = mat.NewSymDense(nr, nil)
	for i := 0; i < nr; i++ {
		for j := i; j < nr; j++ {
			S.SetSym(i, j, 0.5*(A.At(i, j)+A.At(j, i)))
		}
	}
	return
}

// IsSymmetric checks A[i,j] == A[j,i] to within tol, relative to the largest entry.
func IsSymmetric(A mat.Matrix, tol float64) bool {
	var (
		nr, nc = A.Dims()
		scale  = mat.Norm(A, 1)
	)
	if nr != nc {
		return false
	}
	if scale == 0 {
		return true
	}
	for i := 0; i < nr; i++ {
		for j := i + 1; j < nr; j++ {
			if diff := A.At(i, j) - A.At(j, i); diff > tol*scale || -diff > tol*scale {
				return false
			}
		}
	}
	return true
}
