package slepian

import (
	"gonum.org/v1/gonum/mat"
)

// Request selects what a solve returns. The zero value asks for nothing
// beyond validation; DefaultRequest asks for tapers and eigenvalues.
type Request struct {
	WantTapers      bool
	WantEigenvalues bool
	// Orthogonalize returns the whitened eigenvectors, orthonormal in the
	// Euclidean inner product, instead of the G-orthonormal tapers.
	Orthogonalize bool
	// WantFactor returns the upper Cholesky factor R of G = R^T R.
	WantFactor bool
}

// DefaultRequest asks for the tapers and their concentrations.
var DefaultRequest = Request{WantTapers: true, WantEigenvalues: true}

// TaperSet holds the k best concentrated eigenpairs in decreasing order of
// concentration. Fields not asked for in the Request are nil.
type TaperSet struct {
	Eigenvalues []float64
	Tapers      *mat.Dense // n x k, one taper per column
	Factor      *mat.TriDense
	Orthogonal  bool
	// Set by the 2D solver
	Shannon    float64
	Degenerate bool
}

// Len is the number of eigenpairs held.
func (ts *TaperSet) Len() int {
	switch {
	case ts.Eigenvalues != nil:
		return len(ts.Eigenvalues)
	case ts.Tapers != nil:
		_, k := ts.Tapers.Dims()
		return k
	}
	return 0
}

// Taper copies out column j of the taper matrix.
func (ts *TaperSet) Taper(j int) []float64 {
	if ts.Tapers == nil {
		return nil
	}
	return mat.Col(nil, j, ts.Tapers)
}
