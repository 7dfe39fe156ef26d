package slepian

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/fftconv"
	"github.com/notargets/goslepian/utils"
)

// SolveClassical returns the first k discrete prolate spheroidal sequences of
// length N for time-bandwidth product NW, so W = NW/N. The tapers are unit
// norm eigenvectors of the tridiagonal matrix that commutes with the sinc
// kernel. Even tapers have a positive sum, odd tapers a positive first
// moment. Concentrations are computed from the taper autocorrelations.
func SolveClassical(N int, NW float64, k int, req Request) (ts *TaperSet, err error) {
	if N < 2 {
		err = invalidf("need at least 2 samples, have %d", N)
		return
	}
	W := NW / float64(N)
	if !(W > 0 && W < 0.5) {
		err = invalidf("NW = %g gives half bandwidth %g outside (0, 1/2)", NW, W)
		return
	}
	if k < 1 || k > N {
		err = invalidf("requested %d tapers from %d samples", k, N)
		return
	}
	// Dsteqr accumulates every eigenvector, so z holds N*N values whatever k
	// is. Lengths in the tens of thousands need gigabytes here.
	var (
		d    = make([]float64, N)
		e    = make([]float64, N-1)
		z    = make([]float64, N*N)
		work = make([]float64, max(1, 2*N-2))
		cw   = math.Cos(2 * math.Pi * W)
		impl gonum.Implementation
	)
	for i := 0; i < N; i++ {
		c := 0.5 * float64(N-1-2*i)
		d[i] = c * c * cw
		if i < N-1 {
			e[i] = 0.5 * float64((i+1)*(N-i-1))
		}
	}
	if ok := impl.Dsteqr(lapack.EVTridiag, N, d, e, z, N, work); !ok {
		err = degeneratef("tridiagonal eigensolver did not converge for N = %d, NW = %g", N, NW)
		return
	}
	// Eigenvalues ascend, the best concentrated tapers are the last columns
	var (
		tapers = utils.NewMatrix(N, N, z).SliceCols(utils.NewRange(N-k, N-1).Reverse())
		col    = make([]float64, N)
	)
	for j := 0; j < k; j++ {
		mat.Col(col, j, tapers.M)
		normalizeSign(col, j)
		tapers.SetCol(j, col)
	}
	ts = &TaperSet{}
	if req.WantEigenvalues {
		if ts.Eigenvalues, err = ClassicalConcentrations(tapers.M, W); err != nil {
			return nil, err
		}
	}
	if req.WantTapers {
		ts.Tapers = tapers.M
	}
	return
}

// normalizeSign flips v so that an even order taper has a positive sum and an
// odd order taper a positive first moment about the centre.
func normalizeSign(v []float64, order int) {
	var (
		n = len(v)
		s float64
	)
	if order%2 == 0 {
		s = floats.Sum(v)
	} else {
		for t, val := range v {
			s += float64(n-1-2*t) * val
		}
	}
	if s < 0 {
		floats.Scale(-1, v)
	}
}

// ClassicalConcentrations returns the fraction of energy inside [-W, W] for
// each unit spaced taper column, from its autocorrelation r:
//
//	lambda = 2W r[0] + 2 sum_{tau>0} r[tau] sin(2 pi W tau)/(pi tau)
//
// Columns are normalized before use.
func ClassicalConcentrations(tapers mat.Matrix, W float64) (lambda []float64, err error) {
	if !(W > 0 && W < 0.5) {
		err = invalidf("half bandwidth %g outside (0, 1/2)", W)
		return
	}
	var (
		N, k = tapers.Dims()
		plan *fftconv.Plan
		s    = make([]float64, N)
	)
	if N < 1 {
		err = invalidf("empty taper matrix")
		return
	}
	if plan, err = fftconv.GetPlan(fftconv.ConvLength(N, N)); err != nil {
		return
	}
	for tau := 1; tau < N; tau++ {
		s[tau] = 2 * sinc(float64(tau), W)
	}
	lambda = make([]float64, k)
	for j := 0; j < k; j++ {
		var r []float64
		if r, err = fftconv.AutoCorr(plan, mat.Col(nil, j, tapers)); err != nil {
			return nil, err
		}
		if r[0] == 0 {
			err = degeneratef("taper %d is identically zero", j)
			return nil, err
		}
		lambda[j] = 2*W + floats.Dot(r[1:], s[1:])/r[0]
	}
	return
}
