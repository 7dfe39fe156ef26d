package slepian

import (
	"errors"
	"math"
	"testing"

	"github.com/james-bowman/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/geometry2D"
)

func unitDiscNodes(t *testing.T, nRows, nPer int) *geometry2D.QuadratureNodes {
	disc := geometry2D.NewNgon(geometry2D.NewPoint(0, 0), 1, 128)
	q, err := geometry2D.QuadratureFromCurve(disc, nRows, nPer)
	require.NoError(t, err)
	return q
}

func TestBuild2DKernel(t *testing.T) {
	q := unitDiscNodes(t, 12, 12)
	kd, err := Build2DKernel(q, 4)
	require.NoError(t, err)
	n := q.Len()
	assert.InDelta(t, 4., kd.Shannon, 5.e-2)
	assert.False(t, kd.Degenerate)
	r, c := kd.G.Dims()
	assert.Equal(t, n, r)
	assert.Equal(t, n, c)
	for i := 0; i < n; i++ {
		assert.Equal(t, q.W[i], kd.G.At(i, i))
		assert.InDelta(t, q.W[i]*q.W[i]*4./math.Pi, kd.K.At(i, i), 1.e-15)
	}
	assert.Equal(t, 0., kd.G.At(0, 1))

	coarse, err := Build2DKernel(unitDiscNodes(t, 2, 2), 4)
	require.NoError(t, err)
	assert.True(t, coarse.Degenerate)

	_, err = Build2DKernel(nil, 4)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = Build2DKernel(q, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestSolve2D(t *testing.T) {
	var (
		q  = unitDiscNodes(t, 12, 12)
		n  = q.Len()
		ks = 4.
	)
	ts, err := Solve2D(q, ks, n, DefaultRequest)
	require.NoError(t, err)
	{ // The full spectrum sums to the Shannon number
		assert.InDelta(t, ts.Shannon, floats.Sum(ts.Eigenvalues), 1.e-9)
		assert.InDelta(t, ks*ks*q.Area()/(4*math.Pi), ts.Shannon, 1.e-12)
	}
	{ // The spectrum drops through 1/2 near the Shannon number
		var count int
		for _, lam := range ts.Eigenvalues {
			if lam > 0.5 {
				count++
			}
			assert.Less(t, lam, 1.01)
		}
		assert.GreaterOrEqual(t, count, 3)
		assert.LessOrEqual(t, count, 5)
		past := int(math.Ceil(ts.Shannon)) + 1
		assert.Less(t, ts.Eigenvalues[past], 0.5)
		assert.Greater(t, ts.Eigenvalues[0], 0.9)
	}
	{ // Orthonormal in the quadrature inner product
		best, err := Solve2D(q, ks, 4, DefaultRequest)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			ui := best.Taper(i)
			for j := 0; j <= i; j++ {
				uj := best.Taper(j)
				var dot float64
				for p := range ui {
					dot += q.W[p] * ui[p] * uj[p]
				}
				if i == j {
					assert.InDelta(t, 1., dot, 1.e-8)
				} else {
					assert.InDelta(t, 0., dot, 1.e-8)
				}
			}
		}
		assert.InDeltaSlice(t, ts.Eigenvalues[:4], best.Eigenvalues, 1.e-12)
	}
}

func TestSolveDiagonal(t *testing.T) {
	var (
		q  = unitDiscNodes(t, 8, 8)
		ks = 4.
	)
	kd, err := Build2DKernel(q, ks)
	require.NoError(t, err)
	n := q.Len()
	req := Request{WantTapers: true, WantEigenvalues: true, WantFactor: true}
	{ // Diagonal scaling agrees with the Cholesky path
		dense := mat.NewSymDense(n, nil)
		for i, w := range q.W {
			dense.SetSym(i, i, w)
		}
		fast, err := SolveDiagonal(kd.K, kd.G, 6, req)
		require.NoError(t, err)
		slow, err := SolveGeneralized(kd.K, dense, 6, req)
		require.NoError(t, err)
		assert.InDeltaSlice(t, slow.Eigenvalues, fast.Eigenvalues, 1.e-12)
		assert.InDeltaSlice(t, slow.Taper(0), fast.Taper(0), 1.e-8)
		assert.False(t, fast.Orthogonal)
		checkOrthonormal(t, fast.Tapers, dense, 1.e-10)
		for i, w := range q.W {
			assert.InDelta(t, math.Sqrt(w), fast.Factor.At(i, i), 1.e-15)
		}
		assert.Equal(t, 0., fast.Factor.At(0, 1))
	}
	{ // Orthogonalized output is the whitened eigenvectors
		ts, err := SolveDiagonal(kd.K, kd.G, 4, Request{WantTapers: true, Orthogonalize: true})
		require.NoError(t, err)
		assert.True(t, ts.Orthogonal)
		checkOrthonormal(t, ts.Tapers, nil, 1.e-10)
	}
	{
		w := append([]float64{}, q.W...)
		w[3] = 0
		_, err := SolveDiagonal(kd.K, sparse.NewDIA(n, n, w), 4, req)
		assert.True(t, errors.Is(err, ErrNumericalDegeneracy))
		w[3] = math.NaN()
		_, err = SolveDiagonal(kd.K, sparse.NewDIA(n, n, w), 4, req)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveDiagonal(kd.K, sparse.NewDIA(n-1, n-1, q.W[1:]), 4, req)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveDiagonal(kd.K, kd.G, n+1, req)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveDiagonal(nil, kd.G, 1, req)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
	{ // Bad quadrature arguments surface as invalid input through the solver
		_, err := geometry2D.QuadratureFromCurve(geometry2D.Curve{geometry2D.NewPoint(0, 0)}, 4, 4)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}
