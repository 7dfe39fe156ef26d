package slepian

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func jitteredTimes(n int, amp float64) (times []float64) {
	times = make([]float64, n)
	for i := range times {
		times[i] = float64(i) + amp*math.Sin(float64(i))
	}
	return
}

func TestKernels(t *testing.T) {
	times := floats.Span(make([]float64, 16), 0, 15)
	{ // Integer times reproduce the equal-interval kernel
		Ke, err := BuildEqualKernel(16, 0.1)
		require.NoError(t, err)
		Ku, err := BuildUnequalKernel(times, 0.1, 0)
		require.NoError(t, err)
		assert.True(t, mat.Equal(Ke, Ku))
	}
	{ // At the Nyquist half bandwidth the weight matrix is the identity
		G, err := BuildWeightMatrix(times, 0.5)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(G, identity(16), 1.e-14))
	}
	{ // Band-pass modulation keeps the diagonal
		Kb, err := BuildUnequalKernel(times, 0.05, 0.2)
		require.NoError(t, err)
		assert.Equal(t, 0.1, Kb.At(3, 3))
		assert.InDelta(t, sinc(2, 0.05)*math.Cos(2*math.Pi*0.2*2), Kb.At(0, 2), 1.e-15)
	}
	{
		_, err := BuildUnequalKernel([]float64{1, 1, 1}, 0.1, 0)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = BuildUnequalKernel([]float64{0}, 0.1, 0)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = BuildUnequalKernel(times, 0.1, -1)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = BuildWeightMatrix(times, 0)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = BuildUnequalKernel([]float64{0, math.Inf(1)}, 0.1, 0)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func identity(n int) *mat.DiagDense {
	d := make([]float64, n)
	floats.AddConst(1, d)
	return mat.NewDiagDense(n, d)
}

func TestUnequalReducesToClassical(t *testing.T) {
	var (
		N, NW, k = 32, 2., 4
		times    = floats.Span(make([]float64, N), 0, float64(N-1))
	)
	classical, err := SolveClassical(N, NW, k, DefaultRequest)
	require.NoError(t, err)
	unequal, err := SolveUnequal(times, NW/float64(N), 0, 0.5, k, DefaultRequest)
	require.NoError(t, err)
	for j := 0; j < k; j++ {
		assert.InDelta(t, 0., (unequal.Eigenvalues[j]-classical.Eigenvalues[j])/classical.Eigenvalues[j], 1.e-8)
		assert.InDeltaSlice(t, classical.Taper(j), unequal.Taper(j), 1.e-6)
	}
}

func TestSolveGeneralized(t *testing.T) {
	var (
		times = jitteredTimes(40, 0.3)
		W, k  = 0.1, 5
	)
	K, err := BuildUnequalKernel(times, W, 0)
	require.NoError(t, err)
	G, err := BuildWeightMatrix(times, 0.5)
	require.NoError(t, err)
	req := DefaultRequest
	req.WantFactor = true
	ts, err := SolveGeneralized(K, G, k, req)
	require.NoError(t, err)
	assert.False(t, ts.Orthogonal)
	{ // G-orthonormal tapers, decreasing eigenvalues equal to the Rayleigh quotients
		checkOrthonormal(t, ts.Tapers, G, 1.e-8)
		rq, err := Concentrations(K, G, ts.Tapers)
		require.NoError(t, err)
		for j := 0; j < k; j++ {
			if j > 0 {
				assert.LessOrEqual(t, ts.Eigenvalues[j], ts.Eigenvalues[j-1])
			}
			assert.InDelta(t, ts.Eigenvalues[j], rq[j], 1.e-10)
		}
	}
	{ // Factor reproduces G
		require.NotNil(t, ts.Factor)
		var RtR mat.Dense
		RtR.Mul(ts.Factor.T(), ts.Factor)
		assert.True(t, mat.EqualApprox(&RtR, G, 1.e-12))
	}
	{ // Orthogonalized variant is Euclidean orthonormal, same spectrum
		orth, err := SolveGeneralized(K, G, k, Request{WantTapers: true, WantEigenvalues: true, Orthogonalize: true})
		require.NoError(t, err)
		assert.True(t, orth.Orthogonal)
		assert.Nil(t, orth.Factor)
		checkOrthonormal(t, orth.Tapers, nil, 1.e-10)
		assert.InDeltaSlice(t, ts.Eigenvalues, orth.Eigenvalues, 1.e-14)
	}
	{ // Band-pass tapers
		bp, err := SolveUnequal(times, 0.05, 0.25, 0.5, 3, DefaultRequest)
		require.NoError(t, err)
		checkOrthonormal(t, bp.Tapers, G, 1.e-8)
	}
}

func TestSolveGeneralizedErrors(t *testing.T) {
	K, err := BuildEqualKernel(4, 0.2)
	require.NoError(t, err)
	{ // Indefinite weight matrix
		G := mat.NewSymDense(4, []float64{
			1, 0, 0, 0,
			0, -1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		})
		_, err = SolveGeneralized(K, G, 2, DefaultRequest)
		assert.True(t, errors.Is(err, ErrNumericalDegeneracy))
		assert.False(t, errors.Is(err, ErrInvalidInput))
	}
	{ // Duplicate sample times make the weight matrix singular
		times := []float64{0, 1, 1, 2, 3}
		_, err = SolveUnequal(times, 0.2, 0, 0.5, 2, DefaultRequest)
		assert.True(t, errors.Is(err, ErrNumericalDegeneracy))
	}
	{
		bad := mat.NewSymDense(4, nil)
		bad.CopySym(K)
		bad.SetSym(1, 2, math.NaN())
		_, err = SolveGeneralized(bad, nil, 2, DefaultRequest)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveGeneralized(K, nil, 5, DefaultRequest)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveGeneralized(K, mat.NewSymDense(3, nil), 2, DefaultRequest)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		_, err = SolveGeneralized(nil, nil, 1, DefaultRequest)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestSolveMissingData(t *testing.T) {
	var times []float64
	for i := 0; i < 32; i++ {
		if i < 10 || i > 13 {
			times = append(times, float64(i))
		}
	}
	full, err := SolveClassical(32, 3.2, 3, DefaultRequest)
	require.NoError(t, err)
	md, err := SolveMissingData(times, 0.1, 3, DefaultRequest)
	require.NoError(t, err)
	assert.True(t, md.Orthogonal)
	checkOrthonormal(t, md.Tapers, nil, 1.e-10)
	r, c := md.Tapers.Dims()
	assert.Equal(t, len(times), r)
	assert.Equal(t, 3, c)
	for j := 0; j < 3; j++ {
		assert.Less(t, md.Eigenvalues[j], full.Eigenvalues[j]+1.e-12)
	}
}
