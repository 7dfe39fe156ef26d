package slepian

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// denseEigenvalues returns the k largest eigenvalues of a symmetric matrix
// by direct dense decomposition, for reference.
func denseEigenvalues(t *testing.T, K mat.Symmetric, k int) []float64 {
	var eig mat.EigenSym
	require.True(t, eig.Factorize(K, false))
	vals := eig.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals[:k]
}

func checkOrthonormal(t *testing.T, U mat.Matrix, G mat.Matrix, tol float64) {
	var (
		n, k = U.Dims()
		GU   = mat.NewDense(n, k, nil)
		P    = mat.NewDense(k, k, nil)
	)
	if G == nil {
		GU.Copy(U)
	} else {
		GU.Mul(G, U)
	}
	P.Mul(U.T(), GU)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			target := 0.
			if i == j {
				target = 1.
			}
			assert.InDeltaf(t, target, P.At(i, j), tol, "inner product (%d, %d)", i, j)
		}
	}
}

func TestSolveClassical(t *testing.T) {
	var (
		N, NW, k = 64, 4., 7
		W        = NW / float64(N)
	)
	ts, err := SolveClassical(N, NW, k, DefaultRequest)
	require.NoError(t, err)
	require.Equal(t, k, ts.Len())
	{ // Decreasing, inside (0, 1], first one essentially 1
		for i, lam := range ts.Eigenvalues {
			assert.Greater(t, lam, 0.)
			assert.LessOrEqual(t, lam, 1.)
			if i > 0 {
				assert.Less(t, lam, ts.Eigenvalues[i-1])
			}
		}
		assert.Greater(t, ts.Eigenvalues[0], 0.999999)
	}
	{ // Reference concentrations from a Jacobi decomposition of the sinc kernel
		ref := []float64{
			0.9999999997458627, 0.9999999753972293, 0.9999988951897373, 0.9999696576800712,
			0.9994365497072170, 0.9927101159322205, 0.9374686049264725,
		}
		for i := range ref {
			assert.InDelta(t, 0., (ts.Eigenvalues[i]-ref[i])/ref[i], 1.e-6)
		}
	}
	K, err := BuildEqualKernel(N, W)
	require.NoError(t, err)
	{ // Matches the direct decomposition of the sinc kernel
		ref := denseEigenvalues(t, K, k)
		for i := range ref {
			assert.InDelta(t, 0., (ts.Eigenvalues[i]-ref[i])/ref[i], 1.e-6)
		}
	}
	{ // Autocorrelation concentrations equal the Rayleigh quotients
		rq, err := Concentrations(K, nil, ts.Tapers)
		require.NoError(t, err)
		for i := range rq {
			assert.InDelta(t, rq[i], ts.Eigenvalues[i], 1.e-10)
		}
	}
	{ // Tapers are orthonormal eigenvectors of the sinc kernel
		checkOrthonormal(t, ts.Tapers, nil, 1.e-10)
		for j := 0; j < k; j++ {
			var Kv mat.VecDense
			v := mat.NewVecDense(N, ts.Taper(j))
			Kv.MulVec(K, v)
			Kv.AddScaledVec(&Kv, -ts.Eigenvalues[j], v)
			assert.Less(t, Kv.Norm(2), 1.e-8)
		}
	}
	{ // Sign convention
		assert.Greater(t, floats.Sum(ts.Taper(0)), 0.)
		var moment float64
		for i, val := range ts.Taper(1) {
			moment += float64(N-1-2*i) * val
		}
		assert.Greater(t, moment, 0.)
	}
	{ // Concentration grows with the time-bandwidth product
		narrow, err := SolveClassical(N, 2, 1, Request{WantEigenvalues: true})
		require.NoError(t, err)
		assert.Nil(t, narrow.Tapers)
		assert.Less(t, narrow.Eigenvalues[0], ts.Eigenvalues[0])
	}
	{
		only, err := SolveClassical(N, NW, k, Request{WantTapers: true})
		require.NoError(t, err)
		assert.Nil(t, only.Eigenvalues)
		assert.Equal(t, ts.Tapers, only.Tapers)
	}
}

func TestSolveClassicalErrors(t *testing.T) {
	for _, tc := range []struct {
		N     int
		NW    float64
		k     int
		label string
	}{
		{1, 0.25, 1, "one sample"},
		{16, 0, 1, "zero bandwidth"},
		{16, 8, 1, "bandwidth at Nyquist"},
		{16, 2, 0, "no tapers"},
		{16, 2, 17, "more tapers than samples"},
	} {
		_, err := SolveClassical(tc.N, tc.NW, tc.k, DefaultRequest)
		assert.Truef(t, errors.Is(err, ErrInvalidInput), tc.label)
	}
	_, err := BuildEqualKernel(8, 0.5)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = ClassicalConcentrations(mat.NewDense(4, 1, []float64{1, 1, 1, 1}), math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
