package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestGaussLegendre(t *testing.T) {
	{
		R, err := GaussLegendre(1)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, R.X)
		assert.Equal(t, []float64{2}, R.W)
	}
	{
		R, err := GaussLegendre(2)
		require.NoError(t, err)
		assert.InDelta(t, -1/math.Sqrt(3), R.X[0], 1e-14)
		assert.InDelta(t, 1/math.Sqrt(3), R.X[1], 1e-14)
		assert.InDelta(t, 1, R.W[0], 1e-14)
		assert.InDelta(t, 1, R.W[1], 1e-14)
	}
	{
		// n points integrate polynomials of degree 2n-1 exactly
		n := 8
		R, err := GaussLegendre(n)
		require.NoError(t, err)
		assert.InDelta(t, 2, floats.Sum(R.W), 1e-13)
		for deg := 0; deg <= 2*n-1; deg++ {
			var sum float64
			for i, x := range R.X {
				sum += R.W[i] * math.Pow(x, float64(deg))
			}
			exact := 0.
			if deg%2 == 0 {
				exact = 2 / float64(deg+1)
			}
			assert.InDelta(t, exact, sum, 1e-13, "degree %d", deg)
		}
		for i := 1; i < n; i++ {
			assert.Greater(t, R.X[i], R.X[i-1])
		}
	}
	_, err := GaussLegendre(0)
	assert.Error(t, err)
}

func TestRescale(t *testing.T) {
	R, err := GaussLegendre(5)
	require.NoError(t, err)
	S := R.Rescale(2, 6)
	assert.InDelta(t, 4, floats.Sum(S.W), 1e-13)
	var sum float64
	for i, x := range S.X {
		sum += S.W[i] * x * x
	}
	assert.InDelta(t, (216.-8.)/3., sum, 1e-11)
}
