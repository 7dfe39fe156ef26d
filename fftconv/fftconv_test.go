package fftconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directConv(x, y []float64) (z []float64) {
	z = make([]float64, len(x)+len(y)-1)
	for i, xv := range x {
		for j, yv := range y {
			z[i+j] += xv * yv
		}
	}
	return
}

func TestConv(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{0.5, -1, 2, 0}
	p, err := GetPlan(ConvLength(len(x), len(y)))
	require.NoError(t, err)
	z, err := Conv(p, x, y)
	require.NoError(t, err)
	zd := directConv(x, y)
	require.Len(t, z, len(zd))
	for i := range zd {
		assert.InDelta(t, zd[i], z[i], 1e-12)
	}
	// A longer plan gives the same answer
	p2, err := GetPlan(16)
	require.NoError(t, err)
	z2, err := Conv(p2, x, y)
	require.NoError(t, err)
	for i := range zd {
		assert.InDelta(t, zd[i], z2[i], 1e-12)
	}
	// Plans are reusable
	z3, err := Conv(p2, y, x)
	require.NoError(t, err)
	for i := range zd {
		assert.InDelta(t, zd[i], z3[i], 1e-12)
	}
	short, err := GetPlan(4)
	require.NoError(t, err)
	_, err = Conv(short, x, y)
	assert.Error(t, err)
	_, err = GetPlan(0)
	assert.Error(t, err)
}

func TestAutoCorr(t *testing.T) {
	v := []float64{1, -2, 3}
	p, err := GetPlan(5)
	require.NoError(t, err)
	r, err := AutoCorr(p, v)
	require.NoError(t, err)
	assert.InDelta(t, 14, r[0], 1e-12)
	assert.InDelta(t, -8, r[1], 1e-12)
	assert.InDelta(t, 3, r[2], 1e-12)
}
