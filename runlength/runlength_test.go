package runlength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegamini(t *testing.T) {
	dv, folds, be := Degamini([]int{1, 2, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, dv)
	assert.Equal(t, []int{1, 2, 1}, folds)
	assert.Equal(t, [][2]int{{0, 0}, {1, 2}, {3, 3}}, be)

	dv, folds, be = Degamini([]int{})
	assert.Nil(t, dv)
	assert.Nil(t, folds)
	assert.Nil(t, be)
}

func TestGaminiRoundTrip(t *testing.T) {
	{
		big, err := Gamini([]int{1, 2, 3, 1, 4, 5}, []int{1, 2, 3, 2, 4, 2})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 2, 3, 3, 3, 1, 1, 4, 4, 4, 4, 5, 5}, big)
		dv, folds, _ := Degamini(big)
		assert.Equal(t, []int{1, 2, 3, 1, 4, 5}, dv)
		assert.Equal(t, []int{1, 2, 3, 2, 4, 2}, folds)
	}
	{
		v := []float64{0.5, -1, 2.25}
		big, err := Gamini(v, []int{3})
		require.NoError(t, err)
		assert.Len(t, big, 9)
		dv, folds, _ := Degamini(big)
		assert.Equal(t, v, dv)
		assert.Equal(t, []int{3, 3, 3}, folds)
	}
	{
		big, err := Gamini([]int{7, 8}, []int{0, -2})
		require.NoError(t, err)
		assert.Equal(t, []int{7, 8}, big)
	}
	_, err := Gamini([]int{1, 2, 3}, []int{1, 2})
	assert.Error(t, err)
}

func TestMatranges(t *testing.T) {
	r, err := Matranges([]int{1, 4, 1, 2, -1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 1, 2, -1, 0, 1, 2}, r)

	r, err = Matranges([]int{3, 2})
	require.NoError(t, err)
	assert.Empty(t, r)

	_, err = Matranges([]int{1, 2, 3})
	assert.Error(t, err)
}
