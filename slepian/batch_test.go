package slepian

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBatch(t *testing.T) {
	K, err := BuildUnequalKernel(jitteredTimes(24, 0.2), 0.1, 0)
	require.NoError(t, err)
	G, err := BuildWeightMatrix(jitteredTimes(24, 0.2), 0.5)
	require.NoError(t, err)
	jobs := []Job{
		{Name: "dpss-64", N: 64, NW: 4, Count: 7, Request: DefaultRequest},
		{Name: "dpss-32", N: 32, NW: 2, Count: 3, Request: DefaultRequest},
		{Name: "gpss", Kernel: K, Weight: G, Count: 4, Request: DefaultRequest},
		{Name: "gpss-orth", Kernel: K, Weight: G, Count: 4,
			Request: Request{WantEigenvalues: true, Orthogonalize: true}},
		{Name: "bad", N: 8, NW: 2, Count: 0, Request: DefaultRequest},
	}
	for _, degree := range []int{1, 3, 16} {
		results := SolveBatch(jobs, degree)
		require.Equal(t, len(jobs), len(results))
		for i, job := range jobs {
			assert.Equal(t, job.Name, results[i].Name)
			serial, err := job.solve()
			if err != nil {
				assert.True(t, errors.Is(results[i].Err, ErrInvalidInput))
				assert.Nil(t, results[i].Tapers)
				continue
			}
			require.NoError(t, results[i].Err)
			assert.Equal(t, serial.Eigenvalues, results[i].Tapers.Eigenvalues)
		}
	}
	assert.Empty(t, SolveBatch(nil, 4))
}
