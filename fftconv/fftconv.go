// Package fftconv performs FFT based linear convolution. Transform plans are
// explicit handles owned by the caller; nothing is cached between calls.
package fftconv

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Plan is a real FFT of a fixed length together with its scratch buffers.
// A Plan is not safe for concurrent use; give each goroutine its own.
type Plan struct {
	fft   *fourier.FFT
	n     int
	bufX  []float64
	bufY  []float64
	coefX []complex128
	coefY []complex128
}

// GetPlan returns a plan for transforms of length n.
func GetPlan(n int) (p *Plan, err error) {
	if n < 1 {
		err = fmt.Errorf("fft plan length must be positive, have %d", n)
		return
	}
	p = &Plan{
		fft:   fourier.NewFFT(n),
		n:     n,
		bufX:  make([]float64, n),
		bufY:  make([]float64, n),
		coefX: make([]complex128, n/2+1),
		coefY: make([]complex128, n/2+1),
	}
	return
}

func (p *Plan) Len() int { return p.n }

// ConvLength is the smallest plan length that holds the full linear
// convolution of sequences of length nx and ny.
func ConvLength(nx, ny int) int { return nx + ny - 1 }

// Conv returns the full linear convolution of x and y, of length
// len(x)+len(y)-1, using the plan p. p.Len() must be at least that long.
func Conv(p *Plan, x, y []float64) (z []float64, err error) {
	var (
		nz = ConvLength(len(x), len(y))
	)
	if len(x) == 0 || len(y) == 0 {
		err = fmt.Errorf("conv: empty input")
		return
	}
	if p.n < nz {
		err = fmt.Errorf("conv: plan length %d shorter than result length %d", p.n, nz)
		return
	}
	clear(p.bufX)
	clear(p.bufY)
	copy(p.bufX, x)
	copy(p.bufY, y)
	p.fft.Coefficients(p.coefX, p.bufX)
	p.fft.Coefficients(p.coefY, p.bufY)
	for i := range p.coefX {
		p.coefX[i] *= p.coefY[i]
	}
	seq := p.fft.Sequence(nil, p.coefX)
	// Sequence is unnormalized
	floats.Scale(1/float64(p.n), seq)
	z = seq[:nz]
	return
}

// AutoCorr returns the unnormalized autocorrelation r[tau] = sum_t v[t] v[t+tau]
// for tau = 0..len(v)-1. p.Len() must be at least 2*len(v)-1.
func AutoCorr(p *Plan, v []float64) (r []float64, err error) {
	var (
		n   = len(v)
		rev = make([]float64, n)
		z   []float64
	)
	copy(rev, v)
	floats.Reverse(rev)
	if z, err = Conv(p, v, rev); err != nil {
		return
	}
	r = make([]float64, n)
	copy(r, z[n-1:])
	return
}
