package slepian

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/geometry2D"
)

// sinc is the band limited kernel sin(2 pi W dt)/(pi dt), 2W at dt == 0.
func sinc(dt, W float64) float64 {
	if dt == 0 {
		return 2 * W
	}
	return math.Sin(2*math.Pi*W*dt) / (math.Pi * dt)
}

// BuildEqualKernel returns the N x N sinc kernel of the unit spaced grid for
// half bandwidth W, 0 < W < 1/2.
func BuildEqualKernel(N int, W float64) (K *mat.SymDense, err error) {
	if N < 2 {
		err = invalidf("need at least 2 samples, have %d", N)
		return
	}
	if !(W > 0 && W < 0.5) {
		err = invalidf("half bandwidth %g outside (0, 1/2)", W)
		return
	}
	K = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		for j := i; j < N; j++ {
			K.SetSym(i, j, sinc(float64(i-j), W))
		}
	}
	return
}

// BuildUnequalKernel returns the sinc kernel at the true time differences.
// A carrier f > 0 modulates it by cos(2 pi f dt), moving the band to
// [f-W, f+W]; f == 0 is the low-pass kernel.
func BuildUnequalKernel(times []float64, W, f float64) (K *mat.SymDense, err error) {
	if err = checkTimes(times); err != nil {
		return
	}
	if !(W > 0) {
		err = invalidf("half bandwidth %g must be positive", W)
		return
	}
	if f < 0 || math.IsNaN(f) {
		err = invalidf("carrier frequency %g must be non-negative", f)
		return
	}
	n := len(times)
	K = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dt := times[i] - times[j]
			val := sinc(dt, W)
			if f != 0 {
				val *= math.Cos(2 * math.Pi * f * dt)
			}
			K.SetSym(i, j, val)
		}
	}
	return
}

// BuildWeightMatrix returns the Gram matrix of the sampling, the sinc kernel
// at the analysis half bandwidth beta. Integer times with beta = 1/2 give the
// identity.
func BuildWeightMatrix(times []float64, beta float64) (G *mat.SymDense, err error) {
	if err = checkTimes(times); err != nil {
		return
	}
	if !(beta > 0) {
		err = invalidf("analysis half bandwidth %g must be positive", beta)
		return
	}
	n := len(times)
	G = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			G.SetSym(i, j, sinc(times[i]-times[j], beta))
		}
	}
	return
}

func checkTimes(times []float64) error {
	if len(times) < 2 {
		return invalidf("need at least 2 sample times, have %d", len(times))
	}
	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)
	for _, t := range sorted {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return invalidf("sample time %g is not finite", t)
		}
	}
	if sorted[0] == sorted[len(sorted)-1] {
		return invalidf("fewer than 2 distinct sample times")
	}
	return nil
}

// Kernel2D is the discretized concentration problem of a 2D region for a
// disc of radius SpectralRadius in the wavenumber plane.
type Kernel2D struct {
	K              *mat.SymDense
	G              *sparse.DIA // quadrature weights
	SpectralRadius float64
	Area           float64
	// Shannon is the expected number of well concentrated functions,
	// SpectralRadius^2 Area / (4 pi).
	Shannon float64
	// Degenerate is set when there are too few nodes to resolve the
	// requested bandwidth; eigenvalues should be inspected before use.
	Degenerate bool
}

// discKernel is the inverse transform of the indicator of a disc of radius
// ks: ks J1(ks r) / (2 pi r), tending to ks^2 / (4 pi) at r = 0.
func discKernel(r, ks float64) float64 {
	if r == 0 {
		return ks * ks / (4 * math.Pi)
	}
	return ks * math.J1(ks*r) / (2 * math.Pi * r)
}

// Build2DKernel assembles K[p,q] = w_p w_q D(|x_p - x_q|) and G = diag(w)
// over the quadrature nodes, so that K x = lambda G x is the Nystrom form of
// the concentration problem on the region.
func Build2DKernel(nodes *geometry2D.QuadratureNodes, spectralRadius float64) (kd *Kernel2D, err error) {
	if nodes == nil || nodes.Len() < 2 {
		err = invalidf("need at least 2 quadrature nodes")
		return
	}
	if !(spectralRadius > 0) || math.IsInf(spectralRadius, 0) {
		err = invalidf("spectral radius %g must be positive", spectralRadius)
		return
	}
	var (
		n = nodes.Len()
		w = make([]float64, n)
	)
	for i, val := range nodes.W {
		if !(val > 0) {
			err = invalidf("quadrature weight %d is %g, must be positive", i, val)
			return
		}
		w[i] = val
	}
	kd = &Kernel2D{
		K:              mat.NewSymDense(n, nil),
		G:              sparse.NewDIA(n, n, w),
		SpectralRadius: spectralRadius,
		Area:           nodes.Area(),
	}
	for p := 0; p < n; p++ {
		for q := p; q < n; q++ {
			r := math.Hypot(nodes.X[p]-nodes.X[q], nodes.Y[p]-nodes.Y[q])
			kd.K.SetSym(p, q, w[p]*w[q]*discKernel(r, spectralRadius))
		}
	}
	kd.Shannon = spectralRadius * spectralRadius * kd.Area / (4 * math.Pi)
	kd.Degenerate = n < 4*int(math.Ceil(kd.Shannon))+1
	return
}
