// Package quadrature builds the Gauss type base rules on [-1, 1] that the
// geometry pipeline rescales into each scan-line interval.
package quadrature

import (
	"fmt"
	"math"

	"github.com/notargets/goslepian/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rule is a set of nodes X and weights W on the reference interval [-1, 1].
type Rule struct {
	X, W []float64
}

func (r Rule) Len() int { return len(r.X) }

// Rescale maps the rule onto [a, b], scaling the weights by the Jacobian.
func (r Rule) Rescale(a, b float64) (R Rule) {
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (b + a)
	)
	R = Rule{X: make([]float64, len(r.X)), W: make([]float64, len(r.W))}
	for i := range r.X {
		R.X[i] = mid + half*r.X[i]
		R.W[i] = half * r.W[i]
	}
	return
}

// GaussLegendre returns the n point Gauss-Legendre rule.
func GaussLegendre(n int) (R Rule, err error) {
	if n < 1 {
		err = fmt.Errorf("gauss-legendre rule needs at least one node, have %d", n)
		return
	}
	return JacobiGQ(0, 0, n-1)
}

// JacobiGQ computes the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta using the Golub-Welsch eigenvalue formulation.
func JacobiGQ(alpha, beta float64, N int) (R Rule, err error) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return Rule{X: x, W: w}, nil
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-1/2*(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		err = fmt.Errorf("jacobi gauss quadrature: eigenvalue decomposition failed")
		return
	}
	x = eig.Values(nil)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	w = make([]float64, len(x))
	copy(w, VVr.RawRowView(0))
	for i, val := range w {
		w[i] = val * val
	}
	floats.Scale(gamma0(alpha, beta), w)
	return Rule{X: x, W: w}, nil
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
