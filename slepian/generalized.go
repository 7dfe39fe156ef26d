package slepian

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goslepian/geometry2D"
	"github.com/notargets/goslepian/utils"
)

// maxWeightCondition bounds the condition number of G; beyond it the
// whitened problem loses all significant digits.
const maxWeightCondition = 1.e13

// SolveGeneralized solves K x = lambda G x for the k largest eigenvalues.
// G == nil is the identity. Otherwise G = R^T R is factored, the symmetric
// problem R^-T K R^-1 v = lambda v is solved densely and the tapers are
// recovered as u = R^-1 v, orthonormal in the G inner product. With
// req.Orthogonalize the v are returned instead.
func SolveGeneralized(K, G mat.Symmetric, k int, req Request) (ts *TaperSet, err error) {
	if K == nil {
		err = invalidf("nil kernel")
		return
	}
	n := K.SymmetricDim()
	if n < 1 {
		err = invalidf("empty kernel")
		return
	}
	if G != nil && G.SymmetricDim() != n {
		err = invalidf("kernel is %dx%d, weight matrix is %dx%d", n, n, G.SymmetricDim(), G.SymmetricDim())
		return
	}
	if k < 1 || k > n {
		err = invalidf("requested %d tapers from %d samples", k, n)
		return
	}
	if utils.IsNan(K) || (G != nil && utils.IsNan(G)) {
		err = invalidf("kernel or weight matrix holds NaN or Inf")
		return
	}
	if G != nil {
		if c := utils.ConditionNumber(G); c > maxWeightCondition {
			err = degeneratef("weight matrix condition number %.3g, check for duplicate samples", c)
			return
		}
	}
	var (
		C    mat.Symmetric = K
		Rinv *mat.TriDense
		R    *mat.TriDense
	)
	if G != nil {
		var chol mat.Cholesky
		if ok := chol.Factorize(G); !ok {
			err = degeneratef("weight matrix is not positive definite, check for duplicate samples or too few quadrature nodes")
			return
		}
		R, Rinv = mat.NewTriDense(n, mat.Upper, nil), mat.NewTriDense(n, mat.Upper, nil)
		chol.UTo(R)
		if err = Rinv.InverseTri(R); err != nil {
			err = degeneratef("inverting the Cholesky factor: %v", err)
			return
		}
		var tmp, whitened mat.Dense
		tmp.Mul(Rinv.T(), K)
		whitened.Mul(&tmp, Rinv)
		C = utils.Symmetrize(&whitened)
	}
	var unwhiten mat.Matrix
	if Rinv != nil {
		unwhiten = Rinv
	}
	if ts, err = solveWhitened(C, k, req, unwhiten); err != nil {
		return
	}
	if req.WantFactor && R != nil {
		ts.Factor = R
	}
	return
}

// SolveDiagonal solves K x = lambda G x for a diagonal G, such as the
// quadrature weights of a region. The factor of G is diag(sqrt(w)), so the
// problem is whitened by scaling row and column i of K by 1/sqrt(w[i]) with
// no dense factorization.
func SolveDiagonal(K mat.Symmetric, G *sparse.DIA, k int, req Request) (ts *TaperSet, err error) {
	if K == nil || G == nil {
		err = invalidf("nil kernel or weight matrix")
		return
	}
	n := K.SymmetricDim()
	if n < 1 {
		err = invalidf("empty kernel")
		return
	}
	if nr, nc := G.Dims(); nr != n || nc != n {
		err = invalidf("kernel is %dx%d, weight matrix is %dx%d", n, n, nr, nc)
		return
	}
	if k < 1 || k > n {
		err = invalidf("requested %d tapers from %d samples", k, n)
		return
	}
	w := G.Diagonal()
	if utils.IsNan(K) || utils.IsNan(w) {
		err = invalidf("kernel or weight matrix holds NaN or Inf")
		return
	}
	wMin, wMax := floats.Min(w), floats.Max(w)
	if !(wMin > 0) {
		err = degeneratef("weight %g is not positive", wMin)
		return
	}
	if c := wMax / wMin; c > maxWeightCondition {
		err = degeneratef("weight matrix condition number %.3g", c)
		return
	}
	var (
		s = make([]float64, n)
		C = mat.NewSymDense(n, nil)
	)
	for i, val := range w {
		s[i] = 1 / math.Sqrt(val)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			C.SetSym(i, j, s[i]*K.At(i, j)*s[j])
		}
	}
	if ts, err = solveWhitened(C, k, req, sparse.NewDIA(n, n, s)); err != nil {
		return
	}
	if req.WantFactor {
		R := mat.NewTriDense(n, mat.Upper, nil)
		for i, val := range w {
			R.SetTri(i, i, math.Sqrt(val))
		}
		ts.Factor = R
	}
	return
}

// solveWhitened takes the k largest eigenpairs of the symmetric C. With
// unwhiten set the tapers are unwhiten * v, unless the request asks for the
// orthonormal eigenvectors themselves.
func solveWhitened(C mat.Symmetric, k int, req Request, unwhiten mat.Matrix) (ts *TaperSet, err error) {
	n := C.SymmetricDim()
	var eig mat.EigenSym
	if ok := eig.Factorize(C, true); !ok {
		err = degeneratef("symmetric eigensolver did not converge, n = %d", n)
		return
	}
	var (
		vals = eig.Values(nil)
		vecs = mat.NewDense(n, n, nil)
		idx  = utils.NewRange(0, n-1)
	)
	eig.VectorsTo(vecs)
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] > vals[idx[b]]
	})
	idx = idx[:k]

	ts = &TaperSet{Orthogonal: req.Orthogonalize || unwhiten == nil}
	if req.WantEigenvalues {
		ts.Eigenvalues = make([]float64, k)
		for j, i := range idx {
			ts.Eigenvalues[j] = vals[i]
		}
	}
	if req.WantTapers {
		V := utils.NewMatrixFrom(vecs).SliceCols(idx)
		U := V.M
		if unwhiten != nil && !req.Orthogonalize {
			U = mat.NewDense(n, k, nil)
			U.Mul(unwhiten, V.M)
		}
		col := make([]float64, n)
		for j := 0; j < k; j++ {
			mat.Col(col, j, U)
			normalizeSign(col, j)
			U.SetCol(j, col)
		}
		ts.Tapers = U
	}
	return
}

// SolveUnequal builds the kernel of the sample times for half bandwidth W
// around carrier f and the weight matrix at analysis half bandwidth beta,
// then solves the generalized problem.
func SolveUnequal(times []float64, W, f, beta float64, k int, req Request) (ts *TaperSet, err error) {
	var K, G *mat.SymDense
	if K, err = BuildUnequalKernel(times, W, f); err != nil {
		return
	}
	if G, err = BuildWeightMatrix(times, beta); err != nil {
		return
	}
	return SolveGeneralized(K, G, k, req)
}

// SolveMissingData finds the tapers of an integer grid with missing samples,
// times holding the sample indices that are present. The identity weight
// keeps the tapers orthonormal on the surviving samples.
func SolveMissingData(times []float64, W float64, k int, req Request) (ts *TaperSet, err error) {
	var K *mat.SymDense
	if K, err = BuildUnequalKernel(times, W, 0); err != nil {
		return
	}
	return SolveGeneralized(K, nil, k, req)
}

// Solve2D concentrates functions sampled on the quadrature nodes of a region
// into a disc of radius spectralRadius in the wavenumber plane. Eigenvalues
// are concentration ratios; they sum to the Shannon number over all nodes.
func Solve2D(q *geometry2D.QuadratureNodes, spectralRadius float64, k int, req Request) (ts *TaperSet, err error) {
	var kd *Kernel2D
	if kd, err = Build2DKernel(q, spectralRadius); err != nil {
		return
	}
	if ts, err = SolveDiagonal(kd.K, kd.G, k, req); err != nil {
		return
	}
	ts.Shannon, ts.Degenerate = kd.Shannon, kd.Degenerate
	return
}
