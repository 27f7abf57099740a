package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/core"
)

// Sentinel errors for the spectral step.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("spectral: graph is nil")

	// ErrEigenFailed is returned when the eigendecomposition does not converge.
	ErrEigenFailed = errors.New("spectral: eigendecomposition did not converge")

	// ErrComplexDominant is returned when the selected eigenpair of a
	// directed adjacency has a non-negligible imaginary component.
	ErrComplexDominant = errors.New("spectral: dominant eigenpair is not real")
)

// imagTolerance bounds the imaginary magnitude accepted as numerical noise
// when projecting a formally complex eigenpair onto the reals.
const imagTolerance = 1e-9

// DominantEigen returns the eigenvalue of largest real part of g's
// loop-free adjacency matrix and the matching eigenvector, sign-normalized
// so the majority sign is nonnegative. The vector has unit 2-norm (the
// gonum convention for both solvers). The empty graph yields (0, empty).
//
// Undirected graphs use the symmetric solver and always produce real
// pairs; directed graphs use the general solver and fail with
// ErrComplexDominant when the dominant pair is genuinely complex.
// ErrEigenFailed reports solver non-convergence. Both are hard failures.
//
// Time: O(N³). Memory: O(N²).
func DominantEigen(g *core.Graph) (float64, []float64, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}
	n := g.N()
	if n == 0 {
		return 0, []float64{}, nil
	}

	if g.Directed() {
		return dominantGeneral(g, n)
	}

	return dominantSymmetric(g, n)
}

// dominantSymmetric handles the undirected case via mat.EigenSym.
func dominantSymmetric(g *core.Graph, n int) (float64, []float64, error) {
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for _, j := range g.OutNeighbors(i) {
			if i <= j {
				a.SetSym(i, j, 1)
			}
		}
	}

	var es mat.EigenSym
	if !es.Factorize(a, true) {
		return 0, nil, fmt.Errorf("DominantEigen: symmetric %dx%d: %w", n, n, ErrEigenFailed)
	}

	values := es.Values(nil)
	best := 0
	for k := 1; k < n; k++ {
		if values[k] > values[best] { // strict: ties keep the smaller index
			best = k
		}
	}

	var vectors mat.Dense
	es.VectorsTo(&vectors)
	vector := make([]float64, n)
	for i := 0; i < n; i++ {
		vector[i] = vectors.At(i, best)
	}
	normalizeSign(vector)

	return values[best], vector, nil
}

// dominantGeneral handles the directed case via mat.Eigen, projecting the
// selected pair onto the reals under imagTolerance.
func dominantGeneral(g *core.Graph, n int) (float64, []float64, error) {
	a := g.AdjacencyMatrix()

	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenRight) {
		return 0, nil, fmt.Errorf("DominantEigen: general %dx%d: %w", n, n, ErrEigenFailed)
	}

	values := eig.Values(nil)
	best := 0
	for k := 1; k < n; k++ {
		if real(values[k]) > real(values[best]) { // strict: ties keep the smaller index
			best = k
		}
	}
	if math.Abs(imag(values[best])) > imagTolerance {
		return 0, nil, fmt.Errorf("DominantEigen: eigenvalue %v: %w", values[best], ErrComplexDominant)
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)
	vector := make([]float64, n)
	for i := 0; i < n; i++ {
		v := vectors.At(i, best)
		if math.Abs(imag(v)) > imagTolerance {
			return 0, nil, fmt.Errorf("DominantEigen: eigenvector entry %d = %v: %w",
				i, v, ErrComplexDominant)
		}
		vector[i] = real(v)
	}
	normalizeSign(vector)

	return real(values[best]), vector, nil
}

// normalizeSign negates v in place when negative entries outnumber
// positive ones, making the majority sign nonnegative. Zeros are neutral.
func normalizeSign(v []float64) {
	neg, pos := 0, 0
	for _, x := range v {
		switch {
		case x < 0:
			neg++
		case x > 0:
			pos++
		}
	}
	if neg > pos {
		for i := range v {
			v[i] = -v[i]
		}
	}
}
