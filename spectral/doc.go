// Package spectral computes the dominant eigenpair of a graph's dense
// adjacency matrix: the eigenvalue of largest real part and its
// eigenvector, used downstream as eigenvector centrality.
//
// The decomposition itself is delegated to gonum/mat — EigenSym for
// undirected (real symmetric) adjacency, Eigen for directed (general
// real) adjacency. This package layers the engine's conventions on top:
//
//   - Selection: largest real part; exact ties resolve to the smallest
//     index in the solver's output ordering.
//   - Sign: if the eigenvector carries more negative than positive
//     entries, the whole vector is negated, so the majority sign is
//     nonnegative (the Perron–Frobenius direction for undirected graphs,
//     applied heuristically for directed ones).
//   - Magnitude: whatever gonum returns — unit 2-norm columns for both
//     solvers. No further normalization is imposed; consumers comparing
//     magnitudes rely on this and the tests pin it.
//
// A dominant pair with a non-negligible imaginary part (possible for
// directed graphs) and solver non-convergence are both hard failures:
// spectral metrics cannot be safely approximated.
package spectral
