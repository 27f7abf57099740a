// Package centrality derives degree and closeness centrality from
// quantities other packages already computed: degrees from the core graph,
// closeness from the apsp distance matrix.
//
// Conventions (shared with the metrics orchestrator):
//   - Degree centrality is degree/(N−1); for N ≤ 1 the divisor has no
//     meaning and every value is 0.
//   - Closeness is (N−1)/Σ_j distances[i][j]; a row containing an
//     unreachable pair sums to +Inf and yields closeness 0, by convention
//     rather than error.
package centrality
