// Package apsp computes all-pairs shortest-path distances over an
// unweighted core.Graph, plus the scalar and histogram statistics derived
// from the distance matrix (diameter, average path length, distance
// distribution).
//
// Each source vertex is an independent BFS writing into its own row of the
// output matrix, so the fan-out parallelizes without locks; WithWorkers
// bounds the number of concurrent sources. Unreachable pairs are marked
// with +Inf (the Unreachable sentinel), and distances[i][i] is always 0,
// self-loops notwithstanding.
package apsp
