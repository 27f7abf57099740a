// Package assortativity computes neighbor-degree statistics: the average
// degree of each vertex's neighbors, and the same quantity aggregated per
// degree value.
//
// The per-degree aggregation is incidence-weighted: every edge incident to
// a vertex of degree d contributes one sample (the neighbor's degree), so
// a neighbor is counted once per incidence, not once per vertex. This
// matches the degree-indicator-matrix formulation and is a documented
// policy choice — the unweighted one-sample-per-node alternative is
// deliberately not what ByDegree computes.
//
// Degrees with no incident edges produce no map entry: absence means
// undefined, consistent with the rest of the engine.
package assortativity
