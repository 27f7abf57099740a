package connectivity

import "github.com/katalvlaran/graphstat/core"

// unlabeled marks a vertex not yet assigned to any component.
const unlabeled = -1

// Components labels the weak components of g: reachability is tested over
// the union of out- and in-neighborhoods, so direction is ignored.
// Returns one label per vertex plus the component count; labels follow
// the smallest-member ordering documented in the package comment.
//
// Time: O(N+E). Memory: O(N).
func Components(g *core.Graph) ([]int, int) {
	n := g.N()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unlabeled
	}

	count := 0
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if labels[start] != unlabeled {
			continue
		}
		// BFS to collect the component of start.
		labels[start] = count
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.OutNeighbors(u) {
				if labels[v] == unlabeled {
					labels[v] = count
					queue = append(queue, v)
				}
			}
			for _, v := range g.InNeighbors(u) {
				if labels[v] == unlabeled {
					labels[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}

	return labels, count
}

// IsConnected reports whether g is fully connected under the engine's
// convention: strongly connected when directed, one weak component when
// undirected. Graphs with at most one vertex are connected vacuously.
//
// Time: O(N+E).
func IsConnected(g *core.Graph) bool {
	if g.N() <= 1 {
		return true
	}
	if g.Directed() {
		_, count := StrongComponents(g)

		return count == 1
	}
	_, count := Components(g)

	return count == 1
}
