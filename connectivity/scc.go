package connectivity

import "github.com/katalvlaran/graphstat/core"

// sccFrame is one explicit DFS stack frame for the iterative Tarjan pass.
type sccFrame struct {
	v    int
	nbrs []int
	pos  int
}

// StrongComponents labels the strongly connected components of g using an
// iterative Tarjan traversal (explicit frame stack, no recursion, so deep
// graphs cannot overflow the goroutine stack). For undirected graphs
// strong and weak components coincide; the result does too.
// Returns one label per vertex plus the component count, relabeled to the
// deterministic smallest-member ordering.
//
// Time: O(N+E). Memory: O(N).
func StrongComponents(g *core.Graph) ([]int, int) {
	n := g.N()
	labels := make([]int, n)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := 0; i < n; i++ {
		labels[i] = unlabeled
		index[i] = unlabeled
	}

	var (
		next    int        // next DFS index to assign
		count   int        // components found so far
		tarjan  []int      // Tarjan's vertex stack
		callers []sccFrame // explicit DFS call stack
	)

	visit := func(v int) {
		index[v] = next
		low[v] = next
		next++
		tarjan = append(tarjan, v)
		onStack[v] = true
		callers = append(callers, sccFrame{v: v, nbrs: g.OutNeighbors(v)})
	}

	for root := 0; root < n; root++ {
		if index[root] != unlabeled {
			continue
		}
		visit(root)
		for len(callers) > 0 {
			f := &callers[len(callers)-1]
			if f.pos < len(f.nbrs) {
				w := f.nbrs[f.pos]
				f.pos++
				if index[w] == unlabeled {
					visit(w)
				} else if onStack[w] {
					if index[w] < low[f.v] {
						low[f.v] = index[w]
					}
				}

				continue
			}

			// Neighbors exhausted: close the frame.
			v := f.v
			callers = callers[:len(callers)-1]
			if low[v] == index[v] {
				// v roots a component; pop it off the Tarjan stack.
				for {
					w := tarjan[len(tarjan)-1]
					tarjan = tarjan[:len(tarjan)-1]
					onStack[w] = false
					labels[w] = count
					if w == v {
						break
					}
				}
				count++
			}
			if len(callers) > 0 {
				parent := &callers[len(callers)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
		}
	}

	relabel(labels, count)

	return labels, count
}

// relabel renumbers component labels in place so that components appear in
// ascending order of their smallest vertex index.
func relabel(labels []int, count int) {
	remap := make([]int, count)
	for i := range remap {
		remap[i] = unlabeled
	}
	next := 0
	for _, l := range labels {
		if remap[l] == unlabeled {
			remap[l] = next
			next++
		}
	}
	for i, l := range labels {
		labels[i] = remap[l]
	}
}
