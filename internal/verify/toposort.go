package verify

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// CycleError reports the nodes that could not be ordered.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return "cycle detected among " + strings.Join(e.Nodes, ", ")
}

// topoSort returns node indices in execution order.
//
// Nodes are by index in names. depsFn(i) yields indices that must be
// executed before i.
//
// The result is deterministic: when multiple nodes are available, the
// smallest index goes first. If a cycle exists, a *CycleError naming the
// unordered nodes is returned.
func topoSort(names []string, depsFn func(i int) []int) ([]int, error) {
	n := len(names)
	if n == 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var stuck []string

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, names[i])
			}
		}

		return nil, &CycleError{Nodes: stuck}
	}

	return order, nil
}
