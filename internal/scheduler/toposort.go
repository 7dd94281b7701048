package scheduler

import "sort"

// topoSort orders the tasks with Kahn's algorithm. The frontier starts with
// every task that has no dependencies; emitting a task decrements the
// in-degree of its direct dependents, which join the frontier once their
// in-degree reaches zero. Ties within the frontier are broken by
// lexicographic code order, so the output is stable for a given input.
//
// A shortfall in the emitted count means a cycle survived earlier
// validation; this is an independent second line of defense and reports the
// tasks that could not be ordered.
func (g *graph) topoSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.codes))
	for _, code := range g.codes {
		inDegree[code] = len(g.preds[code])
	}

	var queue []string
	for _, code := range g.codes {
		if inDegree[code] == 0 {
			queue = append(queue, code)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.codes))
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		order = append(order, code)

		var ready []string
		for _, succ := range g.succs[code] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(g.codes) {
		var remaining []string
		for _, code := range g.codes {
			if inDegree[code] > 0 {
				remaining = append(remaining, code)
			}
		}
		return nil, &CycleError{Path: remaining}
	}

	return order, nil
}
