package scheduler

// Node colors for the depth-first traversal: white = unvisited, gray = on the
// current path, black = fully explored.
const (
	white = iota
	gray
	black
)

// detectCycle certifies the dependency graph is acyclic before any date is
// computed. It runs a depth-first traversal from every unvisited node using
// an explicit work stack (a frame carries the node and its next-neighbor
// index), so graph size is not bounded by goroutine stack depth. Hitting a
// gray node means the current path loops back; the cycle is reconstructed
// from the parent links and returned in forward order. Returns nil when the
// graph is a DAG.
func (g *graph) detectCycle() []string {
	color := make(map[string]int, len(g.codes))
	parent := make(map[string]string, len(g.codes))

	type frame struct {
		code string
		next int // index into succs[code] of the next edge to follow
	}

	for _, start := range g.codes {
		if color[start] != white {
			continue
		}
		color[start] = gray
		stack := []frame{{code: start}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			succs := g.succs[top.code]

			if top.next >= len(succs) {
				color[top.code] = black
				stack = stack[:len(stack)-1]
				continue
			}

			next := succs[top.next]
			top.next++

			switch color[next] {
			case white:
				color[next] = gray
				parent[next] = top.code
				stack = append(stack, frame{code: next})
			case gray:
				// Walk the parent chain back to the loop entry, then
				// reverse so the path reads in dependency order.
				cycle := []string{next}
				for cur := top.code; cur != next; cur = parent[cur] {
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
		}
	}
	return nil
}
