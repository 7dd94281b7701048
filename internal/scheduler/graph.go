package scheduler

import (
	"fmt"
	"sort"

	"github.com/mlefevre/pertcalc/internal/model"
)

// graph is the validated adjacency view of one task collection. It is built
// once per scheduling run from the caller's immutable snapshot and never
// mutates the input tasks.
type graph struct {
	tasks map[string]*model.Task // normalized code -> task
	codes []string               // all normalized codes, sorted
	preds map[string][]string    // code -> direct dependencies
	succs map[string][]string    // code -> direct dependents (derived transpose)
}

// buildGraph indexes the tasks by normalized code, validates their shape and
// derives both adjacency directions. The successor relation is always the
// transpose of the declared dependencies, never supplied separately.
func buildGraph(tasks []model.Task) (*graph, error) {
	g := &graph{
		tasks: make(map[string]*model.Task, len(tasks)),
		preds: make(map[string][]string, len(tasks)),
		succs: make(map[string][]string, len(tasks)),
	}

	for i := range tasks {
		t := &tasks[i]
		code := model.NormalizeCode(t.Code)
		if code == "" {
			return nil, fmt.Errorf("task #%d: %w", i+1, ErrEmptyCode)
		}
		if _, exists := g.tasks[code]; exists {
			return nil, &DuplicateCodeError{Code: code}
		}
		if t.Duration <= 0 {
			return nil, &DurationError{Code: code, Duration: t.Duration}
		}
		g.tasks[code] = t
		g.codes = append(g.codes, code)
	}
	sort.Strings(g.codes)

	// Resolve dependency edges. Duplicate declarations of the same edge
	// collapse to one.
	edgeSeen := make(map[[2]string]bool)
	for _, code := range g.codes {
		for _, raw := range g.tasks[code].Dependencies {
			dep := model.NormalizeCode(raw)
			if _, ok := g.tasks[dep]; !ok {
				return nil, &UnresolvedDependencyError{Code: code, Dependency: dep}
			}
			key := [2]string{dep, code}
			if edgeSeen[key] {
				continue
			}
			edgeSeen[key] = true
			g.preds[code] = append(g.preds[code], dep)
			g.succs[dep] = append(g.succs[dep], code)
		}
	}

	// Sort adjacency lists for deterministic traversal and tie-breaking.
	for k := range g.preds {
		sort.Strings(g.preds[k])
	}
	for k := range g.succs {
		sort.Strings(g.succs[k])
	}

	return g, nil
}

// duration returns the duration of a task known to be in the graph.
func (g *graph) duration(code string) int {
	return g.tasks[code].Duration
}
