// Package scheduler implements the Critical Path Method (CPM/PERT) over a
// set of tasks with positive durations and precedence dependencies.
//
// The computation is a pure batch: graph construction and validation, cycle
// detection, topological ordering, forward pass (earliest dates), backward
// pass (latest dates), then slack and critical-path extraction, strictly in
// that order. On any failure no derived values are produced at all; the
// input snapshot is never mutated. The engine performs no I/O and no
// logging; adapting errors to a surface is the caller's concern.
package scheduler

import (
	"sort"

	"github.com/mlefevre/pertcalc/internal/model"
)

// Compute schedules the given tasks and returns the per-task dates, slacks
// and critical path. Codes are matched after normalization (trimmed,
// upper-cased). Results are returned in a fresh structure keyed by
// normalized code; the same unmodified input always yields identical output.
func Compute(tasks []model.Task) (*model.ScheduleResult, error) {
	g, err := buildGraph(tasks)
	if err != nil {
		return nil, err
	}

	if cycle := g.detectCycle(); cycle != nil {
		return nil, &CycleError{Path: cycle}
	}

	order, err := g.topoSort()
	if err != nil {
		return nil, err
	}

	result := &model.ScheduleResult{
		Tasks: make(map[string]*model.TaskSchedule, len(order)),
		Order: order,
	}

	forwardPass(g, order, result)
	backwardPass(g, order, result)
	if err := computeSlack(g, order, result); err != nil {
		return nil, err
	}
	result.CriticalPath = criticalPath(result)

	return result, nil
}

// forwardPass computes the earliest dates. Topological order guarantees
// every dependency's earliest finish is known before it is read.
func forwardPass(g *graph, order []string, result *model.ScheduleResult) {
	for _, code := range order {
		es := 0
		for _, dep := range g.preds[code] {
			if ef := result.Tasks[dep].EarliestFinish; ef > es {
				es = ef
			}
		}
		result.Tasks[code] = &model.TaskSchedule{
			Code:           code,
			EarliestStart:  es,
			EarliestFinish: es + g.duration(code),
		}
		if result.Tasks[code].EarliestFinish > result.ProjectDuration {
			result.ProjectDuration = result.Tasks[code].EarliestFinish
		}
	}
}

// backwardPass computes the latest dates in reverse topological order.
// A sink task anchors to its own earliest finish, not to the overall
// project end: a chain that finishes early keeps its finish date rather
// than inheriting slack from the longer chains.
func backwardPass(g *graph, order []string, result *model.ScheduleResult) {
	for i := len(order) - 1; i >= 0; i-- {
		code := order[i]
		ts := result.Tasks[code]

		succs := g.succs[code]
		if len(succs) == 0 {
			ts.LatestFinish = ts.EarliestFinish
		} else {
			lf := result.Tasks[succs[0]].LatestStart
			for _, succ := range succs[1:] {
				if ls := result.Tasks[succ].LatestStart; ls < lf {
					lf = ls
				}
			}
			ts.LatestFinish = lf
		}
		ts.LatestStart = ts.LatestFinish - g.duration(code)
	}
}

// computeSlack fills in total slack, free slack and the critical flag.
// Negative total slack cannot happen for a validated acyclic graph, so it is
// reported as an engine fault rather than stored.
func computeSlack(g *graph, order []string, result *model.ScheduleResult) error {
	for _, code := range order {
		ts := result.Tasks[code]

		ts.TotalSlack = ts.LatestStart - ts.EarliestStart
		if ts.TotalSlack < 0 {
			return &ConsistencyError{Code: code, Slack: ts.TotalSlack}
		}

		if succs := g.succs[code]; len(succs) > 0 {
			free := result.Tasks[succs[0]].EarliestStart
			for _, succ := range succs[1:] {
				if es := result.Tasks[succ].EarliestStart; es < free {
					free = es
				}
			}
			ts.FreeSlack = free - ts.EarliestFinish
		} else {
			ts.FreeSlack = ts.TotalSlack
		}

		ts.Critical = ts.TotalSlack == 0
	}
	return nil
}

// criticalPath lists the zero-slack tasks ordered by earliest start, with
// code order as the tie-break. Parallel critical chains of equal length all
// contribute their tasks; the path is a set, not necessarily a single chain.
func criticalPath(result *model.ScheduleResult) []string {
	var critical []string
	for _, code := range result.Order {
		if result.Tasks[code].Critical {
			critical = append(critical, code)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool {
		a, b := result.Tasks[critical[i]], result.Tasks[critical[j]]
		if a.EarliestStart != b.EarliestStart {
			return a.EarliestStart < b.EarliestStart
		}
		return a.Code < b.Code
	})
	return critical
}
