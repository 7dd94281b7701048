// Package render turns a computed schedule into caller-facing output: a
// terminal table, a one-paragraph summary, or a JSON payload suitable for
// feeding a timeline diagram.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mlefevre/pertcalc/internal/model"
)

// Sprint functions for styled output, beadloom-style.
var (
	bold     = color.New(color.Bold).SprintFunc()
	critical = color.New(color.Bold, color.FgRed).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

// Options controls presentation details.
type Options struct {
	// Color enables ANSI styling of critical tasks.
	Color bool
}

func (o Options) markCritical(s string) string {
	if o.Color {
		return critical(s)
	}
	return s
}

func (o Options) heading(s string) string {
	if o.Color {
		return bold(s)
	}
	return s
}

func (o Options) faint(s string) string {
	if o.Color {
		return dim(s)
	}
	return s
}

// Table writes one row per task in topological order with all computed
// dates and slacks. Critical rows are flagged with an asterisk and, when
// color is on, highlighted.
func Table(w io.Writer, p *model.Project, r *model.ScheduleResult, opts Options) {
	fmt.Fprintf(w, "%s\n", title(opts, p, r))
	fmt.Fprintf(w, "%s\n", opts.heading(fmt.Sprintf("%-10s %-24s %5s %5s %5s %5s %5s %6s %5s",
		"CODE", "NAME", "DUR", "ES", "EF", "LS", "LF", "TOTAL", "FREE")))

	for _, code := range r.Order {
		ts := r.Tasks[code]
		name := ""
		dur := 0
		if t := p.TaskByCode(code); t != nil {
			name = t.Name
			dur = t.Duration
		}
		if len(name) > 24 {
			name = name[:21] + "..."
		}

		row := fmt.Sprintf("%-10s %-24s %5d %5d %5d %5d %5d %6d %5d",
			code, name, dur,
			ts.EarliestStart, ts.EarliestFinish,
			ts.LatestStart, ts.LatestFinish,
			ts.TotalSlack, ts.FreeSlack)
		if ts.Critical {
			fmt.Fprintf(w, "%s %s\n", opts.markCritical(row), opts.markCritical("*"))
		} else {
			fmt.Fprintf(w, "%s\n", row)
		}
	}

	fmt.Fprintf(w, "\n%s\n", opts.faint("* critical task (zero total slack)"))
}

func title(opts Options, p *model.Project, r *model.ScheduleResult) string {
	return opts.heading(fmt.Sprintf("%s (%d tasks, %d days)", p.Name, len(r.Tasks), r.ProjectDuration))
}

// Summary writes the project duration, the critical path and the largest
// slack in the plan.
func Summary(w io.Writer, p *model.Project, r *model.ScheduleResult, opts Options) {
	fmt.Fprintf(w, "Project:         %s\n", opts.heading(p.Name))
	fmt.Fprintf(w, "Tasks:           %d\n", len(r.Tasks))
	fmt.Fprintf(w, "Duration:        %d days\n", r.ProjectDuration)
	fmt.Fprintf(w, "Critical path:   %s\n", opts.markCritical(strings.Join(r.CriticalPath, " -> ")))
	fmt.Fprintf(w, "Max total slack: %d days\n", r.MaxSlack())
}

// diagramTask is one task record in the JSON diagram payload.
type diagramTask struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Duration       int      `json:"duration"`
	Dependencies   []string `json:"dependencies"`
	EarliestStart  int      `json:"earliest_start"`
	EarliestFinish int      `json:"earliest_finish"`
	LatestStart    int      `json:"latest_start"`
	LatestFinish   int      `json:"latest_finish"`
	TotalSlack     int      `json:"total_slack"`
	FreeSlack      int      `json:"free_slack"`
	Critical       bool     `json:"critical"`
}

// diagram is the full payload a timeline renderer consumes.
type diagram struct {
	Project         string        `json:"project"`
	Description     string        `json:"description,omitempty"`
	ProjectDuration int           `json:"project_duration"`
	MaxSlack        int           `json:"max_slack"`
	CriticalPath    []string      `json:"critical_path"`
	Tasks           []diagramTask `json:"tasks"`
}

// JSON writes the schedule as an indented JSON document with one record per
// task in topological order.
func JSON(w io.Writer, p *model.Project, r *model.ScheduleResult) error {
	d := diagram{
		Project:         p.Name,
		Description:     p.Description,
		ProjectDuration: r.ProjectDuration,
		MaxSlack:        r.MaxSlack(),
		CriticalPath:    r.CriticalPath,
		Tasks:           make([]diagramTask, 0, len(r.Order)),
	}

	for _, code := range r.Order {
		ts := r.Tasks[code]
		dt := diagramTask{
			Code:           code,
			EarliestStart:  ts.EarliestStart,
			EarliestFinish: ts.EarliestFinish,
			LatestStart:    ts.LatestStart,
			LatestFinish:   ts.LatestFinish,
			TotalSlack:     ts.TotalSlack,
			FreeSlack:      ts.FreeSlack,
			Critical:       ts.Critical,
		}
		if t := p.TaskByCode(code); t != nil {
			dt.Name = t.Name
			dt.Duration = t.Duration
			for _, dep := range t.Dependencies {
				dt.Dependencies = append(dt.Dependencies, model.NormalizeCode(dep))
			}
		}
		d.Tasks = append(d.Tasks, dt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
