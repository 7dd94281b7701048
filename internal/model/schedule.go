package model

// TaskSchedule holds the computed CPM dates and slacks for one task.
// All values are in whole days from project start (day 0).
type TaskSchedule struct {
	Code           string `json:"code"`
	EarliestStart  int    `json:"earliest_start"`
	EarliestFinish int    `json:"earliest_finish"`
	LatestStart    int    `json:"latest_start"`
	LatestFinish   int    `json:"latest_finish"`
	TotalSlack     int    `json:"total_slack"`
	FreeSlack      int    `json:"free_slack"`
	Critical       bool   `json:"critical"`
}

// ScheduleResult is the complete outcome of one scheduling run.
type ScheduleResult struct {
	// Tasks maps normalized task code to its computed schedule.
	Tasks map[string]*TaskSchedule `json:"tasks"`

	// Order is the topological order the tasks were processed in.
	Order []string `json:"order"`

	// CriticalPath lists the zero-slack tasks ordered by earliest start.
	CriticalPath []string `json:"critical_path"`

	// ProjectDuration is the earliest possible completion of the whole
	// project, i.e. the maximum earliest finish over all tasks.
	ProjectDuration int `json:"project_duration"`
}

// Schedule returns the computed schedule for a task code, or nil if the
// code is unknown.
func (r *ScheduleResult) Schedule(code string) *TaskSchedule {
	return r.Tasks[NormalizeCode(code)]
}

// MaxSlack returns the largest total slack in the schedule.
func (r *ScheduleResult) MaxSlack() int {
	max := 0
	for _, ts := range r.Tasks {
		if ts.TotalSlack > max {
			max = ts.TotalSlack
		}
	}
	return max
}
