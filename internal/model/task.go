package model

import "strings"

// Task represents a single unit of work inside a project plan.
// Dependencies lists the codes of tasks that must finish before this
// task can start.
type Task struct {
	Code         string   `json:"code" yaml:"code"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Duration     int      `json:"duration" yaml:"duration"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Project is a named collection of tasks that are scheduled together.
type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Tasks       []Task `json:"tasks" yaml:"tasks"`
}

// NormalizeCode canonicalizes a task code: surrounding whitespace is
// stripped and the code is upper-cased. Codes are compared in this form
// everywhere, so "a1" and "A1" name the same task.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// TaskByCode returns the task with the given (normalized) code, or nil.
func (p *Project) TaskByCode(code string) *Task {
	code = NormalizeCode(code)
	for i := range p.Tasks {
		if NormalizeCode(p.Tasks[i].Code) == code {
			return &p.Tasks[i]
		}
	}
	return nil
}
