package project

import "errors"

var (
	// ErrNoTasks is returned when a project file declares no tasks
	ErrNoTasks = errors.New("project has no tasks")

	// ErrMissingCode is returned when a task entry has no code
	ErrMissingCode = errors.New("task code is required")

	// ErrCodeTooLong is returned when a task code exceeds the allowed length
	ErrCodeTooLong = errors.New("task code is too long")

	// ErrMissingName is returned when a task entry has no name
	ErrMissingName = errors.New("task name is required")

	// ErrInvalidDuration is returned when a task duration is not at least one day
	ErrInvalidDuration = errors.New("task duration must be at least 1")

	// ErrDuplicateCode is returned when two tasks in a file share a code
	ErrDuplicateCode = errors.New("duplicate task code")

	// ErrUnknownDependency is returned when a dependency names no task in the file
	ErrUnknownDependency = errors.New("dependency does not name a task in this project")

	// ErrSelfDependency is returned when a task depends on itself
	ErrSelfDependency = errors.New("task cannot depend on itself")

	// ErrTooManyTasks is returned when a file exceeds the configured task limit
	ErrTooManyTasks = errors.New("project exceeds task limit")
)
