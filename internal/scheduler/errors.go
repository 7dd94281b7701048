package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCode is returned when a task has no code
	ErrEmptyCode = errors.New("task code is empty")

	// ErrInvalidDuration is returned when a task duration is not a positive integer
	ErrInvalidDuration = errors.New("task duration must be positive")

	// ErrDuplicateCode is returned when two tasks share the same code
	ErrDuplicateCode = errors.New("duplicate task code")

	// ErrUnresolvedDependency is returned when a dependency references an unknown task
	ErrUnresolvedDependency = errors.New("unresolved dependency")

	// ErrCyclicDependency is returned when the dependency graph contains a cycle
	ErrCyclicDependency = errors.New("circular dependency detected")

	// ErrInconsistentSchedule is returned when a computed schedule violates an
	// internal invariant. It signals a defect in the engine, not bad input.
	ErrInconsistentSchedule = errors.New("inconsistent schedule")
)

// DurationError reports a task whose duration is zero or negative.
// Wraps ErrInvalidDuration for errors.Is() compatibility.
type DurationError struct {
	Code     string
	Duration int
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("task %q: %s (got %d)", e.Code, ErrInvalidDuration.Error(), e.Duration)
}

func (e *DurationError) Unwrap() error { return ErrInvalidDuration }

// DuplicateCodeError reports a task code that appears more than once after
// normalization. Wraps ErrDuplicateCode.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateCode.Error(), e.Code)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrDuplicateCode }

// UnresolvedDependencyError reports a dependency code that does not resolve
// to any task in the collection. Wraps ErrUnresolvedDependency.
type UnresolvedDependencyError struct {
	Code       string // task declaring the dependency
	Dependency string // the code that did not resolve
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("task %q: %s: %q", e.Code, ErrUnresolvedDependency.Error(), e.Dependency)
}

func (e *UnresolvedDependencyError) Unwrap() error { return ErrUnresolvedDependency }

// CycleError reports a dependency cycle. Path holds task codes on the cycle
// in dependency order; the first code closes the loop with the last.
// Wraps ErrCyclicDependency.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return ErrCyclicDependency.Error()
	}
	return fmt.Sprintf("%s: %s", ErrCyclicDependency.Error(), strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

// ConsistencyError reports a post-computation invariant violation such as
// negative total slack. Wraps ErrInconsistentSchedule.
type ConsistencyError struct {
	Code  string
	Slack int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: task %q has negative total slack %d", ErrInconsistentSchedule.Error(), e.Code, e.Slack)
}

func (e *ConsistencyError) Unwrap() error { return ErrInconsistentSchedule }
