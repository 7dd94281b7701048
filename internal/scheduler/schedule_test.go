package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefevre/pertcalc/internal/model"
)

func task(code string, duration int, deps ...string) model.Task {
	return model.Task{Code: code, Name: "Task " + code, Duration: duration, Dependencies: deps}
}

func TestCompute_LinearChain(t *testing.T) {
	tasks := []model.Task{
		task("A", 3),
		task("B", 2, "A"),
		task("C", 4, "B"),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)

	require.Equal(t, 9, result.ProjectDuration)
	require.Equal(t, []string{"A", "B", "C"}, result.Order)
	require.Equal(t, []string{"A", "B", "C"}, result.CriticalPath)

	assert.Equal(t, 0, result.Tasks["A"].EarliestStart)
	assert.Equal(t, 3, result.Tasks["B"].EarliestStart)
	assert.Equal(t, 5, result.Tasks["C"].EarliestStart)

	for _, code := range []string{"A", "B", "C"} {
		ts := result.Tasks[code]
		assert.Zero(t, ts.TotalSlack, "task %s", code)
		assert.Zero(t, ts.FreeSlack, "task %s", code)
		assert.True(t, ts.Critical, "task %s", code)
	}
}

func TestCompute_ParallelChains(t *testing.T) {
	// A (5 days) and B (3 days) run independently; both must finish
	// before D (2 days) starts.
	tasks := []model.Task{
		task("A", 5),
		task("B", 3),
		task("D", 2, "A", "B"),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)

	require.Equal(t, 7, result.ProjectDuration)
	assert.Equal(t, 5, result.Tasks["D"].EarliestStart)

	assert.True(t, result.Tasks["A"].Critical)
	assert.Zero(t, result.Tasks["A"].TotalSlack)

	assert.False(t, result.Tasks["B"].Critical)
	assert.Equal(t, 2, result.Tasks["B"].TotalSlack)
	assert.Equal(t, 2, result.Tasks["B"].FreeSlack)

	assert.True(t, result.Tasks["D"].Critical)
	require.Equal(t, []string{"A", "D"}, result.CriticalPath)
}

func TestCompute_SinkKeepsOwnFinish(t *testing.T) {
	// C is an independent sink that finishes well before the A -> B chain.
	// Its latest finish stays anchored to its own earliest finish instead
	// of the project end.
	tasks := []model.Task{
		task("A", 5),
		task("B", 5, "A"),
		task("C", 3),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)
	require.Equal(t, 10, result.ProjectDuration)

	c := result.Tasks["C"]
	assert.Equal(t, 3, c.EarliestFinish)
	assert.Equal(t, 3, c.LatestFinish)
	assert.Equal(t, 0, c.LatestStart)
	assert.Zero(t, c.TotalSlack)
	assert.Equal(t, c.TotalSlack, c.FreeSlack)
}

func TestCompute_DiamondInvariants(t *testing.T) {
	tasks := []model.Task{
		task("A", 2),
		task("B", 4, "A"),
		task("C", 7, "A"),
		task("D", 1, "B", "C"),
		task("E", 3, "A"),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)

	require.NotEmpty(t, result.CriticalPath)
	for code, ts := range result.Tasks {
		dur := 0
		for i := range tasks {
			if model.NormalizeCode(tasks[i].Code) == code {
				dur = tasks[i].Duration
			}
		}
		assert.Equal(t, ts.EarliestStart+dur, ts.EarliestFinish, "task %s", code)
		assert.Equal(t, ts.LatestStart+dur, ts.LatestFinish, "task %s", code)
		assert.GreaterOrEqual(t, ts.TotalSlack, 0, "task %s", code)
		assert.Equal(t, ts.TotalSlack == 0, ts.Critical, "task %s", code)
	}

	// E is a sink anchored to its own earliest finish, so it carries no
	// slack even though the project runs longer.
	assert.Equal(t, []string{"A", "C", "E", "D"}, result.CriticalPath)
	assert.Equal(t, 10, result.ProjectDuration)
}

func TestCompute_Idempotent(t *testing.T) {
	tasks := []model.Task{
		task("A", 2),
		task("B", 4, "A"),
		task("C", 7, "A"),
		task("D", 1, "B", "C"),
	}

	first, err := Compute(tasks)
	require.NoError(t, err)
	second, err := Compute(tasks)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCompute_InputNotMutated(t *testing.T) {
	tasks := []model.Task{
		task("a", 2, "b"),
		task("b", 4),
	}

	_, err := Compute(tasks)
	require.NoError(t, err)

	// Codes stay as the caller wrote them; normalization is internal.
	assert.Equal(t, "a", tasks[0].Code)
	assert.Equal(t, []string{"b"}, tasks[0].Dependencies)
}

func TestCompute_CodeNormalization(t *testing.T) {
	tasks := []model.Task{
		task(" a ", 1),
		task("b", 2, "A"),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)

	require.Contains(t, result.Tasks, "A")
	require.Contains(t, result.Tasks, "B")
	assert.Equal(t, 1, result.Tasks["B"].EarliestStart)
}

func TestCompute_EmptyInput(t *testing.T) {
	result, err := Compute(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Tasks)
	assert.Empty(t, result.CriticalPath)
	assert.Zero(t, result.ProjectDuration)
}

func TestCompute_Cycle(t *testing.T) {
	tasks := []model.Task{
		task("A", 1, "B"),
		task("B", 1, "A"),
	}

	result, err := Compute(tasks)
	require.Nil(t, result)
	require.ErrorIs(t, err, ErrCyclicDependency)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.ElementsMatch(t, []string{"A", "B"}, cycleErr.Path)
}

func TestCompute_SelfDependency(t *testing.T) {
	tasks := []model.Task{task("A", 1, "A")}

	_, err := Compute(tasks)
	require.ErrorIs(t, err, ErrCyclicDependency)

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"A"}, cycleErr.Path)
}

func TestCompute_CycleInDisconnectedComponent(t *testing.T) {
	// A healthy chain next to an unrelated two-task cycle. The traversal
	// must reach every component.
	tasks := []model.Task{
		task("A", 1),
		task("B", 2, "A"),
		task("X", 1, "Y"),
		task("Y", 1, "X"),
	}

	_, err := Compute(tasks)
	require.ErrorIs(t, err, ErrCyclicDependency)
}

func TestCompute_UnresolvedDependency(t *testing.T) {
	tasks := []model.Task{
		task("A", 1),
		task("B", 2, "A", "Z"),
	}

	result, err := Compute(tasks)
	require.Nil(t, result)
	require.ErrorIs(t, err, ErrUnresolvedDependency)

	var depErr *UnresolvedDependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "B", depErr.Code)
	assert.Equal(t, "Z", depErr.Dependency)
}

func TestCompute_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -3} {
		_, err := Compute([]model.Task{task("A", duration)})
		require.ErrorIs(t, err, ErrInvalidDuration)

		var durErr *DurationError
		require.ErrorAs(t, err, &durErr)
		assert.Equal(t, "A", durErr.Code)
		assert.Equal(t, duration, durErr.Duration)
	}
}

func TestCompute_DuplicateCode(t *testing.T) {
	// "a" and "A" collide after normalization.
	tasks := []model.Task{
		task("a", 1),
		task("A", 2),
	}

	_, err := Compute(tasks)
	require.ErrorIs(t, err, ErrDuplicateCode)

	var dupErr *DuplicateCodeError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "A", dupErr.Code)
}

func TestCompute_EmptyCode(t *testing.T) {
	_, err := Compute([]model.Task{task("   ", 1)})
	require.ErrorIs(t, err, ErrEmptyCode)
}

func TestCompute_ErrorsLeaveNoResult(t *testing.T) {
	cases := map[string][]model.Task{
		"cycle":      {task("A", 1, "B"), task("B", 1, "A")},
		"unresolved": {task("A", 1, "Z")},
		"duration":   {task("A", 0)},
	}

	for name, tasks := range cases {
		result, err := Compute(tasks)
		require.Error(t, err, name)
		require.Nil(t, result, name)
	}
}

func TestCompute_DeterministicOrder(t *testing.T) {
	// Several roots with no edges between them: the frontier tie-break is
	// lexicographic, so the order is stable regardless of input order.
	tasks := []model.Task{
		task("C", 1),
		task("A", 1),
		task("B", 1),
	}

	result, err := Compute(tasks)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, result.Order)
}
