package placement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

func splitTeamInput(mode TeamTogetherMode) WeeklyInput {
	return WeeklyInput{
		Employees: []model.Employee{
			employee("a1", inTeam("Alpha"), prefersZone("ZoneA")),
			employee("a2", inTeam("Alpha"), prefersZone("ZoneB")),
		},
		Seats:         []model.Seat{seat("A1", "ZoneA"), seat("B1", "ZoneB")},
		DeptCapPct:    1.0,
		TogetherTeams: [][]string{{"Alpha"}},
		Mode:          mode,
		Weights:       DefaultWeights(),
		Days:          []string{"Mon"},
	}
}

func TestSchedule_DefaultsDaysAndCapacity(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2"), employee("e3")}
	seats := []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA"), seat("s3", "ZoneA")}

	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), WeeklyInput{
		Employees:     employees,
		Seats:         seats,
		CapacityByDay: map[string]int{"Mon": 1},
		DeptCapPct:    1.0,
		Weights:       DefaultWeights(),
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultDays, result.Days)
	assert.Len(t, result.Attendance["Mon"], 1)
	assert.Len(t, result.Assignments["Mon"], 1)
	for _, day := range []string{"Tue", "Wed", "Thu", "Fri"} {
		assert.Len(t, result.Attendance[day], 3, "%s falls back to the default capacity", day)
		assert.Len(t, result.Assignments[day], 3)
	}
	assert.Empty(t, result.Violations)
}

func TestSchedule_ExplicitDefaultCapacity(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2"), employee("e3")}

	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), WeeklyInput{
		Employees:       employees,
		Seats:           []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA")},
		DefaultCapacity: 2,
		DeptCapPct:      1.0,
		Weights:         DefaultWeights(),
		Days:            []string{"Thu"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"e1", "e2"}, result.Attendance["Thu"])
}

func TestSchedule_UnseatedAttendeesReported(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2", needsAccessible)}

	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), WeeklyInput{
		Employees:  employees,
		Seats:      []model.Seat{seat("s1", "ZoneA")},
		DeptCapPct: 1.0,
		Weights:    DefaultWeights(),
		Days:       []string{"Mon"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"e1", "e2"}, result.Attendance["Mon"])
	assert.Equal(t, []string{"e2"}, result.Unassigned["Mon"])
}

func TestSchedule_HardModeReportsSplitTeams(t *testing.T) {
	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), splitTeamInput(TeamTogetherHard))
	require.NoError(t, err)

	assert.Len(t, result.Assignments["Mon"], 2, "The matching is kept even when the constraint is violated")
	assert.Equal(t, []string{
		"Hard constraint violated: team group [Alpha] split across zones [ZoneA, ZoneB] on Mon",
	}, result.Violations)
}

func TestSchedule_SoftModeDoesNotReportSplitTeams(t *testing.T) {
	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), splitTeamInput(TeamTogetherSoft))
	require.NoError(t, err)

	assert.Len(t, result.Assignments["Mon"], 2)
	assert.Empty(t, result.Violations)
}

func TestSchedule_HardModeIgnoresUnseatedMembers(t *testing.T) {
	in := splitTeamInput(TeamTogetherHard)
	in.Seats = []model.Seat{seat("A1", "ZoneA")}

	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{"a2"}, result.Unassigned["Mon"])
	assert.Empty(t, result.Violations)
}

func TestSchedule_ViolationsAccumulateInDayOrder(t *testing.T) {
	employees := []model.Employee{
		employee("e1", inDept("Eng")),
		employee("e2", inDept("Eng")),
	}

	result, err := NewWeeklyScheduler(newTestGreedy()).Schedule(context.Background(), WeeklyInput{
		Employees:     employees,
		Seats:         []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA")},
		CapacityByDay: map[string]int{"Tue": 2, "Mon": 2},
		DeptCapPct:    0.5,
		Weights:       DefaultWeights(),
		Days:          []string{"Tue", "Mon"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Department Eng exceeded daily limit on Tue",
		"Department Eng exceeded daily limit on Mon",
	}, result.Violations)
	assert.Len(t, result.Assignments["Tue"], 1)
	assert.Len(t, result.Assignments["Mon"], 1)
}

func TestSchedule_MatcherErrorAbortsRun(t *testing.T) {
	scheduler := NewWeeklyScheduler(NewOptimalMatcher(newTestScorer(), DefaultGate(), nil))

	result, err := scheduler.Schedule(context.Background(), WeeklyInput{
		Employees:  []model.Employee{employee("e1")},
		Seats:      []model.Seat{seat("s1", "ZoneA")},
		DeptCapPct: 1.0,
		Weights:    DefaultWeights(),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrOptimalSolverUnavailable))
	assert.Contains(t, err.Error(), "Mon")
}

func TestSchedule_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWeeklyScheduler(newTestGreedy()).Schedule(ctx, splitTeamInput(TeamTogetherSoft))

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSchedule_ResultPassesValidation(t *testing.T) {
	employees, seats := randomRoster(3, 20, 12, true)
	for i := range employees {
		employees[i].Department = []string{"Eng", "Ops", "Sales"}[i%3]
		employees[i].Team = []string{"Alpha", "Beta"}[i%2]
	}

	for _, matcher := range []Matcher{newTestGreedy(), newTestOptimal()} {
		in := WeeklyInput{
			Employees:     employees,
			Seats:         seats,
			CapacityByDay: map[string]int{"Mon": 10, "Tue": 15, "Wed": 4},
			DeptCapPct:    0.6,
			TogetherTeams: [][]string{{"Alpha"}},
			Mode:          TeamTogetherHard,
			Weights:       DefaultWeights(),
		}

		result, err := NewWeeklyScheduler(matcher).Schedule(context.Background(), in)
		require.NoError(t, err)

		assert.Empty(t, ValidateSchedule(in, result, DefaultGate()), "solver %s", matcher.Name())
	}
}
