package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
)

func prefersWindow(e *model.Employee) { e.PreferWindow = true }

func TestAssignSeats_Greedy(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees: []model.Employee{emp("e1", prefersWindow), emp("e2")},
		Seats:     []model.Seat{seatIn("s1", "ZoneA"), seatIn("s2", "ZoneA", windowSeat), seatIn("s3", "ZoneA")},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"e1": "s2", "e2": "s1"}, seatsByEmployee(resp.Assignments))
	assert.Equal(t, []string{"s3"}, resp.UnusedSeats)
	assert.Empty(t, resp.UnassignedEmployees)

	assert.Equal(t, placement.SolverGreedy, resp.Meta.Solver)
	assert.Equal(t, 2, resp.Meta.TotalEmployees)
	assert.Equal(t, 2, resp.Meta.ConsideredEmployees)
	assert.Equal(t, 3, resp.Meta.TotalSeats)
	assert.InDelta(t, 1.0, resp.Meta.AssignmentRate, 1e-9)
	assert.InDelta(t, 0.95-0.05, resp.Meta.TotalScore, 1e-9)
}

func TestAssignSeats_Hungarian(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees: []model.Employee{emp("e1"), emp("e2", prefersWindow)},
		Seats:     []model.Seat{seatIn("s1", "ZoneA", windowSeat), seatIn("s2", "ZoneA")},
		Solver:    placement.SolverHungarian,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"e1": "s2", "e2": "s1"}, seatsByEmployee(resp.Assignments))
	assert.Equal(t, placement.SolverHungarian, resp.Meta.Solver)
}

func TestAssignSeats_MaxAssignmentsLimitsConsideredEmployees(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees:      []model.Employee{emp("e1"), emp("e2"), emp("e3")},
		Seats:          []model.Seat{seatIn("s1", "ZoneA"), seatIn("s2", "ZoneA"), seatIn("s3", "ZoneA")},
		MaxAssignments: 1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "e1", resp.Assignments[0].EmployeeID)
	assert.Equal(t, 3, resp.Meta.TotalEmployees)
	assert.Equal(t, 1, resp.Meta.ConsideredEmployees)
	assert.InDelta(t, 1.0/3.0, resp.Meta.AssignmentRate, 1e-9, "Rate is measured against every requested employee")
}

func TestAssignSeats_MaxAssignmentsAboveEmployeeCountIgnored(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees:      []model.Employee{emp("e1"), emp("e2")},
		Seats:          []model.Seat{seatIn("s1", "ZoneA"), seatIn("s2", "ZoneA")},
		MaxAssignments: 10,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Assignments, 2)
	assert.Equal(t, 2, resp.Meta.ConsideredEmployees)
}

func TestAssignSeats_EmptyRequest(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{})
	require.NoError(t, err)

	assert.Empty(t, resp.Assignments)
	assert.Equal(t, 0.0, resp.Meta.AssignmentRate)
}

func TestAssignSeats_InvalidRequests(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())
	seats := []model.Seat{seatIn("s1", "ZoneA")}

	tests := []struct {
		name string
		req  AssignRequest
	}{
		{
			name: "unknown weight",
			req:  AssignRequest{Employees: []model.Employee{emp("e1")}, Seats: seats, Weights: map[string]float64{"w_parking": 1}},
		},
		{
			name: "unknown solver",
			req:  AssignRequest{Employees: []model.Employee{emp("e1")}, Seats: seats, Solver: "simplex"},
		},
		{
			name: "duplicate employee id",
			req:  AssignRequest{Employees: []model.Employee{emp("e1"), emp("e1")}, Seats: seats},
		},
		{
			name: "missing seat id",
			req:  AssignRequest{Employees: []model.Employee{emp("e1")}, Seats: []model.Seat{seatIn("", "ZoneA")}},
		},
		{
			name: "onsite ratio out of range",
			req:  AssignRequest{Employees: []model.Employee{emp("e1", func(e *model.Employee) { e.OnsiteRatio = 1.5 })}, Seats: seats},
		},
		{
			name: "negative max assignments",
			req:  AssignRequest{Employees: []model.Employee{emp("e1")}, Seats: seats, MaxAssignments: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := planner.AssignSeats(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestAssignSeats_HungarianDisabled(t *testing.T) {
	settings := testSettings()
	settings.OptimalEnabled = false
	planner := NewPlanner(settings, nil, nil, zap.NewNop())

	_, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees: []model.Employee{emp("e1")},
		Seats:     []model.Seat{seatIn("s1", "ZoneA")},
		Solver:    placement.SolverHungarian,
	})

	assert.ErrorIs(t, err, placement.ErrOptimalSolverUnavailable)
}

func TestAssignSeats_WeightOverridesApply(t *testing.T) {
	planner := NewPlanner(testSettings(), nil, nil, zap.NewNop())

	resp, err := planner.AssignSeats(context.Background(), AssignRequest{
		Employees: []model.Employee{emp("e1", prefersWindow)},
		Seats:     []model.Seat{seatIn("s1", "ZoneA", windowSeat)},
		Weights:   map[string]float64{placement.KeyWindow: 4},
	})
	require.NoError(t, err)

	require.Len(t, resp.Assignments, 1)
	assert.InDelta(t, 4-0.05, resp.Assignments[0].Score, 1e-9)
}

func TestSettingsFromConfigDefaults(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, settings.WeekDays)
	assert.Equal(t, placement.SolverGreedy, settings.DefaultSolver)
	assert.Equal(t, placement.SolverHungarian, settings.WeekSolver)
	assert.Equal(t, placement.DefaultWeights(), settings.BaseWeights)
	assert.True(t, settings.OptimalEnabled)
}
