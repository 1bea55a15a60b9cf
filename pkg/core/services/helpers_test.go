package services

import (
	"context"
	"errors"
	"time"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/db"
)

func testSettings() Settings {
	return Settings{
		BaseWeights:        placement.DefaultWeights(),
		DefaultSolver:      placement.SolverGreedy,
		WeekSolver:         placement.SolverGreedy,
		DeptDayCapPct:      0.6,
		DefaultDayCapacity: placement.DefaultDayCapacity,
		WeekDays:           []string{"Mon", "Tue"},
		TeamTogetherMode:   placement.TeamTogetherSoft,
		OptimalEnabled:     true,
	}
}

func emp(id string, opts ...func(*model.Employee)) model.Employee {
	e := model.NewEmployee(id)
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func windowSeat(s *model.Seat) { s.IsWindow = true }

func seatIn(id, zone string, opts ...func(*model.Seat)) model.Seat {
	s := model.NewSeat(id)
	s.Zone = zone
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func seatsByEmployee(assignments []placement.Assignment) map[string]string {
	out := make(map[string]string, len(assignments))
	for _, a := range assignments {
		out[a.EmployeeID] = a.SeatID
	}
	return out
}

var errStore = errors.New("store unavailable")

// mockDB implements db.Database in memory
type mockDB struct {
	employees   []model.Employee
	seats       []model.Seat
	runs        []db.ScheduleRun
	assignments map[string][]db.RunAssignment

	replaceErr error
	insertErr  error
	getRunsErr error
}

func (m *mockDB) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	return m.employees, nil
}

func (m *mockDB) GetSeats(ctx context.Context) ([]model.Seat, error) {
	return m.seats, nil
}

func (m *mockDB) ReplaceRoster(ctx context.Context, employees []model.Employee, seats []model.Seat) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.employees = employees
	m.seats = seats
	return nil
}

func (m *mockDB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, assignments []db.RunAssignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.runs = append(m.runs, *run)
	if m.assignments == nil {
		m.assignments = make(map[string][]db.RunAssignment)
	}
	m.assignments[run.ID] = assignments
	return nil
}

func (m *mockDB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	if m.getRunsErr != nil {
		return nil, m.getRunsErr
	}
	return m.runs, nil
}

func (m *mockDB) GetRunAssignments(ctx context.Context, runID string) ([]db.RunAssignment, error) {
	return m.assignments[runID], nil
}

var _ db.Database = (*mockDB)(nil)

// mockSource implements RosterSource
type mockSource struct {
	employees []model.Employee
	seats     []model.Seat
	err       error
}

func (m *mockSource) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return m.employees, m.err
}

func (m *mockSource) ListSeats(ctx context.Context) ([]model.Seat, error) {
	return m.seats, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
