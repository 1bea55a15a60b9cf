package placement

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// Test helpers shared by the placement tests

func employee(id string, opts ...func(*model.Employee)) model.Employee {
	emp := model.NewEmployee(id)
	for _, opt := range opts {
		opt(&emp)
	}
	return emp
}

func seat(id, zone string, opts ...func(*model.Seat)) model.Seat {
	s := model.NewSeat(id)
	s.Zone = zone
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func needsAccessible(e *model.Employee) { e.NeedsAccessible = true }
func prefersWindow(e *model.Employee)   { e.PreferWindow = true }
func accessible(s *model.Seat)          { s.IsAccessible = true }
func window(s *model.Seat)              { s.IsWindow = true }

func inTeam(team string) func(*model.Employee) {
	return func(e *model.Employee) { e.Team = team }
}

func inDept(dept string) func(*model.Employee) {
	return func(e *model.Employee) { e.Department = dept }
}

func prefersZone(zone string) func(*model.Employee) {
	return func(e *model.Employee) { e.PreferredZone = zone }
}

func onsite(ratio float64) func(*model.Employee) {
	return func(e *model.Employee) { e.OnsiteRatio = ratio }
}

func prefersDays(days ...string) func(*model.Employee) {
	return func(e *model.Employee) { e.PreferredDays = days }
}

func newTestScorer() *Scorer {
	return NewScorer(Predictors{}, nil)
}

func newTestGreedy() *GreedyMatcher {
	return NewGreedyMatcher(newTestScorer(), DefaultGate())
}

func newTestOptimal() *OptimalMatcher {
	return NewOptimalMatcher(newTestScorer(), DefaultGate(), HungarianSolver{})
}

// randomRoster builds a reproducible roster from seed
func randomRoster(seed int64, numEmployees, numSeats int, withAccessibility bool) ([]model.Employee, []model.Seat) {
	rng := rand.New(rand.NewSource(seed))
	zones := []string{"ZoneA", "ZoneB", "ZoneC"}

	employees := make([]model.Employee, numEmployees)
	for i := range employees {
		emp := model.NewEmployee(fmt.Sprintf("E%02d", i))
		emp.PreferWindow = rng.Intn(2) == 0
		emp.ProjectCount = float64(rng.Intn(5))
		if rng.Intn(2) == 0 {
			emp.PreferredZone = zones[rng.Intn(len(zones))]
		}
		if withAccessibility {
			emp.NeedsAccessible = rng.Intn(4) == 0
		}
		employees[i] = emp
	}

	seats := make([]model.Seat, numSeats)
	for j := range seats {
		s := model.NewSeat(fmt.Sprintf("S%02d", j))
		s.Zone = zones[rng.Intn(len(zones))]
		s.IsWindow = rng.Intn(3) == 0
		if withAccessibility {
			s.IsAccessible = rng.Intn(3) == 0
		}
		seats[j] = s
	}

	return employees, seats
}

// Mock predictors

type fixedSeatPredictor struct {
	prob float64
	err  error
}

func (p fixedSeatPredictor) PredictSeatSatisfaction(features []float64) (float64, error) {
	return p.prob, p.err
}

type fixedOnsitePredictor struct {
	ratio float64
	err   error
}

func (p fixedOnsitePredictor) PredictOnsiteRatio(features []float64) (float64, error) {
	return p.ratio, p.err
}

type panickingSeatPredictor struct{}

func (panickingSeatPredictor) PredictSeatSatisfaction(features []float64) (float64, error) {
	panic("model exploded")
}

// windowLovingPredictor returns a higher probability for window seats (feature index 2)
type windowLovingPredictor struct{}

func (windowLovingPredictor) PredictSeatSatisfaction(features []float64) (float64, error) {
	if features[2] == 1.0 {
		return 0.9, nil
	}
	return 0.1, nil
}

var errModel = errors.New("model unavailable")

// seatFor returns the seat assigned to the employee, if any
func seatFor(result MatchResult, employeeID string) (string, bool) {
	for _, a := range result.Assignments {
		if a.EmployeeID == employeeID {
			return a.SeatID, true
		}
	}
	return "", false
}
