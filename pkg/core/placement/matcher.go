package placement

import (
	"fmt"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// SolverName selects the matching algorithm
type SolverName string

const (
	SolverGreedy    SolverName = "greedy"
	SolverHungarian SolverName = "hungarian"
)

func (s SolverName) IsValid() bool {
	return s == SolverGreedy || s == SolverHungarian
}

// Assignment is one employee placed at one seat, with the score that justified it
type Assignment struct {
	EmployeeID string    `json:"employee_id"`
	SeatID     string    `json:"seat_id"`
	Score      float64   `json:"score"`
	Reasons    Breakdown `json:"reasons"`
}

// MatchResult is the outcome of one matching run
type MatchResult struct {
	Assignments []Assignment
	Unassigned  []string
	UnusedSeats []string
}

func newMatchResult() MatchResult {
	return MatchResult{
		Assignments: []Assignment{},
		Unassigned:  []string{},
		UnusedSeats: []string{},
	}
}

// TotalScore sums the scores of all assignments
func (r MatchResult) TotalScore() float64 {
	total := 0.0
	for _, a := range r.Assignments {
		total += a.Score
	}
	return total
}

// Matcher assigns employees to seats for a single day.
// togetherTeams lists groups of team names whose members should sit together;
// matchers that do not model cohesion ignore it.
type Matcher interface {
	Name() SolverName
	Match(employees []model.Employee, seats []model.Seat, weights Weights, togetherTeams [][]string) (MatchResult, error)
}

// NewMatcher creates the matcher for the named solver.
// solver may be nil, in which case the hungarian matcher reports ErrOptimalSolverUnavailable.
func NewMatcher(name SolverName, scorer *Scorer, gate *Gate, solver AssignmentSolver) (Matcher, error) {
	switch name {
	case SolverGreedy:
		return NewGreedyMatcher(scorer, gate), nil
	case SolverHungarian:
		return NewOptimalMatcher(scorer, gate, solver), nil
	}
	return nil, fmt.Errorf("unknown solver %q (expected %q or %q)", name, SolverGreedy, SolverHungarian)
}
