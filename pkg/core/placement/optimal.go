package placement

import (
	"errors"
	"fmt"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// InfeasibleCost marks matrix cells for ineligible pairs and padding rows/columns.
// It must exceed the magnitude of any real score.
const InfeasibleCost = 1000.0

// ErrOptimalSolverUnavailable is returned when the hungarian solver is requested but disabled
var ErrOptimalSolverUnavailable = errors.New(`the hungarian solver is not available; use solver "greedy" instead`)

// OptimalMatcher finds the one-to-one matching with the highest total score.
// Team cohesion is not modelled; only direct pair scores count.
//
// Ineligible and padding cells share InfeasibleCost, so the number of seated
// employees is maximised first and the score second. Its total is at least the
// greedy total only when both seat the same number of people.
type OptimalMatcher struct {
	scorer *Scorer
	gate   *Gate
	solver AssignmentSolver
}

// NewOptimalMatcher creates an optimal matcher. A nil solver makes every Match
// call fail with ErrOptimalSolverUnavailable.
func NewOptimalMatcher(scorer *Scorer, gate *Gate, solver AssignmentSolver) *OptimalMatcher {
	return &OptimalMatcher{scorer: scorer, gate: gate, solver: solver}
}

func (m *OptimalMatcher) Name() SolverName {
	return SolverHungarian
}

// pairCell holds the precomputed score for one (employee, seat) pair
type pairCell struct {
	eligible bool
	score    float64
	reasons  Breakdown
}

// Match pads the problem to a square matrix of size max(employees, seats), solves
// the minimum-cost perfect matching over negated scores and keeps only the pairs
// that join a real employee to a real, eligible seat.
//
// Every pair is scored upfront, so cost grows with employees × seats.
func (m *OptimalMatcher) Match(employees []model.Employee, seats []model.Seat, weights Weights, _ [][]string) (MatchResult, error) {
	if m.solver == nil {
		return MatchResult{}, ErrOptimalSolverUnavailable
	}

	result := newMatchResult()
	numEmployees := len(employees)
	numSeats := len(seats)
	size := max(numEmployees, numSeats)
	if size == 0 {
		return result, nil
	}

	cells := make([]pairCell, numEmployees*numSeats)
	cost := make([][]float64, size)
	for i := range cost {
		cost[i] = make([]float64, size)
		for j := range cost[i] {
			cost[i][j] = InfeasibleCost
		}
	}

	for i, emp := range employees {
		for j, seat := range seats {
			if !m.gate.IsEligible(emp, seat) {
				continue
			}
			score, reasons := m.scorer.Score(emp, seat, weights, 0)
			cells[i*numSeats+j] = pairCell{eligible: true, score: score, reasons: reasons}
			cost[i][j] = -score
		}
	}

	rowToCol, err := m.solver.Solve(cost)
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to solve assignment problem: %w", err)
	}
	if len(rowToCol) != size {
		return MatchResult{}, fmt.Errorf("solver returned %d rows, expected %d", len(rowToCol), size)
	}

	usedSeats := make([]bool, numSeats)
	for i, emp := range employees {
		j := rowToCol[i]
		if j < 0 || j >= numSeats || !cells[i*numSeats+j].eligible {
			// Padding column or an infeasible cell: no real seat for this employee
			result.Unassigned = append(result.Unassigned, emp.ID)
			continue
		}

		cell := cells[i*numSeats+j]
		result.Assignments = append(result.Assignments, Assignment{
			EmployeeID: emp.ID,
			SeatID:     seats[j].ID,
			Score:      cell.score,
			Reasons:    cell.reasons,
		})
		usedSeats[j] = true
	}

	for j, seat := range seats {
		if !usedSeats[j] {
			result.UnusedSeats = append(result.UnusedSeats, seat.ID)
		}
	}

	return result, nil
}
