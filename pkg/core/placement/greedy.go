package placement

import (
	"math"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// GreedyMatcher seats employees one at a time in the order given, never revisiting a choice.
// Reordering the input can change who ends up unassigned; this is accepted in exchange
// for speed and explainable, reproducible results.
type GreedyMatcher struct {
	scorer *Scorer
	gate   *Gate
}

// NewGreedyMatcher creates a greedy matcher
func NewGreedyMatcher(scorer *Scorer, gate *Gate) *GreedyMatcher {
	return &GreedyMatcher{scorer: scorer, gate: gate}
}

func (m *GreedyMatcher) Name() SolverName {
	return SolverGreedy
}

// zoneTally counts, per together-team, how many members are already seated in each zone.
// It lives for a single Match call.
type zoneTally map[string]map[string]int

func newZoneTally(togetherTeams [][]string) zoneTally {
	tally := zoneTally{}
	for _, group := range togetherTeams {
		for _, team := range group {
			tally[team] = map[string]int{}
		}
	}
	return tally
}

func (t zoneTally) tracks(team string) bool {
	_, ok := t[team]
	return ok
}

func (t zoneTally) count(team, zone string) int {
	return t[team][zone]
}

func (t zoneTally) record(team, zone string) {
	if zones, ok := t[team]; ok {
		zones[zone]++
	}
}

// Match assigns each employee the highest scoring eligible seat still available.
// Ties go to the seat appearing first in seats.
func (m *GreedyMatcher) Match(employees []model.Employee, seats []model.Seat, weights Weights, togetherTeams [][]string) (MatchResult, error) {
	result := newMatchResult()
	tally := newZoneTally(togetherTeams)

	available := make([]model.Seat, len(seats))
	copy(available, seats)

	for _, emp := range employees {
		bestIdx := -1
		bestScore := math.Inf(-1)
		var bestReasons Breakdown

		for i, seat := range available {
			if !m.gate.IsEligible(emp, seat) {
				continue
			}

			teamBonus := 0.0
			if emp.Team != "" && tally.tracks(emp.Team) {
				teamBonus = float64(tally.count(emp.Team, seat.Zone)) * weights.ZoneCohesion
			}

			score, reasons := m.scorer.Score(emp, seat, weights, teamBonus)
			if score > bestScore {
				bestIdx = i
				bestScore = score
				bestReasons = reasons
			}
		}

		if bestIdx < 0 {
			result.Unassigned = append(result.Unassigned, emp.ID)
			continue
		}

		chosen := available[bestIdx]
		result.Assignments = append(result.Assignments, Assignment{
			EmployeeID: emp.ID,
			SeatID:     chosen.ID,
			Score:      bestScore,
			Reasons:    bestReasons,
		})

		// Remove while keeping order so later tie-breaks still follow the input seat order
		available = append(available[:bestIdx], available[bestIdx+1:]...)

		if emp.Team != "" {
			tally.record(emp.Team, chosen.Zone)
		}
	}

	for _, seat := range available {
		result.UnusedSeats = append(result.UnusedSeats, seat.ID)
	}

	return result, nil
}
