package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

func TestGreedyMatch_PicksHighestScoringSeat(t *testing.T) {
	employees := []model.Employee{employee("e1", prefersWindow)}
	seats := []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA", window)}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "s2", result.Assignments[0].SeatID)
	assert.InDelta(t, 0.95, result.Assignments[0].Score, 1e-9)
	assert.Equal(t, []string{"s1"}, result.UnusedSeats)
	assert.Empty(t, result.Unassigned)
}

func TestGreedyMatch_TiesGoToFirstSeat(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2")}
	seats := []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA"), seat("s3", "ZoneA")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	assert.Equal(t, "s1", result.Assignments[0].SeatID)
	assert.Equal(t, "s2", result.Assignments[1].SeatID)
	assert.Equal(t, []string{"s3"}, result.UnusedSeats)
}

func TestGreedyMatch_NoEligibleSeatLeavesEmployeeUnassigned(t *testing.T) {
	employees := []model.Employee{employee("e1", needsAccessible), employee("e2")}
	seats := []model.Seat{seat("s1", "ZoneA")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"e1"}, result.Unassigned)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "e2", result.Assignments[0].EmployeeID)
	assert.Empty(t, result.UnusedSeats)
}

func TestGreedyMatch_MoreEmployeesThanSeats(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2"), employee("e3")}
	seats := []model.Seat{seat("s1", "ZoneA")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	assert.Len(t, result.Assignments, 1)
	assert.Equal(t, []string{"e2", "e3"}, result.Unassigned, "Later employees are starved in input order")
}

func TestGreedyMatch_EmptyInputs(t *testing.T) {
	result, err := newTestGreedy().Match(nil, nil, DefaultWeights(), nil)
	require.NoError(t, err)

	assert.NotNil(t, result.Assignments)
	assert.Empty(t, result.Assignments)
	assert.Empty(t, result.Unassigned)
	assert.Empty(t, result.UnusedSeats)
}

func TestGreedyMatch_CohesionBonusForTogetherTeams(t *testing.T) {
	employees := []model.Employee{
		employee("a1", inTeam("Alpha"), prefersZone("ZoneB")),
		employee("a2", inTeam("Alpha")),
	}
	seats := []model.Seat{seat("A1", "ZoneA"), seat("B1", "ZoneB"), seat("B2", "ZoneB")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), [][]string{{"Alpha"}})
	require.NoError(t, err)

	require.Len(t, result.Assignments, 2)
	assert.Equal(t, "B1", result.Assignments[0].SeatID)
	assert.Equal(t, "B2", result.Assignments[1].SeatID, "Second member should join the first in ZoneB")
	assert.InDelta(t, 0.75, result.Assignments[1].Reasons[ReasonTeamCohesion], 1e-9)
	assert.InDelta(t, 0.70, result.Assignments[1].Score, 1e-9)
}

func TestGreedyMatch_NoCohesionBonusForUndeclaredTeams(t *testing.T) {
	employees := []model.Employee{
		employee("a1", inTeam("Alpha"), prefersZone("ZoneB")),
		employee("a2", inTeam("Alpha")),
	}
	seats := []model.Seat{seat("A1", "ZoneA"), seat("B1", "ZoneB"), seat("B2", "ZoneB")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), [][]string{{"Beta"}})
	require.NoError(t, err)

	assert.Equal(t, "A1", result.Assignments[1].SeatID, "Without a bonus the tie goes to the first seat")
	assert.NotContains(t, result.Assignments[1].Reasons, ReasonTeamCohesion)
}

func TestGreedyMatch_CohesionCountsOwnTeamOnly(t *testing.T) {
	// Alpha and Beta share a together-group but the bonus counts same-team members only
	employees := []model.Employee{
		employee("b1", inTeam("Beta"), prefersZone("ZoneB")),
		employee("a1", inTeam("Alpha")),
	}
	seats := []model.Seat{seat("A1", "ZoneA"), seat("B1", "ZoneB"), seat("B2", "ZoneB")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), [][]string{{"Alpha", "Beta"}})
	require.NoError(t, err)

	assert.Equal(t, "A1", result.Assignments[1].SeatID)
}

func TestGreedyMatch_AccessibleSeatTakenByEarlierEmployee(t *testing.T) {
	// The first employee does not need accessibility; both seats tie for them so the
	// accessible seat (listed first) is taken and the second employee is starved.
	employees := []model.Employee{employee("regular"), employee("needs", needsAccessible)}
	seats := []model.Seat{seat("acc", "ZoneA", accessible), seat("plain", "ZoneA")}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	seatID, ok := seatFor(result, "regular")
	require.True(t, ok)
	assert.Equal(t, "acc", seatID)
	assert.Equal(t, []string{"needs"}, result.Unassigned)
}

func TestGreedyMatch_AccessibleEmployeeFirstGetsAccessibleSeat(t *testing.T) {
	employees := []model.Employee{employee("needs", needsAccessible), employee("regular")}
	seats := []model.Seat{seat("plain", "ZoneA"), seat("acc", "ZoneA", accessible)}

	result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	seatID, ok := seatFor(result, "needs")
	require.True(t, ok)
	assert.Equal(t, "acc", seatID)
	assert.InDelta(t, 1.45, result.Assignments[0].Score, 1e-9)
}

func TestGreedyMatch_OrderSensitivityKeepsEligibility(t *testing.T) {
	// Three employees, one needing accessibility, two seats with one accessible.
	// Every ordering must respect eligibility even though who is left out changes.
	base := []model.Employee{employee("x"), employee("needs", needsAccessible), employee("y")}
	seats := []model.Seat{seat("acc", "ZoneA", accessible), seat("plain", "ZoneA")}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	unassignedSets := map[string]bool{}
	for _, order := range orders {
		employees := []model.Employee{base[order[0]], base[order[1]], base[order[2]]}

		result, err := newTestGreedy().Match(employees, seats, DefaultWeights(), nil)
		require.NoError(t, err)

		assert.Empty(t, ValidateMatch(employees, seats, result, DefaultGate()))
		if seatID, ok := seatFor(result, "needs"); ok {
			assert.Equal(t, "acc", seatID)
		}
		unassignedSets[joinIDs(result.Unassigned)] = true
	}

	assert.Greater(t, len(unassignedSets), 1, "Input order should change who is left unassigned")
}

func TestGreedyMatch_Deterministic(t *testing.T) {
	employees, seats := randomRoster(7, 12, 10, true)
	matcher := newTestGreedy()

	first, err := matcher.Match(employees, seats, DefaultWeights(), [][]string{{"Alpha"}})
	require.NoError(t, err)
	second, err := matcher.Match(employees, seats, DefaultWeights(), [][]string{{"Alpha"}})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGreedyMatch_DoesNotMutateSeats(t *testing.T) {
	seats := []model.Seat{seat("s1", "ZoneA"), seat("s2", "ZoneA"), seat("s3", "ZoneA")}
	original := append([]model.Seat(nil), seats...)

	_, err := newTestGreedy().Match([]model.Employee{employee("e1")}, seats, DefaultWeights(), nil)
	require.NoError(t, err)

	assert.Equal(t, original, seats)
}

func joinIDs(ids []string) string {
	out := ""
	for _, id := range ids {
		out += id + ","
	}
	return out
}
