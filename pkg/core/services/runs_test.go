package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/db"
)

func savedRuns() *mockDB {
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)

	return &mockDB{
		employees: []model.Employee{
			emp("e1", func(e *model.Employee) { e.FullName = "Ada Lovelace" }),
			emp("e2"),
		},
		seats: []model.Seat{seatIn("s1", "ZoneA"), seatIn("s2", "ZoneB")},
		runs: []db.ScheduleRun{
			{ID: "old", CreatedAt: older, Solver: "greedy", TeamTogetherMode: "soft", Days: []string{"Mon"}},
			{ID: "new", CreatedAt: newer, Solver: "hungarian", TeamTogetherMode: "hard", Days: []string{"Mon", "Tue"}, Violations: []string{"x"}},
		},
		assignments: map[string][]db.RunAssignment{
			"old": {{RunID: "old", Day: "Mon", EmployeeID: "e2", SeatID: "s1"}},
			"new": {
				{RunID: "new", Day: "Mon", EmployeeID: "e1", SeatID: "s2"},
				{RunID: "new", Day: "Mon", EmployeeID: "e2", SeatID: "s1"},
				{RunID: "new", Day: "Tue", EmployeeID: "e1", SeatID: "s9"},
			},
		},
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	summaries, err := ListRuns(context.Background(), savedRuns(), zap.NewNop())
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, map[string]int{"Mon": 2, "Tue": 1}, summaries[0].AssignedByDay)
	assert.Equal(t, 1, summaries[0].Violations)
	assert.Equal(t, "old", summaries[1].ID)
	assert.Equal(t, map[string]int{"Mon": 1}, summaries[1].AssignedByDay)
}

func TestListRuns_StoreError(t *testing.T) {
	_, err := ListRuns(context.Background(), &mockDB{getRunsErr: errStore}, zap.NewNop())
	assert.ErrorIs(t, err, errStore)
}

func TestListRuns_Empty(t *testing.T) {
	summaries, err := ListRuns(context.Background(), &mockDB{}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestPublishSchedule_LatestRun(t *testing.T) {
	published, err := PublishSchedule(context.Background(), savedRuns(), zap.NewNop(), "")
	require.NoError(t, err)

	assert.Equal(t, "new", published.RunID)
	assert.Equal(t, []string{"Mon", "Tue"}, published.Days)
	assert.Equal(t, []string{"x"}, published.Violations)
	assert.Equal(t, []PublishedScheduleRow{
		{SeatID: "s1", Zone: "ZoneA", Occupants: []string{"e2", ""}},
		{SeatID: "s2", Zone: "ZoneB", Occupants: []string{"Ada Lovelace", ""}},
		{SeatID: "s9", Zone: "", Occupants: []string{"", "Ada Lovelace"}},
	}, published.Rows)
}

func TestPublishSchedule_ByID(t *testing.T) {
	published, err := PublishSchedule(context.Background(), savedRuns(), zap.NewNop(), "old")
	require.NoError(t, err)

	assert.Equal(t, "old", published.RunID)
	assert.Equal(t, []string{"e2"}, published.Rows[0].Occupants)
	assert.Equal(t, []string{""}, published.Rows[1].Occupants)
}

func TestPublishSchedule_Errors(t *testing.T) {
	_, err := PublishSchedule(context.Background(), savedRuns(), zap.NewNop(), "missing")
	assert.ErrorContains(t, err, "schedule run not found")

	_, err = PublishSchedule(context.Background(), &mockDB{}, zap.NewNop(), "")
	assert.ErrorContains(t, err, "no schedule runs found")
}
