package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/db"
)

// RunSummary describes a saved schedule run
type RunSummary struct {
	ID               string
	CreatedAt        time.Time
	Solver           string
	TeamTogetherMode string
	Days             []string
	AssignedByDay    map[string]int
	TotalEmployees   int
	TotalSeats       int
	Violations       int
}

// ListRuns returns saved schedule runs, newest first, with per-day assignment counts
func ListRuns(ctx context.Context, store db.RunStore, logger *zap.Logger) ([]RunSummary, error) {
	logger.Debug("Fetching schedule runs")
	runs, err := store.GetScheduleRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}

	summaries := make([]RunSummary, 0, len(runs))
	for _, run := range runs {
		assignments, err := store.GetRunAssignments(ctx, run.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch assignments for run %s: %w", run.ID, err)
		}

		assigned := make(map[string]int, len(run.Days))
		for _, day := range run.Days {
			assigned[day] = db.AssignedCount(assignments, day)
		}

		summaries = append(summaries, RunSummary{
			ID:               run.ID,
			CreatedAt:        run.CreatedAt,
			Solver:           run.Solver,
			TeamTogetherMode: run.TeamTogetherMode,
			Days:             run.Days,
			AssignedByDay:    assigned,
			TotalEmployees:   run.TotalEmployees,
			TotalSeats:       run.TotalSeats,
			Violations:       len(run.Violations),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	logger.Debug("Fetched schedule runs", zap.Int("count", len(summaries)))
	return summaries, nil
}

// findRun returns the run with runID, or the newest run when runID is empty
func findRun(runs []db.ScheduleRun, runID string) (*db.ScheduleRun, error) {
	if len(runs) == 0 {
		return nil, fmt.Errorf("no schedule runs found")
	}

	if runID == "" {
		latest := &runs[0]
		for i := range runs {
			if runs[i].CreatedAt.After(latest.CreatedAt) {
				latest = &runs[i]
			}
		}
		return latest, nil
	}

	for i := range runs {
		if runs[i].ID == runID {
			return &runs[i], nil
		}
	}
	return nil, fmt.Errorf("schedule run not found: %s", runID)
}
