package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/db"
)

// PublishedScheduleRow is one seat of the seating chart
type PublishedScheduleRow struct {
	SeatID    string
	Zone      string
	Occupants []string // One entry per day, empty when the seat is free
}

// PublishedSchedule is a saved run laid out as a seating chart
type PublishedSchedule struct {
	RunID      string
	CreatedAt  time.Time
	Days       []string
	Rows       []PublishedScheduleRow
	Violations []string
}

// PublishScheduleStore defines the database operations needed for publishing a run
type PublishScheduleStore interface {
	db.RunStore
	RosterReader
}

// PublishSchedule builds the seating chart for a saved run.
// If runID is empty, it defaults to the latest run.
// Employees are shown by full name when the stored roster knows them.
func PublishSchedule(ctx context.Context, store PublishScheduleStore, logger *zap.Logger, runID string) (*PublishedSchedule, error) {
	logger.Debug("Starting publishSchedule", zap.String("run_id", runID))

	runs, err := store.GetScheduleRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule runs: %w", err)
	}

	run, err := findRun(runs, runID)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found target run", zap.String("id", run.ID), zap.Strings("days", run.Days))

	assignments, err := store.GetRunAssignments(ctx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch run assignments: %w", err)
	}

	roster, err := StoredRoster(ctx, store)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(roster.Employees))
	for _, emp := range roster.Employees {
		if emp.FullName != "" {
			names[emp.ID] = emp.FullName
		}
	}

	dayIndex := make(map[string]int, len(run.Days))
	for i, day := range run.Days {
		dayIndex[day] = i
	}

	rowsBySeat := make(map[string]*PublishedScheduleRow)
	rows := make([]*PublishedScheduleRow, 0, len(roster.Seats))
	addRow := func(seatID, zone string) *PublishedScheduleRow {
		row := &PublishedScheduleRow{SeatID: seatID, Zone: zone, Occupants: make([]string, len(run.Days))}
		rowsBySeat[seatID] = row
		rows = append(rows, row)
		return row
	}

	for _, seat := range roster.Seats {
		addRow(seat.ID, seat.Zone)
	}

	// Seats removed from the roster since the run keep their rows, after the current seats
	sorted := append([]db.RunAssignment(nil), assignments...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SeatID < sorted[j].SeatID })

	for _, a := range sorted {
		i, ok := dayIndex[a.Day]
		if !ok {
			logger.Warn("Skipping assignment for a day outside the run", zap.String("day", a.Day), zap.String("seat_id", a.SeatID))
			continue
		}

		row, ok := rowsBySeat[a.SeatID]
		if !ok {
			row = addRow(a.SeatID, "")
		}

		name, ok := names[a.EmployeeID]
		if !ok {
			name = a.EmployeeID
		}
		row.Occupants[i] = name
	}

	published := &PublishedSchedule{
		RunID:      run.ID,
		CreatedAt:  run.CreatedAt,
		Days:       run.Days,
		Rows:       make([]PublishedScheduleRow, 0, len(rows)),
		Violations: run.Violations,
	}
	for _, row := range rows {
		published.Rows = append(published.Rows, *row)
	}

	logger.Info("Published schedule built successfully",
		zap.String("run_id", run.ID),
		zap.Int("seats", len(published.Rows)),
		zap.Int("assignments", len(assignments)))

	return published, nil
}
