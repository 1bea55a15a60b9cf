package db

import (
	"context"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// RosterStore defines the interface for roster database operations
type RosterStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetSeats(ctx context.Context) ([]model.Seat, error)
	ReplaceRoster(ctx context.Context, employees []model.Employee, seats []model.Seat) error
}

// RunStore defines the interface for schedule run history
type RunStore interface {
	InsertScheduleRun(ctx context.Context, run *ScheduleRun, assignments []RunAssignment) error
	GetScheduleRuns(ctx context.Context) ([]ScheduleRun, error)
	GetRunAssignments(ctx context.Context, runID string) ([]RunAssignment, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	RosterStore
	RunStore
}
