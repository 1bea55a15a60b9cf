package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Duaa3/seat-swarm/pkg/db"
)

// InsertScheduleRun stores a run and its assignments in one transaction
func (d *DB) InsertScheduleRun(ctx context.Context, run *db.ScheduleRun, assignments []db.RunAssignment) error {
	runID, err := uuid.Parse(run.ID)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", run.ID, err)
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	violations := run.Violations
	if violations == nil {
		violations = []string{}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule_run (id, created_at, solver, team_together_mode, dept_cap_pct, days, total_employees, total_seats, violations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, runID, run.CreatedAt.UTC(), run.Solver, run.TeamTogetherMode, run.DeptCapPct, run.Days, run.TotalEmployees, run.TotalSeats, violations)
	if err != nil {
		return fmt.Errorf("failed to insert schedule run: %w", err)
	}

	if len(assignments) > 0 {
		rows := make([][]any, len(assignments))
		for i, a := range assignments {
			rows[i] = []any{runID, int32(i), a.Day, a.EmployeeID, a.SeatID, a.Score}
		}

		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"schedule_assignment"},
			[]string{"run_id", "position", "day", "employee_id", "seat_id", "score"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("failed to insert schedule assignments: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetScheduleRuns retrieves all saved runs, newest first
func (d *DB) GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, created_at, solver, team_together_mode, dept_cap_pct, days, total_employees, total_seats, violations
		FROM schedule_run
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule runs: %w", err)
	}
	defer rows.Close()

	runs := []db.ScheduleRun{}
	for rows.Next() {
		var r db.ScheduleRun
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Solver, &r.TeamTogetherMode, &r.DeptCapPct, &r.Days, &r.TotalEmployees, &r.TotalSeats, &r.Violations); err != nil {
			return nil, fmt.Errorf("failed to scan schedule run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule runs: %w", err)
	}

	return runs, nil
}

// GetRunAssignments retrieves the assignments of one run in their original order
func (d *DB) GetRunAssignments(ctx context.Context, runID string) ([]db.RunAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT run_id::text, day, employee_id, seat_id, score
		FROM schedule_assignment
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run assignments: %w", err)
	}
	defer rows.Close()

	assignments := []db.RunAssignment{}
	for rows.Next() {
		var a db.RunAssignment
		if err := rows.Scan(&a.RunID, &a.Day, &a.EmployeeID, &a.SeatID, &a.Score); err != nil {
			return nil, fmt.Errorf("failed to scan run assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run assignments: %w", err)
	}

	return assignments, nil
}
