package postgres

import (
	"context"
	"fmt"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// GetEmployees retrieves all employees in the order they were imported
func (d *DB) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT employee_id, full_name, department, team, priority_level, preferred_work_mode,
		       needs_accessible, prefer_window, preferred_zone, preferred_days,
		       client_site_ratio, commute_minutes, availability_ratio, onsite_ratio,
		       project_count, extra
		FROM employee
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		var workMode string
		if err := rows.Scan(
			&e.ID, &e.FullName, &e.Department, &e.Team, &e.PriorityLevel, &workMode,
			&e.NeedsAccessible, &e.PreferWindow, &e.PreferredZone, &e.PreferredDays,
			&e.ClientSiteRatio, &e.CommuteMinutes, &e.AvailabilityRatio, &e.OnsiteRatio,
			&e.ProjectCount, &e.Extra,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.PreferredWorkMode = model.WorkMode(workMode)
		if e.PreferredDays == nil {
			e.PreferredDays = []string{}
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetSeats retrieves all seats in the order they were imported
func (d *DB) GetSeats(ctx context.Context) ([]model.Seat, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT seat_id, floor, zone, is_accessible, is_window, x, y
		FROM seat
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seats: %w", err)
	}
	defer rows.Close()

	seats := []model.Seat{}
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.Floor, &s.Zone, &s.IsAccessible, &s.IsWindow, &s.X, &s.Y); err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seats: %w", err)
	}

	return seats, nil
}

// ReplaceRoster swaps the stored roster for the given employees and seats in one
// transaction. Input order is kept so matching stays reproducible.
func (d *DB) ReplaceRoster(ctx context.Context, employees []model.Employee, seats []model.Seat) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM employee`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM seat`); err != nil {
		return fmt.Errorf("failed to clear seats: %w", err)
	}

	for i, e := range employees {
		preferredDays := e.PreferredDays
		if preferredDays == nil {
			preferredDays = []string{}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO employee (
				employee_id, position, full_name, department, team, priority_level,
				preferred_work_mode, needs_accessible, prefer_window, preferred_zone,
				preferred_days, client_site_ratio, commute_minutes, availability_ratio,
				onsite_ratio, project_count, extra
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`, e.ID, i, e.FullName, e.Department, e.Team, e.PriorityLevel,
			string(e.PreferredWorkMode), e.NeedsAccessible, e.PreferWindow, e.PreferredZone,
			preferredDays, e.ClientSiteRatio, e.CommuteMinutes, e.AvailabilityRatio,
			e.OnsiteRatio, e.ProjectCount, e.Extra)
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.ID, err)
		}
	}

	for i, s := range seats {
		_, err := tx.Exec(ctx, `
			INSERT INTO seat (seat_id, position, floor, zone, is_accessible, is_window, x, y)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, i, s.Floor, s.Zone, s.IsAccessible, s.IsWindow, s.X, s.Y)
		if err != nil {
			return fmt.Errorf("failed to insert seat %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
