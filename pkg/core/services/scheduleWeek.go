package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/db"
)

// ScheduleRequest is a weekly scheduling request
type ScheduleRequest struct {
	Employees        []model.Employee           `json:"employees"`
	Seats            []model.Seat               `json:"seats"`
	Weights          map[string]float64         `json:"weights,omitempty"`
	CapacityByDay    map[string]int             `json:"capacity_by_day,omitempty" validate:"dive,gte=0"`
	DeptDayCapPct    *float64                   `json:"dept_day_cap_pct,omitempty" validate:"omitempty,gte=0,lte=1"`
	TogetherTeams    [][]string                 `json:"together_teams,omitempty"`
	TeamTogetherMode placement.TeamTogetherMode `json:"team_together_mode,omitempty" validate:"omitempty,oneof=soft hard"`
	Days             []string                   `json:"days,omitempty" validate:"dive,required"`
	Solver           placement.SolverName       `json:"solver,omitempty" validate:"omitempty,oneof=greedy hungarian"`

	// Save stores the run and its assignments in the run store
	Save bool `json:"save,omitempty"`
}

// ScheduleMeta summarises a weekly run
type ScheduleMeta struct {
	Solver           placement.SolverName       `json:"solver"`
	TotalEmployees   int                        `json:"total_employees"`
	TotalSeats       int                        `json:"total_seats"`
	DeptCapPct       float64                    `json:"dept_cap_pct"`
	TeamTogetherMode placement.TeamTogetherMode `json:"team_together_mode"`
	RunID            string                     `json:"run_id,omitempty"`
}

// ScheduleResponse is the result of a weekly run
type ScheduleResponse struct {
	Days                []string                          `json:"days"`
	Attendance          map[string][]string               `json:"attendance"`
	Assignments         map[string][]placement.Assignment `json:"assignments"`
	UnassignedEmployees map[string][]string               `json:"unassigned_employees"`
	Violations          []string                          `json:"violations"`
	Meta                ScheduleMeta                      `json:"meta"`
}

// ScheduleWeek selects attendance and assigns seats for every requested day
func (p *Planner) ScheduleWeek(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if err := checkRoster(req.Employees, req.Seats); err != nil {
		return nil, err
	}
	if req.Save && p.runs == nil {
		return nil, ErrRunStoreUnavailable
	}

	weights, err := p.settings.BaseWeights.WithOverrides(req.Weights)
	if err != nil {
		return nil, invalid(err)
	}

	in, solver, err := p.weeklyInput(req, weights)
	if err != nil {
		return nil, err
	}

	matcher, err := p.matcher(solver)
	if err != nil {
		return nil, invalid(err)
	}

	p.logger.Debug("Scheduling week",
		zap.String("solver", string(solver)),
		zap.Strings("days", in.Days),
		zap.String("mode", string(in.Mode)),
		zap.Any("weights", weights.AsMap()))

	result, err := placement.NewWeeklyScheduler(matcher).Schedule(ctx, in)
	if err != nil {
		return nil, err
	}

	if verrs := placement.ValidateSchedule(in, result, p.gate); len(verrs) > 0 {
		for _, verr := range verrs {
			p.logger.Error("Schedule failed validation", zap.String("day", verr.Day), zap.String("check", verr.Check), zap.String("description", verr.Description))
		}
	}

	resp := &ScheduleResponse{
		Days:                result.Days,
		Attendance:          result.Attendance,
		Assignments:         result.Assignments,
		UnassignedEmployees: result.Unassigned,
		Violations:          result.Violations,
		Meta: ScheduleMeta{
			Solver:           solver,
			TotalEmployees:   len(req.Employees),
			TotalSeats:       len(req.Seats),
			DeptCapPct:       in.DeptCapPct,
			TeamTogetherMode: in.Mode,
		},
	}

	if req.Save {
		runID, err := p.saveRun(ctx, resp)
		if err != nil {
			return nil, err
		}
		resp.Meta.RunID = runID
	}

	p.logger.Info("Week scheduled",
		zap.String("solver", string(solver)),
		zap.Int("days", len(resp.Days)),
		zap.Int("violations", len(resp.Violations)),
		zap.String("run_id", resp.Meta.RunID))

	return resp, nil
}

// weeklyInput fills request gaps from the planner settings
func (p *Planner) weeklyInput(req ScheduleRequest, weights placement.Weights) (placement.WeeklyInput, placement.SolverName, error) {
	days := req.Days
	if len(days) == 0 {
		days = p.settings.WeekDays
	}
	seen := make(map[string]bool, len(days))
	for _, day := range days {
		if seen[day] {
			return placement.WeeklyInput{}, "", invalid(fmt.Errorf("day %q listed more than once", day))
		}
		seen[day] = true
	}

	deptCapPct := p.settings.DeptDayCapPct
	if req.DeptDayCapPct != nil {
		deptCapPct = *req.DeptDayCapPct
	}

	mode := req.TeamTogetherMode
	if mode == "" {
		mode = p.settings.TeamTogetherMode
	}

	solver := req.Solver
	if solver == "" {
		solver = p.settings.WeekSolver
	}

	return placement.WeeklyInput{
		Employees:       req.Employees,
		Seats:           req.Seats,
		CapacityByDay:   req.CapacityByDay,
		DefaultCapacity: p.settings.DefaultDayCapacity,
		DeptCapPct:      deptCapPct,
		TogetherTeams:   req.TogetherTeams,
		Mode:            mode,
		Weights:         weights,
		Days:            days,
	}, solver, nil
}

func (p *Planner) saveRun(ctx context.Context, resp *ScheduleResponse) (string, error) {
	run := &db.ScheduleRun{
		ID:               p.newID(),
		CreatedAt:        p.now(),
		Solver:           string(resp.Meta.Solver),
		TeamTogetherMode: string(resp.Meta.TeamTogetherMode),
		DeptCapPct:       resp.Meta.DeptCapPct,
		Days:             resp.Days,
		TotalEmployees:   resp.Meta.TotalEmployees,
		TotalSeats:       resp.Meta.TotalSeats,
		Violations:       resp.Violations,
	}

	assignments := []db.RunAssignment{}
	for _, day := range resp.Days {
		for _, a := range resp.Assignments[day] {
			assignments = append(assignments, db.RunAssignment{
				RunID:      run.ID,
				Day:        day,
				EmployeeID: a.EmployeeID,
				SeatID:     a.SeatID,
				Score:      a.Score,
			})
		}
	}

	if err := p.runs.InsertScheduleRun(ctx, run, assignments); err != nil {
		return "", fmt.Errorf("failed to save schedule run: %w", err)
	}

	p.logger.Debug("Saved schedule run", zap.String("run_id", run.ID), zap.Int("assignments", len(assignments)))
	return run.ID, nil
}
