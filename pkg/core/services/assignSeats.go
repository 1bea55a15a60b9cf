package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
)

// AssignRequest is a single-day seat assignment request
type AssignRequest struct {
	Employees []model.Employee   `json:"employees"`
	Seats     []model.Seat       `json:"seats"`
	Weights   map[string]float64 `json:"weights,omitempty"`

	// MaxAssignments limits matching to the first N employees; zero means no limit
	MaxAssignments int                  `json:"max_assignments,omitempty" validate:"gte=0"`
	Solver         placement.SolverName `json:"solver,omitempty" validate:"omitempty,oneof=greedy hungarian"`
}

// AssignMeta summarises a single-day run
type AssignMeta struct {
	Solver              placement.SolverName `json:"solver"`
	TotalEmployees      int                  `json:"total_employees"`
	ConsideredEmployees int                  `json:"considered_employees"`
	TotalSeats          int                  `json:"total_seats"`
	AssignmentRate      float64              `json:"assignment_rate"`
	TotalScore          float64              `json:"total_score"`
}

// AssignResponse is the result of a single-day assignment
type AssignResponse struct {
	Assignments         []placement.Assignment `json:"assignments"`
	UnassignedEmployees []string               `json:"unassigned_employees"`
	UnusedSeats         []string               `json:"unused_seats"`
	Meta                AssignMeta             `json:"meta"`
}

// AssignSeats matches employees to seats for one day
func (p *Planner) AssignSeats(ctx context.Context, req AssignRequest) (*AssignResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if err := checkRoster(req.Employees, req.Seats); err != nil {
		return nil, err
	}

	weights, err := p.settings.BaseWeights.WithOverrides(req.Weights)
	if err != nil {
		return nil, invalid(err)
	}

	solver := req.Solver
	if solver == "" {
		solver = p.settings.DefaultSolver
	}

	employees := req.Employees
	if req.MaxAssignments > 0 && len(employees) > req.MaxAssignments {
		employees = employees[:req.MaxAssignments]
	}

	p.logger.Debug("Assigning seats",
		zap.String("solver", string(solver)),
		zap.Int("employees", len(employees)),
		zap.Int("seats", len(req.Seats)),
		zap.Any("weights", weights.AsMap()))

	matcher, err := p.matcher(solver)
	if err != nil {
		return nil, invalid(err)
	}

	result, err := matcher.Match(employees, req.Seats, weights, nil)
	if err != nil {
		return nil, err
	}

	if verrs := placement.ValidateMatch(employees, req.Seats, result, p.gate); len(verrs) > 0 {
		for _, verr := range verrs {
			p.logger.Error("Assignment failed validation", zap.String("check", verr.Check), zap.String("description", verr.Description))
		}
	}

	rate := 0.0
	if len(req.Employees) > 0 {
		rate = float64(len(result.Assignments)) / float64(len(req.Employees))
	}

	p.logger.Info("Seats assigned",
		zap.String("solver", string(solver)),
		zap.Int("assigned", len(result.Assignments)),
		zap.Int("unassigned", len(result.Unassigned)))

	return &AssignResponse{
		Assignments:         result.Assignments,
		UnassignedEmployees: result.Unassigned,
		UnusedSeats:         result.UnusedSeats,
		Meta: AssignMeta{
			Solver:              solver,
			TotalEmployees:      len(req.Employees),
			ConsideredEmployees: len(employees),
			TotalSeats:          len(req.Seats),
			AssignmentRate:      rate,
			TotalScore:          result.TotalScore(),
		},
	}, nil
}
