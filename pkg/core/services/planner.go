package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/internal/config"
	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/db"
	"github.com/Duaa3/seat-swarm/pkg/predict"
)

var (
	// ErrInvalidRequest wraps every rejection of caller input
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRunStoreUnavailable is returned when saving is requested without a database
	ErrRunStoreUnavailable = errors.New("schedule runs cannot be saved: no database configured")
)

var validate = validator.New()

// Settings are the engine defaults a Planner applies to requests that leave them out
type Settings struct {
	BaseWeights        placement.Weights
	DefaultSolver      placement.SolverName
	WeekSolver         placement.SolverName
	DeptDayCapPct      float64
	DefaultDayCapacity int
	WeekDays           []string
	TeamTogetherMode   placement.TeamTogetherMode
	OptimalEnabled     bool
}

// DefaultSettings mirrors config.Default
func DefaultSettings() Settings {
	settings, _ := SettingsFromConfig(config.Default())
	return settings
}

// SettingsFromConfig derives planner settings from the application configuration
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	weights, err := cfg.BaseWeights()
	if err != nil {
		return Settings{}, fmt.Errorf("invalid weights: %w", err)
	}

	days, err := cfg.WeekDays()
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		BaseWeights:        weights,
		DefaultSolver:      cfg.DefaultSolver,
		WeekSolver:         cfg.WeekSolver,
		DeptDayCapPct:      cfg.DeptDayCapPct,
		DefaultDayCapacity: cfg.DefaultDayCapacity,
		WeekDays:           days,
		TeamTogetherMode:   cfg.TeamTogetherMode,
		OptimalEnabled:     cfg.OptimalEnabled(),
	}, nil
}

// Planner runs single-day assignments, weekly schedules and predictions.
// It holds only immutable configuration and is safe for concurrent use.
type Planner struct {
	settings   Settings
	predictors *predict.Set
	scorer     *placement.Scorer
	gate       *placement.Gate
	runs       db.RunStore
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewPlanner creates a planner. predictors and runs may be nil.
func NewPlanner(settings Settings, predictors *predict.Set, runs db.RunStore, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}

	scorer := placement.NewScorer(predictors.Predictors(), logger)
	logger.Debug("Planner ready",
		zap.Strings("scoring_predictors", scorer.Predictors().Present()),
		zap.String("default_solver", string(settings.DefaultSolver)),
		zap.Bool("optimal_enabled", settings.OptimalEnabled))

	return &Planner{
		settings:   settings,
		predictors: predictors,
		scorer:     scorer,
		gate:       placement.DefaultGate(),
		runs:       runs,
		logger:     logger,
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// Settings returns the defaults this planner applies
func (p *Planner) Settings() Settings {
	return p.settings
}

func (p *Planner) matcher(name placement.SolverName) (placement.Matcher, error) {
	var solver placement.AssignmentSolver
	if p.settings.OptimalEnabled {
		solver = placement.HungarianSolver{}
	}
	return placement.NewMatcher(name, p.scorer, p.gate, solver)
}

// checkRoster validates employees and seats shared by every request type
func checkRoster(employees []model.Employee, seats []model.Seat) error {
	roster := model.Roster{Employees: employees, Seats: seats}
	if err := validate.Struct(roster); err != nil {
		return invalid(err)
	}
	if err := roster.CheckUniqueIDs(); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}
