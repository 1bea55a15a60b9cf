package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/db"
)

// RosterSource supplies employees and seats from an external system
type RosterSource interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	ListSeats(ctx context.Context) ([]model.Seat, error)
}

// RosterReader reads the stored roster
type RosterReader interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetSeats(ctx context.Context) ([]model.Seat, error)
}

// ImportedRoster reports what ImportRoster stored
type ImportedRoster struct {
	Employees int
	Seats     int
}

// LoadRosterFile reads a roster document. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadRosterFile(path string) (*model.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var roster model.Roster
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &roster)
	} else {
		err = yaml.Unmarshal(data, &roster)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	if err := checkRoster(roster.Employees, roster.Seats); err != nil {
		return nil, fmt.Errorf("roster file %s: %w", path, err)
	}

	return &roster, nil
}

// ImportRoster replaces the stored roster with the one supplied by source
func ImportRoster(ctx context.Context, source RosterSource, store db.RosterStore, logger *zap.Logger) (*ImportedRoster, error) {
	logger.Debug("Fetching employees")
	employees, err := source.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	logger.Debug("Fetching seats")
	seats, err := source.ListSeats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}

	if err := checkRoster(employees, seats); err != nil {
		return nil, err
	}

	if err := store.ReplaceRoster(ctx, employees, seats); err != nil {
		return nil, fmt.Errorf("failed to store roster: %w", err)
	}

	logger.Info("Roster imported", zap.Int("employees", len(employees)), zap.Int("seats", len(seats)))

	return &ImportedRoster{Employees: len(employees), Seats: len(seats)}, nil
}

// StoredRoster loads the roster saved by ImportRoster
func StoredRoster(ctx context.Context, store RosterReader) (*model.Roster, error) {
	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	seats, err := store.GetSeats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	return &model.Roster{Employees: employees, Seats: seats}, nil
}
