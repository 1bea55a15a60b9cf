package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/Duaa3/seat-swarm/pkg/core/placement"
)

const (
	configBaseName = "seat_swarm_config"
	envPrefix      = "SEAT_SWARM_"

	// DefaultWeekRule yields the Monday to Friday working week
	DefaultWeekRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"
)

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr                   string `yaml:"addr" env:"ADDR" validate:"required"`
	ReadTimeoutSeconds     int    `yaml:"readTimeoutSeconds" validate:"gte=0"`
	WriteTimeoutSeconds    int    `yaml:"writeTimeoutSeconds" validate:"gte=0"`
	ShutdownTimeoutSeconds int    `yaml:"shutdownTimeoutSeconds" validate:"gte=0"`
}

// DatabaseConfig configures the Postgres roster and run store.
// An empty DSN disables persistence.
type DatabaseConfig struct {
	DSN      string `yaml:"dsn,omitempty" env:"DSN"`
	MaxConns int32  `yaml:"maxConns,omitempty" validate:"gte=0"`
}

// PredictorsConfig locates the predictor model artifacts
type PredictorsConfig struct {
	ModelDir     string `yaml:"modelDir" env:"MODEL_DIR"`
	OnsiteModel  string `yaml:"onsiteModel,omitempty"`
	SeatModel    string `yaml:"seatModel,omitempty"`
	ProjectModel string `yaml:"projectModel,omitempty"`
}

// SheetsConfig names the spreadsheets used for roster import and schedule publishing
type SheetsConfig struct {
	RosterSheetID   string `yaml:"rosterSheetID,omitempty"`
	EmployeesTab    string `yaml:"employeesTab,omitempty"`
	SeatsTab        string `yaml:"seatsTab,omitempty"`
	ScheduleSheetID string `yaml:"scheduleSheetID,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Weights              map[string]float64         `yaml:"weights,omitempty"`
	DefaultSolver        placement.SolverName       `yaml:"defaultSolver" validate:"required,oneof=greedy hungarian"`
	WeekSolver           placement.SolverName       `yaml:"weekSolver" validate:"required,oneof=greedy hungarian"`
	DeptDayCapPct        float64                    `yaml:"deptDayCapPct" validate:"gt=0,lte=1"`
	DefaultDayCapacity   int                        `yaml:"defaultDayCapacity" validate:"gt=0"`
	WeekRule             string                     `yaml:"weekRule" validate:"required"`
	TeamTogetherMode     placement.TeamTogetherMode `yaml:"teamTogetherMode" validate:"required,oneof=soft hard"`
	OptimalSolverEnabled *bool                      `yaml:"optimalSolverEnabled,omitempty"`
	Predictors           PredictorsConfig           `yaml:"predictors"`
	Server               ServerConfig               `yaml:"server" envPrefix:"SERVER_"`
	Database             DatabaseConfig             `yaml:"database" envPrefix:"DATABASE_"`
	Sheets               SheetsConfig               `yaml:"sheets"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no file overrides a setting
func Default() *Config {
	return &Config{
		DefaultSolver:      placement.SolverGreedy,
		WeekSolver:         placement.SolverHungarian,
		DeptDayCapPct:      0.60,
		DefaultDayCapacity: placement.DefaultDayCapacity,
		WeekRule:           DefaultWeekRule,
		TeamTogetherMode:   placement.TeamTogetherSoft,
		Predictors: PredictorsConfig{
			ModelDir: "models",
		},
		Server: ServerConfig{
			Addr:                   ":8000",
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    30,
			ShutdownTimeoutSeconds: 10,
		},
		Sheets: SheetsConfig{
			EmployeesTab: "Employees",
			SeatsTab:     "Seats",
		},
	}
}

// Load loads and validates the configuration from seat_swarm_config.yaml.
// It looks for the config file in the current directory first, then in the user's home directory.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for an environment.
// For example, env="test" looks for "seat_swarm_config.test.yaml".
func LoadWithEnv(environment string) (*Config, error) {
	configPath, err := findConfigFile(configFileName(environment))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads the configuration from a specific path, applies
// environment variable overrides and validates the result
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnvOverrides overwrites settings from SEAT_SWARM_* environment variables
func ApplyEnvOverrides(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return fmt.Errorf("failed to apply environment overrides: %w", aggErr.Errors[0])
		}
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// Validate validates the configuration struct, the weight overrides and the week rule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := cfg.BaseWeights(); err != nil {
		return fmt.Errorf("invalid weights: %w", err)
	}

	if _, err := cfg.WeekDays(); err != nil {
		return err
	}

	return nil
}

// BaseWeights returns the default scoring weights with the configured overrides applied
func (c *Config) BaseWeights() (placement.Weights, error) {
	return placement.DefaultWeights().WithOverrides(c.Weights)
}

// OptimalEnabled reports whether the hungarian solver may be used. It defaults to true.
func (c *Config) OptimalEnabled() bool {
	return c.OptimalSolverEnabled == nil || *c.OptimalSolverEnabled
}

// weekAnchor is a Monday; week rules are expanded over the seven days starting here
var weekAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// WeekDays expands WeekRule over one week into day labels ("Mon", "Tue", ...)
func (c *Config) WeekDays() ([]string, error) {
	opt, err := rrule.StrToROption(c.WeekRule)
	if err != nil {
		return nil, fmt.Errorf("invalid weekRule: %w", err)
	}
	opt.Dtstart = weekAnchor

	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid weekRule: %w", err)
	}

	days := []string{}
	seen := make(map[string]bool)
	for _, occurrence := range rule.Between(weekAnchor, weekAnchor.AddDate(0, 0, 6), true) {
		label := occurrence.Format("Mon")
		if !seen[label] {
			seen[label] = true
			days = append(days, label)
		}
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("weekRule %q yields no days", c.WeekRule)
	}

	return days, nil
}

func configFileName(environment string) string {
	if environment == "" {
		return configBaseName + ".yaml"
	}
	return configBaseName + "." + environment + ".yaml"
}

// findConfigFile searches for fileName in the current directory and the home directory
func findConfigFile(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
