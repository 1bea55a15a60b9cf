package predict

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/placement"
)

// Names under which loaded predictors are reported
const (
	NameOnsite  = "onsite"
	NameSeat    = "seat"
	NameProject = "project"
)

// Default artifact file names inside the model directory
const (
	DefaultOnsiteFile  = "onsite_model.yaml"
	DefaultSeatFile    = "seat_model.yaml"
	DefaultProjectFile = "project_model.yaml"
)

// Paths locates the model artifacts. Empty entries fall back to the default
// file name inside Dir.
type Paths struct {
	Dir     string
	Onsite  string
	Seat    string
	Project string
}

func (p Paths) resolve(explicit, defaultFile string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(p.Dir, defaultFile)
}

// Set holds whichever predictors were available at startup. A nil model means
// the predictor is absent. A Set is immutable once loaded.
type Set struct {
	onsite  *Model
	seat    *Model
	project *Model
}

// NewSet builds a set from already loaded models; any may be nil
func NewSet(onsite, seat, project *Model) *Set {
	return &Set{onsite: onsite, seat: seat, project: project}
}

// LoadSet loads every artifact found under paths. Missing files leave the
// predictor absent. A file that exists but cannot be loaded is logged and
// skipped so the engine still starts on heuristics alone.
func LoadSet(paths Paths, logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}

	load := func(name, path string, wantKind Kind) *Model {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			logger.Debug("Model file not found, predictor disabled", zap.String("model", name), zap.String("path", path))
			return nil
		}

		m, err := LoadModel(path)
		if err == nil && wantKind != "" && m.Kind != wantKind {
			err = fmt.Errorf("expected a %s model, got %s", wantKind, m.Kind)
		}
		if err != nil {
			logger.Warn("Failed to load model", zap.String("model", name), zap.String("path", path), zap.Error(err))
			return nil
		}

		logger.Info("Loaded model", zap.String("model", name), zap.String("path", path))
		return m
	}

	return &Set{
		onsite:  load(NameOnsite, paths.resolve(paths.Onsite, DefaultOnsiteFile), ""),
		seat:    load(NameSeat, paths.resolve(paths.Seat, DefaultSeatFile), KindLogistic),
		project: load(NameProject, paths.resolve(paths.Project, DefaultProjectFile), ""),
	}
}

// Loaded lists the names of the available predictors
func (s *Set) Loaded() []string {
	loaded := []string{}
	if s == nil {
		return loaded
	}
	if s.onsite != nil {
		loaded = append(loaded, NameOnsite)
	}
	if s.seat != nil {
		loaded = append(loaded, NameSeat)
	}
	if s.project != nil {
		loaded = append(loaded, NameProject)
	}
	return loaded
}

func (s *Set) HasOnsite() bool  { return s != nil && s.onsite != nil }
func (s *Set) HasSeat() bool    { return s != nil && s.seat != nil }
func (s *Set) HasProject() bool { return s != nil && s.project != nil }

// PredictOnsiteRatio evaluates the onsite ratio model
func (s *Set) PredictOnsiteRatio(features []float64) (float64, error) {
	if !s.HasOnsite() {
		return 0, errors.New("onsite ratio model not loaded")
	}
	return s.onsite.Predict(features)
}

// PredictSeatSatisfaction evaluates the seat satisfaction model, returning the
// probability that the employee is satisfied with the seat
func (s *Set) PredictSeatSatisfaction(features []float64) (float64, error) {
	if !s.HasSeat() {
		return 0, errors.New("seat satisfaction model not loaded")
	}
	return s.seat.Predict(features)
}

// PredictProjectCount evaluates the project count model
func (s *Set) PredictProjectCount(features []float64) (float64, error) {
	if !s.HasProject() {
		return 0, errors.New("project count model not loaded")
	}
	return s.project.Predict(features)
}

// Predictors exposes the loaded models as scoring capabilities. Absent models
// stay nil so the scorer skips their terms.
func (s *Set) Predictors() placement.Predictors {
	var p placement.Predictors
	if s.HasSeat() {
		p.SeatSatisfaction = s
	}
	if s.HasOnsite() {
		p.OnsiteRatio = s
	}
	return p
}
