package predict

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Kind is the functional form of a coefficient model
type Kind string

const (
	// KindLinear predicts intercept + coefficients·features
	KindLinear Kind = "linear"

	// KindLogistic predicts the sigmoid of the linear term, a probability in [0, 1]
	KindLogistic Kind = "logistic"
)

// ErrFeatureCount is returned when a feature vector does not match the model's coefficients
var ErrFeatureCount = errors.New("feature count does not match model")

// Model is a fitted coefficient model stored as a YAML artifact
type Model struct {
	Name         string    `yaml:"name"`
	Kind         Kind      `yaml:"kind" validate:"required,oneof=linear logistic"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients" validate:"required,min=1"`

	// Features names each coefficient, in order. Informational only.
	Features []string `yaml:"features,omitempty"`
}

var validate = validator.New()

// LoadModel reads and validates a model artifact
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	return ParseModel(data)
}

// ParseModel decodes and validates a YAML model artifact
func ParseModel(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("model validation failed: %w", err)
	}

	if len(m.Features) > 0 && len(m.Features) != len(m.Coefficients) {
		return nil, fmt.Errorf("model declares %d features but has %d coefficients", len(m.Features), len(m.Coefficients))
	}

	for i, c := range append([]float64{m.Intercept}, m.Coefficients...) {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("model coefficient %d is not finite", i)
		}
	}

	return &m, nil
}

// Predict evaluates the model on features
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, fmt.Errorf("%w: got %d features, expected %d", ErrFeatureCount, len(features), len(m.Coefficients))
	}

	z := m.Intercept
	for i, f := range features {
		z += m.Coefficients[i] * f
	}

	if m.Kind == KindLogistic {
		return 1 / (1 + math.Exp(-z)), nil
	}
	return z, nil
}
