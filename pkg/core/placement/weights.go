package placement

import (
	"fmt"
	"math"
	"sort"
)

// Weight keys accepted in override maps
const (
	KeySeatSatisfaction = "w_seat_satisfaction"
	KeyOnsiteRatio      = "w_onsite_ratio"
	KeyProjectPenalty   = "w_project_penalty"
	KeyWindow           = "w_window"
	KeyAccessible       = "w_accessible"
	KeyZone             = "w_zone"
	KeyZoneCohesion     = "w_zone_cohesion"
)

// Reason keys used in score breakdowns
const (
	ReasonSeatSatisfaction = "ml_seat_satisfaction"
	ReasonOnsiteRatio      = "ml_onsite_ratio"
	ReasonProjectPenalty   = "project_penalty"
	ReasonWindow           = "window_match"
	ReasonAccessibility    = "accessibility_match"
	ReasonZone             = "zone_match"
	ReasonTeamCohesion     = "team_cohesion"
)

// Weights holds the multipliers applied to each scoring factor
type Weights struct {
	// SeatSatisfaction multiplies the predicted seat satisfaction probability
	SeatSatisfaction float64 `json:"w_seat_satisfaction" yaml:"w_seat_satisfaction"`

	// OnsiteRatio multiplies the predicted onsite ratio
	OnsiteRatio float64 `json:"w_onsite_ratio" yaml:"w_onsite_ratio"`

	// ProjectPenalty is applied per project; usually negative to penalise overloaded employees
	ProjectPenalty float64 `json:"w_project_penalty" yaml:"w_project_penalty"`

	Window       float64 `json:"w_window" yaml:"w_window"`
	Accessible   float64 `json:"w_accessible" yaml:"w_accessible"`
	Zone         float64 `json:"w_zone" yaml:"w_zone"`
	ZoneCohesion float64 `json:"w_zone_cohesion" yaml:"w_zone_cohesion"`
}

// DefaultWeights returns the documented default weights
func DefaultWeights() Weights {
	return Weights{
		SeatSatisfaction: 3.0,
		OnsiteRatio:      2.0,
		ProjectPenalty:   -0.05,
		Window:           1.0,
		Accessible:       1.5,
		Zone:             0.5,
		ZoneCohesion:     0.75,
	}
}

func (w *Weights) field(key string) (*float64, bool) {
	switch key {
	case KeySeatSatisfaction:
		return &w.SeatSatisfaction, true
	case KeyOnsiteRatio:
		return &w.OnsiteRatio, true
	case KeyProjectPenalty:
		return &w.ProjectPenalty, true
	case KeyWindow:
		return &w.Window, true
	case KeyAccessible:
		return &w.Accessible, true
	case KeyZone:
		return &w.Zone, true
	case KeyZoneCohesion:
		return &w.ZoneCohesion, true
	}
	return nil, false
}

// WithOverrides returns a copy of w with the named weights replaced.
// Unknown keys and non-finite values are rejected.
func (w Weights) WithOverrides(overrides map[string]float64) (Weights, error) {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	// Sorted so the reported error is stable
	sort.Strings(keys)

	for _, key := range keys {
		value := overrides[key]
		target, ok := w.field(key)
		if !ok {
			return Weights{}, fmt.Errorf("unknown weight %q", key)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return Weights{}, fmt.Errorf("weight %q must be finite, got %v", key, value)
		}
		*target = value
	}

	return w, nil
}

// AsMap returns the weights keyed by their override names
func (w Weights) AsMap() map[string]float64 {
	return map[string]float64{
		KeySeatSatisfaction: w.SeatSatisfaction,
		KeyOnsiteRatio:      w.OnsiteRatio,
		KeyProjectPenalty:   w.ProjectPenalty,
		KeyWindow:           w.Window,
		KeyAccessible:       w.Accessible,
		KeyZone:             w.Zone,
		KeyZoneCohesion:     w.ZoneCohesion,
	}
}

// Breakdown is the additive decomposition of a score by reason
type Breakdown map[string]float64

// Total sums all contributions in the breakdown
func (b Breakdown) Total() float64 {
	total := 0.0
	for _, v := range b {
		total += v
	}
	return total
}
