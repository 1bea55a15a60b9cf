package placement

import "github.com/Duaa3/seat-swarm/pkg/core/model"

// SeatSatisfactionPredictor estimates the probability that an employee is satisfied with a seat
type SeatSatisfactionPredictor interface {
	// PredictSeatSatisfaction returns a probability in [0, 1] for the given feature vector
	PredictSeatSatisfaction(features []float64) (float64, error)
}

// OnsiteRatioPredictor estimates the share of days an employee will spend in the office
type OnsiteRatioPredictor interface {
	PredictOnsiteRatio(features []float64) (float64, error)
}

// Predictors is the set of optional scoring contributors given to a Scorer.
// A nil member means the capability is not present; scoring then relies on the
// heuristic terms only.
type Predictors struct {
	SeatSatisfaction SeatSatisfactionPredictor
	OnsiteRatio      OnsiteRatioPredictor
}

// Present returns the names of the capabilities that are configured
func (p Predictors) Present() []string {
	present := []string{}
	if p.SeatSatisfaction != nil {
		present = append(present, "seat")
	}
	if p.OnsiteRatio != nil {
		present = append(present, "onsite")
	}
	return present
}

// SeatSatisfactionFeatures builds the feature vector consumed by seat satisfaction predictors:
// [onsite_ratio, project_count, is_window, is_accessible, floor]
func SeatSatisfactionFeatures(emp model.Employee, seat model.Seat) []float64 {
	return []float64{
		emp.OnsiteRatio,
		emp.ProjectCount,
		boolFeature(seat.IsWindow),
		boolFeature(seat.IsAccessible),
		float64(seat.Floor),
	}
}

// OnsiteRatioFeatures builds the feature vector consumed by onsite ratio predictors:
// [commute_minutes, availability_ratio, number of preferred days]
func OnsiteRatioFeatures(emp model.Employee) []float64 {
	return []float64{
		emp.CommuteMinutes,
		emp.AvailabilityRatio,
		float64(len(emp.PreferredDays)),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
