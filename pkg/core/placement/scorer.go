package placement

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// Scorer computes compatibility scores for (employee, seat) pairs
type Scorer struct {
	predictors Predictors
	logger     *zap.Logger
}

// NewScorer creates a scorer with the given optional predictors.
// A nil logger discards predictor failure reports.
func NewScorer(predictors Predictors, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		predictors: predictors,
		logger:     logger,
	}
}

// Predictors returns the scorer's configured predictors
func (s *Scorer) Predictors() Predictors {
	return s.predictors
}

// Score returns the total compatibility score of placing emp at seat and the
// contribution of each factor. teamBonus is the cohesion bonus computed by the
// caller and is only included when positive.
func (s *Scorer) Score(emp model.Employee, seat model.Seat, weights Weights, teamBonus float64) (float64, Breakdown) {
	reasons := Breakdown{}
	total := 0.0

	add := func(reason string, value float64) {
		total += value
		reasons[reason] = value
	}

	if s.predictors.SeatSatisfaction != nil {
		prob, err := s.predictSeatSatisfaction(emp, seat)
		if err != nil {
			s.logger.Warn("Seat satisfaction prediction skipped",
				zap.String("employee_id", emp.ID),
				zap.String("seat_id", seat.ID),
				zap.Error(err))
		} else {
			add(ReasonSeatSatisfaction, prob*weights.SeatSatisfaction)
		}
	}

	if s.predictors.OnsiteRatio != nil {
		ratio, err := s.predictOnsiteRatio(emp)
		if err != nil {
			s.logger.Warn("Onsite ratio prediction skipped",
				zap.String("employee_id", emp.ID),
				zap.Error(err))
		} else {
			add(ReasonOnsiteRatio, ratio*weights.OnsiteRatio)
		}
	}

	add(ReasonProjectPenalty, emp.ProjectCount*weights.ProjectPenalty)

	if emp.PreferWindow && seat.IsWindow {
		add(ReasonWindow, weights.Window)
	}

	if emp.NeedsAccessible && seat.IsAccessible {
		add(ReasonAccessibility, weights.Accessible)
	}

	if emp.PreferredZone != "" && emp.PreferredZone == seat.Zone {
		add(ReasonZone, weights.Zone)
	}

	if teamBonus > 0 {
		add(ReasonTeamCohesion, teamBonus)
	}

	return total, reasons
}

func (s *Scorer) predictSeatSatisfaction(emp model.Employee, seat model.Seat) (prob float64, err error) {
	defer recoverPrediction(&err)

	prob, err = s.predictors.SeatSatisfaction.PredictSeatSatisfaction(SeatSatisfactionFeatures(emp, seat))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return 0, fmt.Errorf("probability %v outside [0, 1]", prob)
	}
	return prob, nil
}

func (s *Scorer) predictOnsiteRatio(emp model.Employee) (ratio float64, err error) {
	defer recoverPrediction(&err)

	ratio, err = s.predictors.OnsiteRatio.PredictOnsiteRatio(OnsiteRatioFeatures(emp))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("non-finite prediction %v", ratio)
	}
	return ratio, nil
}

// recoverPrediction turns a panicking predictor into an ordinary error
func recoverPrediction(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("predictor panicked: %v", r)
	}
}
