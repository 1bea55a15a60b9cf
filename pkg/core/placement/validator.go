package placement

import (
	"fmt"
	"math"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// MatchValidationError describes one broken invariant in a matching or schedule
type MatchValidationError struct {
	Day         string
	Check       string
	Description string
}

func (e MatchValidationError) Error() string {
	if e.Day == "" {
		return fmt.Sprintf("%s: %s", e.Check, e.Description)
	}
	return fmt.Sprintf("%s (%s): %s", e.Check, e.Day, e.Description)
}

// scoreTolerance absorbs float rounding between a score and the sum of its reasons
const scoreTolerance = 1e-9

// ValidateMatch checks a matching against the core invariants: every seat and every
// employee used at most once, ids known, every pair allowed by the gate and every
// score equal to the sum of its reasons.
// An empty slice means the matching is valid.
func ValidateMatch(employees []model.Employee, seats []model.Seat, result MatchResult, gate *Gate) []MatchValidationError {
	errors := []MatchValidationError{}

	employeesByID := make(map[string]model.Employee, len(employees))
	for _, emp := range employees {
		employeesByID[emp.ID] = emp
	}
	seatsByID := make(map[string]model.Seat, len(seats))
	for _, seat := range seats {
		seatsByID[seat.ID] = seat
	}

	seenEmployees := make(map[string]bool)
	seenSeats := make(map[string]bool)

	for _, a := range result.Assignments {
		if seenEmployees[a.EmployeeID] {
			errors = append(errors, MatchValidationError{
				Check:       "DoubleBooking",
				Description: fmt.Sprintf("employee %s assigned more than once", a.EmployeeID),
			})
		}
		seenEmployees[a.EmployeeID] = true

		if seenSeats[a.SeatID] {
			errors = append(errors, MatchValidationError{
				Check:       "DoubleBooking",
				Description: fmt.Sprintf("seat %s assigned more than once", a.SeatID),
			})
		}
		seenSeats[a.SeatID] = true

		emp, okEmp := employeesByID[a.EmployeeID]
		seat, okSeat := seatsByID[a.SeatID]
		if !okEmp || !okSeat {
			errors = append(errors, MatchValidationError{
				Check:       "UnknownID",
				Description: fmt.Sprintf("assignment %s -> %s references an unknown employee or seat", a.EmployeeID, a.SeatID),
			})
			continue
		}

		if rule := gate.FailedRule(emp, seat); rule != "" {
			errors = append(errors, MatchValidationError{
				Check:       "Eligibility",
				Description: fmt.Sprintf("employee %s cannot sit at seat %s (%s rule)", emp.ID, seat.ID, rule),
			})
		}

		if total := a.Reasons.Total(); math.Abs(total-a.Score) > scoreTolerance {
			errors = append(errors, MatchValidationError{
				Check:       "ScoreBreakdown",
				Description: fmt.Sprintf("assignment %s -> %s scores %.4f but its reasons add up to %.4f", a.EmployeeID, a.SeatID, a.Score, total),
			})
		}
	}

	return errors
}

// ValidateSchedule checks every day of a weekly result: attendance within capacity,
// departments within quota, and each day's matching valid.
func ValidateSchedule(in WeeklyInput, result *ScheduleResult, gate *Gate) []MatchValidationError {
	errors := []MatchValidationError{}

	employeesByID := make(map[string]model.Employee, len(in.Employees))
	for _, emp := range in.Employees {
		employeesByID[emp.ID] = emp
	}

	defaultCapacity := in.DefaultCapacity
	if defaultCapacity == 0 {
		defaultCapacity = DefaultDayCapacity
	}

	for _, day := range result.Days {
		capacity, ok := in.CapacityByDay[day]
		if !ok {
			capacity = defaultCapacity
		}

		attendance := result.Attendance[day]
		if len(attendance) > capacity {
			errors = append(errors, MatchValidationError{
				Day:         day,
				Check:       "Capacity",
				Description: fmt.Sprintf("%d employees admitted but capacity is %d", len(attendance), capacity),
			})
		}

		limit := DepartmentLimit(capacity, in.DeptCapPct)
		deptCounts := make(map[string]int)
		present := make([]model.Employee, 0, len(attendance))
		for _, id := range attendance {
			emp := employeesByID[id]
			present = append(present, emp)
			deptCounts[emp.DepartmentOrUnknown()]++
		}
		for dept, count := range deptCounts {
			if count > limit {
				errors = append(errors, MatchValidationError{
					Day:         day,
					Check:       "DepartmentQuota",
					Description: fmt.Sprintf("department %s has %d employees but limit is %d", dept, count, limit),
				})
			}
		}

		dayMatch := MatchResult{Assignments: result.Assignments[day]}
		for _, verr := range ValidateMatch(present, in.Seats, dayMatch, gate) {
			verr.Day = day
			errors = append(errors, verr)
		}
	}

	return errors
}
