package db

import "time"

// ScheduleRun represents a saved weekly scheduling run
type ScheduleRun struct {
	ID               string
	CreatedAt        time.Time
	Solver           string
	TeamTogetherMode string
	DeptCapPct       float64
	Days             []string
	TotalEmployees   int
	TotalSeats       int
	Violations       []string
}

// RunAssignment represents one seat assignment within a saved run
type RunAssignment struct {
	RunID      string
	Day        string
	EmployeeID string
	SeatID     string
	Score      float64
}

// AssignedCount returns how many assignments belong to day
func AssignedCount(assignments []RunAssignment, day string) int {
	count := 0
	for _, a := range assignments {
		if a.Day == day {
			count++
		}
	}
	return count
}
