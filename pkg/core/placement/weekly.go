package placement

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// TeamTogetherMode controls how team togetherness is enforced across a week
type TeamTogetherMode string

const (
	// TeamTogetherSoft relies on the greedy cohesion bonus only
	TeamTogetherSoft TeamTogetherMode = "soft"

	// TeamTogetherHard additionally reports team groups split across zones.
	// The matching itself is not altered.
	TeamTogetherHard TeamTogetherMode = "hard"
)

func (m TeamTogetherMode) IsValid() bool {
	return m == TeamTogetherSoft || m == TeamTogetherHard
}

// DefaultDayCapacity applies to days missing from the capacity map
const DefaultDayCapacity = 50

// DefaultDays is the working week used when no day sequence is given
var DefaultDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// WeeklyInput holds everything needed to schedule a week
type WeeklyInput struct {
	Employees     []model.Employee
	Seats         []model.Seat
	CapacityByDay map[string]int

	// DefaultCapacity applies to days missing from CapacityByDay; zero means DefaultDayCapacity
	DefaultCapacity int

	DeptCapPct    float64
	TogetherTeams [][]string
	Mode          TeamTogetherMode
	Weights       Weights
	Days          []string
}

// ScheduleResult is the outcome of a weekly run
type ScheduleResult struct {
	Days        []string
	Attendance  map[string][]string
	Assignments map[string][]Assignment
	Unassigned  map[string][]string
	Violations  []string
}

// WeeklyScheduler runs attendance selection and seat matching for each day of a week
type WeeklyScheduler struct {
	matcher Matcher
}

// NewWeeklyScheduler creates a weekly scheduler using matcher for each day
func NewWeeklyScheduler(matcher Matcher) *WeeklyScheduler {
	return &WeeklyScheduler{matcher: matcher}
}

// Schedule processes the days strictly in the given order. Violations accumulate
// in order and never discard a day's results. Only matcher errors (such as an
// unavailable solver) or cancellation of ctx abort the run.
func (s *WeeklyScheduler) Schedule(ctx context.Context, in WeeklyInput) (*ScheduleResult, error) {
	days := in.Days
	if len(days) == 0 {
		days = DefaultDays
	}

	defaultCapacity := in.DefaultCapacity
	if defaultCapacity == 0 {
		defaultCapacity = DefaultDayCapacity
	}

	result := &ScheduleResult{
		Days:        days,
		Attendance:  make(map[string][]string, len(days)),
		Assignments: make(map[string][]Assignment, len(days)),
		Unassigned:  make(map[string][]string, len(days)),
		Violations:  []string{},
	}

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		capacity, ok := in.CapacityByDay[day]
		if !ok {
			capacity = defaultCapacity
		}

		present, violations := SelectAttendance(in.Employees, day, capacity, in.DeptCapPct)
		result.Violations = append(result.Violations, violations...)

		match, err := s.matcher.Match(present, in.Seats, in.Weights, in.TogetherTeams)
		if err != nil {
			return nil, fmt.Errorf("failed to match seats for %s: %w", day, err)
		}

		if in.Mode == TeamTogetherHard {
			result.Violations = append(result.Violations, TeamSplitViolations(present, in.Seats, match, in.TogetherTeams, day)...)
		}

		attendance := make([]string, len(present))
		for i, emp := range present {
			attendance[i] = emp.ID
		}

		result.Attendance[day] = attendance
		result.Assignments[day] = match.Assignments
		result.Unassigned[day] = match.Unassigned
	}

	return result, nil
}

// TeamSplitViolations reports every team group whose seated members ended up in more
// than one zone. Only members that were actually given a seat are considered.
func TeamSplitViolations(present []model.Employee, seats []model.Seat, match MatchResult, togetherTeams [][]string, day string) []string {
	zoneBySeat := make(map[string]string, len(seats))
	for _, seat := range seats {
		zoneBySeat[seat.ID] = seat.Zone
	}

	seatByEmployee := make(map[string]string, len(match.Assignments))
	for _, a := range match.Assignments {
		seatByEmployee[a.EmployeeID] = a.SeatID
	}

	violations := []string{}
	for _, group := range togetherTeams {
		inGroup := make(map[string]bool, len(group))
		for _, team := range group {
			inGroup[team] = true
		}

		zones := map[string]bool{}
		for _, emp := range present {
			if emp.Team == "" || !inGroup[emp.Team] {
				continue
			}
			seatID, seated := seatByEmployee[emp.ID]
			if !seated {
				continue
			}
			zones[zoneBySeat[seatID]] = true
		}

		if len(zones) > 1 {
			zoneNames := make([]string, 0, len(zones))
			for zone := range zones {
				zoneNames = append(zoneNames, zone)
			}
			sort.Strings(zoneNames)

			violations = append(violations, fmt.Sprintf(
				"Hard constraint violated: team group [%s] split across zones [%s] on %s",
				strings.Join(group, ", "),
				strings.Join(zoneNames, ", "),
				day,
			))
		}
	}

	return violations
}
