package placement

import (
	"fmt"
	"math"
	"sort"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// nonPreferredDayFactor scales attendance propensity on days the employee did not ask for
const nonPreferredDayFactor = 0.6

// AttendancePropensity scores how strongly an employee should be brought in on day
func AttendancePropensity(emp model.Employee, day string) float64 {
	dayFactor := nonPreferredDayFactor
	if emp.PrefersDay(day) {
		dayFactor = 1.0
	}
	return emp.OnsiteRatio * dayFactor * (1 - emp.ClientSiteRatio)
}

// DepartmentLimit is the most employees one department may have in the office on a day
func DepartmentLimit(capacity int, deptCapPct float64) int {
	return int(math.Floor(float64(capacity) * deptCapPct))
}

// DepartmentViolation formats the message recorded when an employee is turned away by the department quota
func DepartmentViolation(dept, day string) string {
	return fmt.Sprintf("Department %s exceeded daily limit on %s", dept, day)
}

// SelectAttendance picks who comes in on day. Employees are ranked by attendance
// propensity (ties keep input order) and admitted until capacity is reached. An
// employee whose department is already at its quota is skipped with a violation
// and the scan continues.
func SelectAttendance(employees []model.Employee, day string, capacity int, deptCapPct float64) ([]model.Employee, []string) {
	type ranked struct {
		emp   model.Employee
		score float64
	}

	candidates := make([]ranked, len(employees))
	for i, emp := range employees {
		candidates[i] = ranked{emp: emp, score: AttendancePropensity(emp, day)}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	selected := []model.Employee{}
	violations := []string{}
	deptCounts := make(map[string]int)
	deptLimit := DepartmentLimit(capacity, deptCapPct)

	for _, c := range candidates {
		if len(selected) >= capacity {
			break
		}

		dept := c.emp.DepartmentOrUnknown()
		if deptCounts[dept] >= deptLimit {
			violations = append(violations, DepartmentViolation(dept, day))
			continue
		}

		selected = append(selected, c.emp)
		deptCounts[dept]++
	}

	return selected, violations
}
