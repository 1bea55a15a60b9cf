package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

func TestAttendancePropensity(t *testing.T) {
	tests := []struct {
		name     string
		emp      model.Employee
		day      string
		expected float64
	}{
		{
			name:     "preferred day",
			emp:      employee("e1", onsite(0.8), prefersDays("Mon")),
			day:      "Mon",
			expected: 0.8,
		},
		{
			name:     "non-preferred day",
			emp:      employee("e1", onsite(0.8), prefersDays("Mon")),
			day:      "Tue",
			expected: 0.48,
		},
		{
			name: "client site time reduces propensity",
			emp: func() model.Employee {
				e := employee("e1", onsite(0.8), prefersDays("Mon"))
				e.ClientSiteRatio = 0.25
				return e
			}(),
			day:      "Mon",
			expected: 0.6,
		},
		{
			name:     "fully remote",
			emp:      employee("e1", onsite(0)),
			day:      "Mon",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AttendancePropensity(tt.emp, tt.day), 1e-9)
		})
	}
}

func TestDepartmentLimit(t *testing.T) {
	assert.Equal(t, 30, DepartmentLimit(50, 0.6))
	assert.Equal(t, 1, DepartmentLimit(3, 0.6), "The limit rounds down")
	assert.Equal(t, 0, DepartmentLimit(0, 0.6))
	assert.Equal(t, 2, DepartmentLimit(2, 1.0))
}

func TestSelectAttendance_StopsAtCapacity(t *testing.T) {
	employees := []model.Employee{
		employee("low", onsite(0.2)),
		employee("high", onsite(0.9)),
		employee("mid", onsite(0.5)),
		employee("top", onsite(1.0)),
	}

	selected, violations := SelectAttendance(employees, "Mon", 2, 1.0)

	assert.Equal(t, []string{"top", "high"}, ids(selected))
	assert.Empty(t, violations)
}

func TestSelectAttendance_DepartmentQuota(t *testing.T) {
	employees := []model.Employee{
		employee("e1", inDept("Eng")),
		employee("e2", inDept("Eng")),
		employee("e3", inDept("Eng")),
	}

	selected, violations := SelectAttendance(employees, "Mon", 2, 0.5)

	assert.Equal(t, []string{"e1"}, ids(selected))
	assert.Equal(t, []string{
		"Department Eng exceeded daily limit on Mon",
		"Department Eng exceeded daily limit on Mon",
	}, violations, "Every turned-away employee is recorded and the scan continues")
}

func TestSelectAttendance_QuotaSkipLetsOtherDepartmentsIn(t *testing.T) {
	employees := []model.Employee{
		employee("eng1", inDept("Eng"), onsite(0.9)),
		employee("eng2", inDept("Eng"), onsite(0.8)),
		employee("ops1", inDept("Ops"), onsite(0.1)),
	}

	selected, violations := SelectAttendance(employees, "Mon", 2, 0.5)

	assert.Equal(t, []string{"eng1", "ops1"}, ids(selected))
	assert.Len(t, violations, 1)
}

func TestSelectAttendance_TiesKeepInputOrder(t *testing.T) {
	employees := []model.Employee{employee("c"), employee("a"), employee("b")}

	selected, _ := SelectAttendance(employees, "Mon", 3, 1.0)

	assert.Equal(t, []string{"c", "a", "b"}, ids(selected))
}

func TestSelectAttendance_MissingDepartmentCountsAsUnknown(t *testing.T) {
	employees := []model.Employee{employee("e1"), employee("e2")}

	selected, violations := SelectAttendance(employees, "Wed", 2, 0.5)

	assert.Len(t, selected, 1)
	assert.Equal(t, []string{"Department Unknown exceeded daily limit on Wed"}, violations)
}

func TestSelectAttendance_ZeroCapacity(t *testing.T) {
	selected, violations := SelectAttendance([]model.Employee{employee("e1")}, "Mon", 0, 0.6)

	assert.Empty(t, selected)
	assert.Empty(t, violations)
}

func ids(employees []model.Employee) []string {
	out := make([]string, len(employees))
	for i, emp := range employees {
		out[i] = emp.ID
	}
	return out
}
