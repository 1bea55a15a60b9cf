package model

import (
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// WorkMode is an employee's preferred way of working
type WorkMode string

const (
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeRemote WorkMode = "remote"
)

func (m WorkMode) IsValid() bool {
	return m == WorkModeOnsite || m == WorkModeHybrid || m == WorkModeRemote
}

// UnknownDepartment is used for employees without a department
const UnknownDepartment = "Unknown"

// DefaultZone is the zone given to seats that do not declare one
const DefaultZone = "ZoneA"

// Employee represents a person who may be given a seat
type Employee struct {
	ID                string         `json:"employee_id" yaml:"employee_id" validate:"required"`
	FullName          string         `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Department        string         `json:"department,omitempty" yaml:"department,omitempty"`
	Team              string         `json:"team,omitempty" yaml:"team,omitempty"`
	PriorityLevel     float64        `json:"priority_level" yaml:"priority_level"`
	PreferredWorkMode WorkMode       `json:"preferred_work_mode" yaml:"preferred_work_mode" validate:"omitempty,oneof=onsite hybrid remote"`
	NeedsAccessible   bool           `json:"needs_accessible" yaml:"needs_accessible"`
	PreferWindow      bool           `json:"prefer_window" yaml:"prefer_window"`
	PreferredZone     string         `json:"preferred_zone,omitempty" yaml:"preferred_zone,omitempty"`
	PreferredDays     []string       `json:"preferred_days" yaml:"preferred_days"`
	ClientSiteRatio   float64        `json:"client_site_ratio" yaml:"client_site_ratio" validate:"gte=0,lte=1"`
	CommuteMinutes    float64        `json:"commute_minutes" yaml:"commute_minutes" validate:"gte=0"`
	AvailabilityRatio float64        `json:"availability_ratio" yaml:"availability_ratio" validate:"gte=0,lte=1"`
	OnsiteRatio       float64        `json:"onsite_ratio" yaml:"onsite_ratio" validate:"gte=0,lte=1"`
	ProjectCount      float64        `json:"project_count" yaml:"project_count" validate:"gte=0"`
	Extra             map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// NewEmployee returns an employee with the documented defaults filled in
func NewEmployee(id string) Employee {
	return Employee{
		ID:                id,
		PriorityLevel:     1.0,
		PreferredWorkMode: WorkModeHybrid,
		PreferredDays:     []string{},
		CommuteMinutes:    30.0,
		AvailabilityRatio: 1.0,
		OnsiteRatio:       0.5,
		ProjectCount:      1.0,
	}
}

// DepartmentOrUnknown returns the department, or UnknownDepartment when empty
func (e Employee) DepartmentOrUnknown() string {
	if e.Department == "" {
		return UnknownDepartment
	}
	return e.Department
}

// PrefersDay reports whether day is one of the employee's preferred days
func (e Employee) PrefersDay(day string) bool {
	return slices.Contains(e.PreferredDays, day)
}

// UnmarshalJSON applies defaults for fields the payload leaves out
func (e *Employee) UnmarshalJSON(data []byte) error {
	type plain Employee
	p := plain(NewEmployee(""))
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Employee(p)
	return nil
}

// UnmarshalYAML applies defaults for fields the document leaves out
func (e *Employee) UnmarshalYAML(value *yaml.Node) error {
	type plain Employee
	p := plain(NewEmployee(""))
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = Employee(p)
	return nil
}

// Seat represents a physical workspace seat
type Seat struct {
	ID           string `json:"seat_id" yaml:"seat_id" validate:"required"`
	Floor        int    `json:"floor" yaml:"floor"`
	Zone         string `json:"zone" yaml:"zone"`
	IsAccessible bool   `json:"is_accessible" yaml:"is_accessible"`
	IsWindow     bool   `json:"is_window" yaml:"is_window"`
	X            int    `json:"x" yaml:"x"`
	Y            int    `json:"y" yaml:"y"`
}

// NewSeat returns a seat with the documented defaults filled in
func NewSeat(id string) Seat {
	return Seat{
		ID:    id,
		Floor: 1,
		Zone:  DefaultZone,
	}
}

// UnmarshalJSON applies defaults for fields the payload leaves out
func (s *Seat) UnmarshalJSON(data []byte) error {
	type plain Seat
	p := plain(NewSeat(""))
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Seat(p)
	return nil
}

// UnmarshalYAML applies defaults for fields the document leaves out
func (s *Seat) UnmarshalYAML(value *yaml.Node) error {
	type plain Seat
	p := plain(NewSeat(""))
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Seat(p)
	return nil
}

// Roster is the set of employees and seats supplied with one request
type Roster struct {
	Employees []Employee `json:"employees" yaml:"employees" validate:"dive"`
	Seats     []Seat     `json:"seats" yaml:"seats" validate:"dive"`
}

// CheckUniqueIDs returns an error if an employee or seat id is repeated
func (r Roster) CheckUniqueIDs() error {
	return CheckUniqueIDs(r.Employees, r.Seats)
}

// CheckUniqueIDs returns an error if an employee or seat id is repeated
func CheckUniqueIDs(employees []Employee, seats []Seat) error {
	seenEmployees := make(map[string]bool, len(employees))
	for i, emp := range employees {
		if seenEmployees[emp.ID] {
			return fmt.Errorf("duplicate employee_id %q at index %d", emp.ID, i)
		}
		seenEmployees[emp.ID] = true
	}

	seenSeats := make(map[string]bool, len(seats))
	for i, seat := range seats {
		if seenSeats[seat.ID] {
			return fmt.Errorf("duplicate seat_id %q at index %d", seat.ID, i)
		}
		seenSeats[seat.ID] = true
	}

	return nil
}
