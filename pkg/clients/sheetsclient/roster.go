package sheetsclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Duaa3/seat-swarm/internal/config"
	"github.com/Duaa3/seat-swarm/pkg/core/model"
)

// Column names in the Employees tab. Only the ID column is required;
// missing or blank cells take the employee defaults.
const (
	colEmployeeID        = "Employee ID"
	colFullName          = "Full name"
	colDepartment        = "Department"
	colTeam              = "Team"
	colPriorityLevel     = "Priority level"
	colWorkMode          = "Preferred work mode"
	colNeedsAccessible   = "Needs accessible"
	colPreferWindow      = "Prefer window"
	colPreferredZone     = "Preferred zone"
	colPreferredDays     = "Preferred days"
	colClientSiteRatio   = "Client site ratio"
	colCommuteMinutes    = "Commute minutes"
	colAvailabilityRatio = "Availability ratio"
	colOnsiteRatio       = "Onsite ratio"
	colProjectCount      = "Project count"
)

// Column names in the Seats tab
const (
	colSeatID     = "Seat ID"
	colFloor      = "Floor"
	colZone       = "Zone"
	colAccessible = "Accessible"
	colWindow     = "Window"
	colX          = "X"
	colY          = "Y"
)

// ValueReader reads a range of cells
type ValueReader interface {
	GetValues(ctx context.Context, spreadsheetID, sheetRange string) ([][]interface{}, error)
}

// RosterSheet reads employees and seats from the configured roster spreadsheet
type RosterSheet struct {
	reader ValueReader
	cfg    config.SheetsConfig
}

// NewRosterSheet creates a roster source backed by reader
func NewRosterSheet(reader ValueReader, cfg config.SheetsConfig) *RosterSheet {
	return &RosterSheet{reader: reader, cfg: cfg}
}

// ListEmployees retrieves and parses the Employees tab
func (r *RosterSheet) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	values, err := r.read(ctx, r.cfg.EmployeesTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee data: %w", err)
	}

	employees, err := parseEmployees(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse employees: %w", err)
	}
	return employees, nil
}

// ListSeats retrieves and parses the Seats tab
func (r *RosterSheet) ListSeats(ctx context.Context) ([]model.Seat, error) {
	values, err := r.read(ctx, r.cfg.SeatsTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get seat data: %w", err)
	}

	seats, err := parseSeats(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seats: %w", err)
	}
	return seats, nil
}

func (r *RosterSheet) read(ctx context.Context, tab string) ([][]interface{}, error) {
	if r.cfg.RosterSheetID == "" {
		return nil, fmt.Errorf("sheets.rosterSheetID is not configured")
	}

	values, err := r.reader.GetValues(ctx, r.cfg.RosterSheetID, tab)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("tab %s is empty", tab)
	}
	return values, nil
}

// table gives named access to the cells of a sheet with a header row
type table struct {
	columns map[string]int
}

func newTable(header []interface{}, required ...string) (*table, error) {
	columns := make(map[string]int, len(header))
	for i, cell := range header {
		if name, ok := cell.(string); ok && name != "" {
			columns[strings.TrimSpace(name)] = i
		}
	}

	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required field in header: %s", name)
		}
	}

	return &table{columns: columns}, nil
}

func (t *table) cell(row []interface{}, column string) string {
	index, ok := t.columns[column]
	if !ok || index >= len(row) || row[index] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[index]))
}

func (t *table) number(row []interface{}, column string, target *float64) error {
	raw := t.cell(row, column)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s must be a number, got %q", column, raw)
	}
	*target = value
	return nil
}

func (t *table) integer(row []interface{}, column string, target *int) error {
	raw := t.cell(row, column)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s must be a whole number, got %q", column, raw)
	}
	*target = value
	return nil
}

func (t *table) flag(row []interface{}, column string, target *bool) error {
	switch strings.ToLower(t.cell(row, column)) {
	case "":
		return nil
	case "true", "yes", "y", "1", "x":
		*target = true
	case "false", "no", "n", "0":
		*target = false
	default:
		return fmt.Errorf("%s must be yes or no, got %q", column, t.cell(row, column))
	}
	return nil
}

// parseEmployees converts raw spreadsheet data into employees. Rows without an ID are skipped.
func parseEmployees(raw [][]interface{}) ([]model.Employee, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	t, err := newTable(raw[0], colEmployeeID)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		id := t.cell(row, colEmployeeID)
		if id == "" {
			continue
		}

		emp := model.NewEmployee(id)
		emp.FullName = t.cell(row, colFullName)
		emp.Department = t.cell(row, colDepartment)
		emp.Team = t.cell(row, colTeam)
		emp.PreferredZone = t.cell(row, colPreferredZone)
		if mode := t.cell(row, colWorkMode); mode != "" {
			emp.PreferredWorkMode = model.WorkMode(strings.ToLower(mode))
		}
		if days := t.cell(row, colPreferredDays); days != "" {
			emp.PreferredDays = splitList(days)
		}

		for _, parse := range []func() error{
			func() error { return t.number(row, colPriorityLevel, &emp.PriorityLevel) },
			func() error { return t.flag(row, colNeedsAccessible, &emp.NeedsAccessible) },
			func() error { return t.flag(row, colPreferWindow, &emp.PreferWindow) },
			func() error { return t.number(row, colClientSiteRatio, &emp.ClientSiteRatio) },
			func() error { return t.number(row, colCommuteMinutes, &emp.CommuteMinutes) },
			func() error { return t.number(row, colAvailabilityRatio, &emp.AvailabilityRatio) },
			func() error { return t.number(row, colOnsiteRatio, &emp.OnsiteRatio) },
			func() error { return t.number(row, colProjectCount, &emp.ProjectCount) },
		} {
			if err := parse(); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		employees = append(employees, emp)
	}

	return employees, nil
}

// parseSeats converts raw spreadsheet data into seats. Rows without an ID are skipped.
func parseSeats(raw [][]interface{}) ([]model.Seat, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	t, err := newTable(raw[0], colSeatID)
	if err != nil {
		return nil, err
	}

	seats := make([]model.Seat, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		id := t.cell(row, colSeatID)
		if id == "" {
			continue
		}

		seat := model.NewSeat(id)
		if zone := t.cell(row, colZone); zone != "" {
			seat.Zone = zone
		}

		for _, parse := range []func() error{
			func() error { return t.integer(row, colFloor, &seat.Floor) },
			func() error { return t.flag(row, colAccessible, &seat.IsAccessible) },
			func() error { return t.flag(row, colWindow, &seat.IsWindow) },
			func() error { return t.integer(row, colX, &seat.X) },
			func() error { return t.integer(row, colY, &seat.Y) },
		} {
			if err := parse(); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		seats = append(seats, seat)
	}

	return seats, nil
}

// splitList splits a comma separated cell, dropping blanks
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
