package predict

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is a loosely typed feature record as received from a caller
type Record map[string]any

// number reads key as a float, returning def when absent
func (r Record) number(key string, def float64) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return def, nil
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q must be a number, got %q", key, n)
		}
		return f, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("field %q must be a number", key)
}

// flag reads key as a boolean feature (1 or 0)
func (r Record) flag(key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, nil
	}

	switch b := v.(type) {
	case bool:
		if b {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return 0, fmt.Errorf("field %q must be a boolean, got %q", key, b)
		}
		if parsed {
			return 1, nil
		}
		return 0, nil
	}
	return r.number(key, 0)
}

// listLen reads key as a list and returns its length
func (r Record) listLen(key string) (float64, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return 0, nil
	}

	switch l := v.(type) {
	case []any:
		return float64(len(l)), nil
	case []string:
		return float64(len(l)), nil
	}
	return 0, fmt.Errorf("field %q must be a list", key)
}

// OnsiteRecordFeatures builds [commute_minutes, availability_ratio, len(preferred_days)]
func OnsiteRecordFeatures(r Record) ([]float64, error) {
	commute, err := r.number("commute_minutes", 30.0)
	if err != nil {
		return nil, err
	}
	availability, err := r.number("availability_ratio", 1.0)
	if err != nil {
		return nil, err
	}
	days, err := r.listLen("preferred_days")
	if err != nil {
		return nil, err
	}
	return []float64{commute, availability, days}, nil
}

// SeatRecordFeatures builds [onsite_ratio, project_count, is_window, is_accessible, floor]
func SeatRecordFeatures(r Record) ([]float64, error) {
	onsite, err := r.number("onsite_ratio", 0.5)
	if err != nil {
		return nil, err
	}
	projects, err := r.number("project_count", 1.0)
	if err != nil {
		return nil, err
	}
	isWindow, err := r.flag("is_window")
	if err != nil {
		return nil, err
	}
	isAccessible, err := r.flag("is_accessible")
	if err != nil {
		return nil, err
	}
	floor, err := r.number("floor", 1)
	if err != nil {
		return nil, err
	}
	return []float64{onsite, projects, isWindow, isAccessible, floor}, nil
}

// ProjectRecordFeatures builds [department_code, seniority_level, team_size]
func ProjectRecordFeatures(r Record) ([]float64, error) {
	dept, err := r.number("department_code", 0)
	if err != nil {
		return nil, err
	}
	seniority, err := r.number("seniority_level", 1)
	if err != nil {
		return nil, err
	}
	teamSize, err := r.number("team_size", 5)
	if err != nil {
		return nil, err
	}
	return []float64{dept, seniority, teamSize}, nil
}
