package placement

import "github.com/Duaa3/seat-swarm/pkg/core/model"

// Rule is a hard constraint on which seats an employee may be given.
// A rule returning false is a veto: the pair is excluded by both matchers.
type Rule interface {
	Name() string
	Allows(emp model.Employee, seat model.Seat) bool
}

// Gate combines hard-constraint rules with logical AND
type Gate struct {
	rules []Rule
}

// NewGate creates a gate from the given rules
func NewGate(rules ...Rule) *Gate {
	return &Gate{rules: rules}
}

// DefaultGate returns the gate holding the standard hard rules
func DefaultGate() *Gate {
	return NewGate(AccessibilityRule{})
}

// IsEligible reports whether every rule allows placing emp at seat
func (g *Gate) IsEligible(emp model.Employee, seat model.Seat) bool {
	for _, rule := range g.rules {
		if !rule.Allows(emp, seat) {
			return false
		}
	}
	return true
}

// FailedRule returns the name of the first rule rejecting the pair, or "" if eligible
func (g *Gate) FailedRule(emp model.Employee, seat model.Seat) string {
	for _, rule := range g.rules {
		if !rule.Allows(emp, seat) {
			return rule.Name()
		}
	}
	return ""
}

// AccessibilityRule keeps employees who need an accessible seat away from other seats
type AccessibilityRule struct{}

func (AccessibilityRule) Name() string {
	return "Accessibility"
}

func (AccessibilityRule) Allows(emp model.Employee, seat model.Seat) bool {
	return !emp.NeedsAccessible || seat.IsAccessible
}
