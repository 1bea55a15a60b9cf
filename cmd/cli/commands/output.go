package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Duaa3/seat-swarm/pkg/core/placement"
)

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printAssignments(assignments []placement.Assignment) {
	fmt.Printf("%-15s  %-10s  %7s  %s\n", "Employee", "Seat", "Score", "Reasons")
	fmt.Println("---------------  ----------  -------  ----------------------------------------")
	for _, a := range assignments {
		fmt.Printf("%-15s  %-10s  %7.2f  %s\n", a.EmployeeID, a.SeatID, a.Score, formatReasons(a.Reasons))
	}
}

// formatReasons renders a breakdown as "name=value" pairs in name order
func formatReasons(reasons placement.Breakdown) string {
	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%.2f", name, reasons[name]))
	}
	return strings.Join(parts, " ")
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}
