package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	var (
		roster         rosterFlags
		solver         string
		maxAssignments int
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign seats to employees for a single day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster.load(app)
			if err != nil {
				return err
			}

			resp, err := app.Planner.AssignSeats(app.Ctx, services.AssignRequest{
				Employees:      r.Employees,
				Seats:          r.Seats,
				MaxAssignments: maxAssignments,
				Solver:         placement.SolverName(solver),
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(resp)
			}

			fmt.Printf("\n✓ Seats assigned with %s solver\n\n", resp.Meta.Solver)
			printAssignments(resp.Assignments)
			fmt.Println()
			fmt.Printf("Assigned:    %d of %d (%.0f%%)\n", len(resp.Assignments), resp.Meta.TotalEmployees, resp.Meta.AssignmentRate*100)
			fmt.Printf("Total score: %.2f\n", resp.Meta.TotalScore)
			fmt.Printf("Unassigned:  %s\n", listOrDash(resp.UnassignedEmployees))
			fmt.Printf("Unused:      %s\n\n", listOrDash(resp.UnusedSeats))

			return nil
		},
	}

	roster.register(cmd)
	cmd.Flags().StringVar(&solver, "solver", "", "Matching solver: greedy or hungarian (default from config)")
	cmd.Flags().IntVar(&maxAssignments, "max-assignments", 0, "Only consider the first N employees (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full response as JSON")

	return cmd
}
