package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// ListRunsCmd creates the listRuns command
func ListRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRuns",
		Short: "List saved weekly schedule runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			runs, err := services.ListRuns(app.Ctx, database, app.Logger)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No schedule runs saved yet.")
				return nil
			}

			fmt.Printf("%-36s  %-16s  %-9s  %-4s  %-30s  %s\n", "Run ID", "Created", "Solver", "Mode", "Seated per day", "Violations")
			fmt.Println(strings.Repeat("-", 36) + "  " + strings.Repeat("-", 16) + "  ---------  ----  " + strings.Repeat("-", 30) + "  ----------")
			for _, run := range runs {
				fmt.Printf("%-36s  %-16s  %-9s  %-4s  %-30s  %d\n",
					run.ID,
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.Solver,
					run.TeamTogetherMode,
					seatedPerDay(run),
					run.Violations)
			}
			fmt.Println()

			return nil
		},
	}
}

func seatedPerDay(run services.RunSummary) string {
	parts := make([]string, 0, len(run.Days))
	for _, day := range run.Days {
		parts = append(parts, fmt.Sprintf("%s:%d", day, run.AssignedByDay[day]))
	}
	return strings.Join(parts, " ")
}
