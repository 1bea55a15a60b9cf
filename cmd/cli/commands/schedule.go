package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/clients/sheetsclient"
	"github.com/Duaa3/seat-swarm/pkg/core/placement"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	var (
		roster     rosterFlags
		solver     string
		mode       string
		days       []string
		capacities map[string]int
		deptCapPct float64
		together   []string
		save       bool
		publish    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Plan office attendance and seats for a week",
		Long: `Plan office attendance and seats for each day of a week.

Each --together flag lists team names whose members should sit in the same zone,
for example --together Alpha,Beta --together Gamma.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if publish && !save {
				return fmt.Errorf("--publish requires --save")
			}

			r, err := roster.load(app)
			if err != nil {
				return err
			}

			req := services.ScheduleRequest{
				Employees:        r.Employees,
				Seats:            r.Seats,
				CapacityByDay:    capacities,
				TogetherTeams:    parseTogether(together),
				TeamTogetherMode: placement.TeamTogetherMode(mode),
				Days:             days,
				Solver:           placement.SolverName(solver),
				Save:             save,
			}
			if cmd.Flags().Changed("dept-cap") {
				req.DeptDayCapPct = &deptCapPct
			}

			resp, err := app.Planner.ScheduleWeek(app.Ctx, req)
			if err != nil {
				return err
			}

			if asJSON {
				if err := printJSON(resp); err != nil {
					return err
				}
			} else {
				printSchedule(resp)
			}

			if publish {
				return publishRun(app, resp.Meta.RunID)
			}
			return nil
		},
	}

	roster.register(cmd)
	cmd.Flags().StringVar(&solver, "solver", "", "Matching solver: greedy or hungarian (default from config)")
	cmd.Flags().StringVar(&mode, "mode", "", "Team togetherness: soft or hard (default from config)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Days to schedule, e.g. Mon,Tue,Wed (default from config week rule)")
	cmd.Flags().StringToIntVar(&capacities, "capacity", nil, "Daily capacity overrides, e.g. Mon=20,Fri=10")
	cmd.Flags().Float64Var(&deptCapPct, "dept-cap", 0, "Largest share of a day's capacity one department may take (default from config)")
	cmd.Flags().StringArrayVar(&together, "together", nil, "Comma separated team names that should sit together (repeatable)")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run to the database")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish the saved run to the schedule spreadsheet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full response as JSON")

	return cmd
}

// parseTogether turns "Alpha,Beta" flag values into team groups
func parseTogether(values []string) [][]string {
	groups := [][]string{}
	for _, value := range values {
		group := []string{}
		for _, team := range strings.Split(value, ",") {
			if team = strings.TrimSpace(team); team != "" {
				group = append(group, team)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

func printSchedule(resp *services.ScheduleResponse) {
	fmt.Printf("\n✓ Week scheduled with %s solver (%s team mode)\n\n", resp.Meta.Solver, resp.Meta.TeamTogetherMode)

	for _, day := range resp.Days {
		fmt.Printf("📅 %s: %d attending, %d seated\n\n", day, len(resp.Attendance[day]), len(resp.Assignments[day]))
		printAssignments(resp.Assignments[day])
		fmt.Printf("\nUnassigned: %s\n\n", listOrDash(resp.UnassignedEmployees[day]))
	}

	if len(resp.Violations) > 0 {
		fmt.Printf("⚠️  %d violations:\n", len(resp.Violations))
		for _, violation := range resp.Violations {
			fmt.Printf("  ✗ %s\n", violation)
		}
		fmt.Println()
	}

	if resp.Meta.RunID != "" {
		fmt.Printf("Run ID: %s\n\n", resp.Meta.RunID)
	}
}

// publishRun builds the seating chart for a saved run and writes it to the schedule spreadsheet
func publishRun(app *AppContext, runID string) error {
	if app.Cfg.Sheets.ScheduleSheetID == "" {
		return fmt.Errorf("sheets.scheduleSheetID is not configured")
	}

	database, err := app.RequireDatabase()
	if err != nil {
		return err
	}

	published, err := services.PublishSchedule(app.Ctx, database, app.Logger, runID)
	if err != nil {
		return fmt.Errorf("failed to build schedule: %w", err)
	}

	client, err := app.SheetsClient()
	if err != nil {
		return err
	}

	tab, err := sheetsclient.PublishSchedule(app.Ctx, client, app.Cfg.Sheets.ScheduleSheetID, published)
	if err != nil {
		return fmt.Errorf("failed to publish schedule: %w", err)
	}

	app.Logger.Info("Schedule published", zap.String("run_id", published.RunID), zap.String("tab", tab))

	fmt.Printf("\n✅ Schedule Published Successfully\n\n")
	fmt.Printf("Run ID:   %s\n", published.RunID)
	fmt.Printf("Tab:      %s\n", tab)
	fmt.Printf("Sheet ID: %s\n", app.Cfg.Sheets.ScheduleSheetID)
	fmt.Printf("Seats:    %d\n\n", len(published.Rows))

	return nil
}

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule [runID]",
		Short: "Publish a saved schedule run to Google Sheets",
		Long:  "Publish a saved schedule run to Google Sheets. If no runID is provided, publishes the latest run.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := ""
			if len(args) > 0 {
				runID = args[0]
			}
			return publishRun(app, runID)
		},
	}
}
