package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duaa3/seat-swarm/pkg/clients/sheetsclient"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "importRoster",
		Short: "Replace the stored roster with the roster spreadsheet or a roster file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.RequireDatabase()
			if err != nil {
				return err
			}

			var source services.RosterSource
			if input != "" {
				roster, err := services.LoadRosterFile(input)
				if err != nil {
					return err
				}
				source = staticRoster{roster: roster}
			} else {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				source = sheetsclient.NewRosterSheet(client, app.Cfg.Sheets)
			}

			imported, err := services.ImportRoster(app.Ctx, source, database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster imported: %d employees, %d seats\n\n", imported.Employees, imported.Seats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Import from a roster file instead of Google Sheets")
	return cmd
}
