package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/clients/sheetsclient"
	"github.com/Duaa3/seat-swarm/pkg/core/model"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
)

// Roster sources accepted by --source
const (
	sourceFile     = "file"
	sourcePostgres = "postgres"
	sourceSheets   = "sheets"
)

type rosterFlags struct {
	source string
	input  string
}

func (f *rosterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Roster file (.yaml or .json) with employees and seats")
	cmd.Flags().StringVar(&f.source, "source", sourceFile, "Where to read the roster from: file, postgres or sheets")
}

// load reads the roster from the selected source
func (f *rosterFlags) load(app *AppContext) (*model.Roster, error) {
	app.Logger.Debug("Loading roster", zap.String("source", f.source), zap.String("input", f.input))

	switch f.source {
	case sourceFile:
		if f.input == "" {
			return nil, fmt.Errorf("--input is required when --source is %s", sourceFile)
		}
		return services.LoadRosterFile(f.input)

	case sourcePostgres:
		database, err := app.RequireDatabase()
		if err != nil {
			return nil, err
		}
		return services.StoredRoster(app.Ctx, database)

	case sourceSheets:
		client, err := app.SheetsClient()
		if err != nil {
			return nil, err
		}
		source := sheetsclient.NewRosterSheet(client, app.Cfg.Sheets)

		employees, err := source.ListEmployees(app.Ctx)
		if err != nil {
			return nil, err
		}
		seats, err := source.ListSeats(app.Ctx)
		if err != nil {
			return nil, err
		}
		return &model.Roster{Employees: employees, Seats: seats}, nil
	}

	return nil, fmt.Errorf("unknown roster source %q (expected %s, %s or %s)", f.source, sourceFile, sourcePostgres, sourceSheets)
}

// staticRoster serves an already loaded roster as a services.RosterSource
type staticRoster struct {
	roster *model.Roster
}

func (s staticRoster) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.roster.Employees, nil
}

func (s staticRoster) ListSeats(ctx context.Context) ([]model.Seat, error) {
	return s.roster.Seats, nil
}
