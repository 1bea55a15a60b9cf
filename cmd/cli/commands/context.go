package commands

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/internal/config"
	"github.com/Duaa3/seat-swarm/pkg/clients/sheetsclient"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
	"github.com/Duaa3/seat-swarm/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env      string
	Cfg      *config.Config
	Planner  *services.Planner
	Database db.Database // nil when no DSN is configured
	Logger   *zap.Logger
	Ctx      context.Context

	sheetsOnce   sync.Once
	sheetsClient *sheetsclient.Client
	sheetsErr    error
}

// RequireDatabase returns the database or an error naming the missing setting
func (app *AppContext) RequireDatabase() (db.Database, error) {
	if app.Database == nil {
		return nil, fmt.Errorf("this command needs a database: set database.dsn or SEAT_SWARM_DATABASE_DSN")
	}
	return app.Database, nil
}

// SheetsClient connects to Google Sheets on first use; the OAuth flow only runs for commands that need it
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	app.sheetsOnce.Do(func() {
		app.Logger.Info("Loading OAuth client configuration")
		oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
		if err != nil {
			app.sheetsErr = fmt.Errorf("failed to load OAuth client config: %w", err)
			return
		}

		app.Logger.Info("Initializing sheets client")
		app.sheetsClient, app.sheetsErr = sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env, app.Logger)
		if app.sheetsErr != nil {
			app.sheetsErr = fmt.Errorf("failed to create sheets client: %w", app.sheetsErr)
		}
	})
	return app.sheetsClient, app.sheetsErr
}
