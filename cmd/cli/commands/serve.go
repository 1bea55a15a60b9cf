package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/pkg/api"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := app.Cfg.Server
			if addr != "" {
				serverCfg.Addr = addr
			}

			health := app.Planner.Health()
			app.Logger.Info("Starting API",
				zap.Strings("models_loaded", health.ModelsLoaded),
				zap.Bool("optimal_solver_available", health.OptimalSolverAvailable),
				zap.Bool("run_store", app.Database != nil))

			srv := api.NewServer(serverCfg, api.NewHandler(app.Planner, app.Logger))
			return api.Serve(app.Ctx, srv, time.Duration(serverCfg.ShutdownTimeoutSeconds)*time.Second, app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
