package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Duaa3/seat-swarm/cmd/cli/commands"
	"github.com/Duaa3/seat-swarm/internal/config"
	"github.com/Duaa3/seat-swarm/pkg/core/services"
	"github.com/Duaa3/seat-swarm/pkg/postgres"
	"github.com/Duaa3/seat-swarm/pkg/predict"
	"github.com/Duaa3/seat-swarm/pkg/utils/logging"
)

var (
	env     string
	logsDir string
	verbose bool
	app     = &commands.AppContext{}
	pg      *postgres.DB
	stop    context.CancelFunc
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "seat-swarm",
		Short:         "Seat Swarm - workspace seat assignment and weekly scheduling",
		Long:          `A CLI and HTTP API for assigning office seats to employees and planning weekly attendance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			shutdown()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment name selecting seat_swarm_config.<env>.yaml")
	rootCmd.PersistentFlags().StringVar(&logsDir, "logs", "logs", "Directory for JSON log files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.PredictCmd(app))
	rootCmd.AddCommand(commands.ImportRosterCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.PublishScheduleCmd(app))

	if err := rootCmd.Execute(); err != nil {
		if app.Logger != nil {
			app.Logger.Error("Command failed", zap.Error(err))
		}
		shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initApp sets up logger, config, predictors, database and planner
func initApp() error {
	var err error

	app.Env = env
	app.Ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app.Logger, err = logging.InitLogger(env, logging.Options{Dir: logsDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	predictors := predict.LoadSet(predict.Paths{
		Dir:     app.Cfg.Predictors.ModelDir,
		Onsite:  app.Cfg.Predictors.OnsiteModel,
		Seat:    app.Cfg.Predictors.SeatModel,
		Project: app.Cfg.Predictors.ProjectModel,
	}, app.Logger)
	app.Logger.Debug("Predictors loaded", zap.Strings("models", predictors.Loaded()))

	if app.Cfg.Database.DSN != "" {
		app.Logger.Debug("Connecting to database")
		pg, err = postgres.NewDB(app.Ctx, app.Cfg.Database.DSN, app.Cfg.Database.MaxConns, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pg
	}

	settings, err := services.SettingsFromConfig(app.Cfg)
	if err != nil {
		return err
	}

	if pg != nil {
		app.Planner = services.NewPlanner(settings, predictors, pg, app.Logger)
	} else {
		app.Planner = services.NewPlanner(settings, predictors, nil, app.Logger)
	}

	return nil
}

func shutdown() {
	if pg != nil {
		pg.Close()
		pg = nil
	}
	if stop != nil {
		stop()
	}
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}
