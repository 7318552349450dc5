package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusbook/scheduler/cmd/cli/commands"
	"github.com/campusbook/scheduler/internal/config"
	"github.com/campusbook/scheduler/pkg/postgres"
	"github.com/campusbook/scheduler/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.AppContext
	pg         *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusbook",
		Short: "CampusBook CLI - Generate and audit weekly room timetables",
		Long:  `A CLI tool for scheduling course sessions into rooms and teachers, auditing committed calendars for conflicts, and summarizing utilization.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pg != nil {
				pg.Close()
			}
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name, used to prefix log files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: scheduler_config.yaml in cwd or home)")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.ScheduleCmd(app))
	rootCmd.AddCommand(commands.AuditCmd(app))
	rootCmd.AddCommand(commands.AnalyzeCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and the database when one is configured
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	if app.Cfg.DatabaseURL != "" {
		app.Logger.Info("Connecting to database")
		pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pg
		app.Logger.Info("Database initialized successfully")
	} else {
		app.Logger.Info("No database configured, running from CSV files only")
	}

	return nil
}
