package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaigns-api/internal/adapter/postgres"
	"campaigns-api/internal/adapter/usecase"
	"campaigns-api/internal/config"
	"campaigns-api/internal/db"
)

// main is the entry point of campaigns-api. Without a subcommand it runs
// the HTTP server.
func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(int(exit))
		}
		os.Exit(1)
	}
}

// exitError carries the exit status of a command stopped by a signal.
type exitError int

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func newRootCommand() *cobra.Command {
	serve := serveCommand()
	root := &cobra.Command{
		Use:           "campaigns-api",
		Short:         "campaign and campaign settings API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(
		serve,
		migrateCommand(),
		createAccountCommand(),
	)
	return root
}

// load reads the configuration and builds the logger every command uses.
func load() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return cfg, nil, err
	}
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}

func migrateCommand() *cobra.Command {
	var (
		down    bool
		version int
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply or revert database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String(), version, down); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return err
			}
			logger.Info("migrations applied successfully", slog.Bool("down", down))
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	cmd.Flags().IntVar(&version, "version", 0, "target schema version, latest when zero")
	return cmd
}

func createAccountCommand() *cobra.Command {
	var (
		username string
		password string
		inactive bool
	)
	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "create or update an API account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}

			ctx, cancel := contextWithSignals(cmd.Context())
			defer cancel()

			pool, err := db.NewPostgresPool(ctx, cfg.Psql)
			if err != nil {
				logger.Error("database connection error", slog.Any("error", err))
				return err
			}
			defer pool.Close()

			// token operations are not used here, only account storage
			auth := usecase.NewAuthUseCase(postgres.NewAccountRepository(pool), nil)
			acc, err := auth.SaveAccount(ctx, username, password, !inactive)
			if err != nil {
				logger.Error("failed to save account", slog.String("username", username), slog.Any("error", err))
				return err
			}
			logger.Info("account saved",
				slog.Int64("account_id", acc.ID),
				slog.String("username", acc.Username),
				slog.Bool("active", acc.IsActive))
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "create the account disabled")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func contextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
