package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	httpadapter "campaigns-api/internal/adapter/http"
	jwtadapter "campaigns-api/internal/adapter/jwt"
	"campaigns-api/internal/adapter/postgres"
	"campaigns-api/internal/adapter/usecase"
	"campaigns-api/internal/config"
	"campaigns-api/internal/db"
)

var errNoSigningKey = errors.New("AUTH_SIGNING_KEY must be set")

func serveCommand() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			cfg.Seed = cfg.Seed || seed
			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo campaigns when the store is empty")
	return cmd
}

// serve optionally runs database migrations, initializes the database pool
// and repositories, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server and returns the signal as an
// exitError.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Auth.SigningKey == "" {
		logger.Error("refusing to start", slog.Any("error", errNoSigningKey))
		return errNoSigningKey
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), 0, false); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return err
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := contextWithSignals(ctx)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return err
	}
	defer pool.Close()

	tokens := jwtadapter.NewTokenService(cfg.Auth)
	auth := usecase.NewAuthUseCase(postgres.NewAccountRepository(pool), tokens)

	if cfg.Auth.BootstrapUsername != "" && cfg.Auth.BootstrapPassword != "" {
		acc, err := auth.SaveAccount(ctx, cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword, true)
		if err != nil {
			logger.Error("bootstrap account error", slog.Any("error", err))
			return err
		}
		logger.Info("bootstrap account ready", slog.String("username", acc.Username))
	}

	if cfg.Seed {
		n, err := db.Seed(ctx, pool)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return err
		}
		logger.Info("demo data seeded", slog.Int("campaigns", n))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Campaigns: usecase.NewCampaignUseCase(postgres.NewCampaignRepository(pool)),
		Settings:  usecase.NewSettingUseCase(postgres.NewSettingRepository(pool)),
		Auth:      auth,
		Ping:      pool.Ping,
		Registry:  reg,
	}, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var result error
	select {
	case value := <-quit:
		result = exitError(128 + int(value.(syscall.Signal)))
	case err, ok := <-serveErr:
		if ok {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return result
}
