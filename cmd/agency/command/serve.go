package command

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/leguidebj/agency-backend/internal/config"
	"github.com/leguidebj/agency-backend/internal/handler"
	"github.com/leguidebj/agency-backend/internal/i18n"
	"github.com/leguidebj/agency-backend/internal/kv"
	"github.com/leguidebj/agency-backend/internal/store"
)

// runServe wires the full dependency graph and runs the HTTP server until
// SIGINT/SIGTERM.
func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// log/slog with a JSON handler writes machine-readable output suitable
	// for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrateUp(cfg.DatabaseURL); err != nil {
		return err
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		return err
	}

	st := store.New(kv.NewPostgres(pool), logger,
		store.WithAdminPassword(cfg.AdminPassword),
		store.WithLanguages(bundle.Languages()),
		store.WithDefaultLanguage(cfg.DefaultLanguage),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewServer(st, bundle, logger, cfg.WhatsAppNumber).Routes(cfg.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
