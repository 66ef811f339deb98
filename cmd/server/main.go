// Package main initializes and starts the plot keeper HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, handlers and graceful shutdown.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/PlotKeeper/internal/config"
	"github.com/atinyakov/PlotKeeper/internal/db"
	"github.com/atinyakov/PlotKeeper/internal/logger"
	"github.com/atinyakov/PlotKeeper/internal/repository"
	"github.com/atinyakov/PlotKeeper/internal/server/handler/http"
	"github.com/atinyakov/PlotKeeper/internal/server/views"
	"github.com/atinyakov/PlotKeeper/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	zapLogger := log.Log
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options, zapLogger); err != nil {
		stop()
		os.Exit(exitOnError(zapLogger, err))
	}
}

// exitOnError logs err and flushes the logger before the process exits,
// returning the exit status to use.
func exitOnError(zapLogger *zap.Logger, err error) int {
	zapLogger.Error("server stopped", zap.Error(err))
	_ = zapLogger.Sync()
	return 1
}

func run(ctx context.Context, options *config.Options, zapLogger *zap.Logger) error {
	// Open the connection pool; it lives until the server has shut down.
	conn, err := db.Open(ctx, options.DatabaseDriver, options.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("cannot init database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			zapLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	store := db.NewQueryLogger(conn, zapLogger, options.ShowSQL, options.FormatSQL)

	if options.SchemaAutoUpdate {
		if err := db.EnsureSchema(ctx, store); err != nil {
			return err
		}
	}

	plotRepo := repository.NewPostgresPlotRepository(store)
	plotService := service.NewPlotService(plotRepo)

	pages, err := views.New()
	if err != nil {
		return err
	}

	plotHandler := &http.PlotHandler{PlotService: plotService, Views: pages, Log: zapLogger}
	healthHandler := &http.HealthHandler{DB: conn}

	router := http.NewRouter(plotHandler, healthHandler, http.Credentials{
		Username: options.AdminUser,
		Password: options.AdminPassword,
	}, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
