package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hyperengineering/fitlog/internal/api"
	"github.com/hyperengineering/fitlog/internal/config"
	"github.com/hyperengineering/fitlog/internal/logger"
	"github.com/hyperengineering/fitlog/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "fitlog",
	Short:        "fitlog - fitness tracking service",
	Long:         "Serve the fitlog REST API. Run `fitlog migrate up` before the first start.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Signal handling
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// 2. Configuration and logger
	cfg, log, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	defer log.Close()

	// 3. Store (schema is managed by `fitlog migrate`)
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	slog.Info("store initialized", "driver", db.Driver())

	// 4. Router
	router := api.NewRouter(api.NewHandler(db, Version))
	slog.Info("router initialized")

	// 5. Listener and server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		db.Close()
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	return runServer(ctx, srv, ln, time.Duration(cfg.Server.ShutdownTimeout), db)
}

// bootstrap loads configuration and installs the process logger as the slog
// default. Callers must Close the returned logger.
func bootstrap(logOut io.Writer) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logOut, logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		SentryDSN: cfg.Sentry.DSN,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log.Logger)
	slog.Info("configuration loaded", "level", cfg.Log.Level, "format", cfg.Log.Format)

	return cfg, log, nil
}

// openStore opens the configured database.
func openStore(cfg *config.Config) (*store.SQLStore, error) {
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return db, nil
}

// runServer serves on ln until ctx is cancelled or the server fails, then
// drains in-flight requests within shutdownTimeout and closes db last.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, db io.Closer) error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", ln.Addr().String())
		// ErrServerClosed is the expected result of Shutdown.
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutdown initiated")
	case err := <-serveErr:
		slog.Error("server error", "error", err)
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop HTTP server (drains in-flight requests)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := db.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}

	slog.Info("shutdown complete")
	return runErr
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fitlog version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fitlog %s\n", Version)
	},
}
