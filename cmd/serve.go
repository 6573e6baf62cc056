// cmd/serve.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"rocketreading/internal/config"
	"rocketreading/internal/handlers"
	"rocketreading/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(store)

			router := handlers.NewRouter(handlers.RouterDeps{
				Scheduler: service.NewSchedulerService(store, sessionMode()),
				Mastery:   service.NewMasteryService(store),
				Store:     store,
				Logger:    logger,
				CORS:      config.Cfg.CORS,
			})

			server := &http.Server{
				Addr:         config.Cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Server listening", slog.String("port", server.Addr), slog.String("version", config.AppVersion))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			logger.Info("Shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", slog.Any("error", err))
				return err
			}
			logger.Info("Server exiting")
			return nil
		},
	}
}
