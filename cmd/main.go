// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"rocketreading/internal/config"
	"rocketreading/internal/model"
	"rocketreading/internal/repository"
)

var (
	configDir string
	logger    = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func main() {
	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Spaced review scheduling for early readers",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real environment variables win.
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Warn("Could not read .env file", slog.Any("error", err))
			}
			if err := config.LoadConfig(configDir); err != nil {
				return err
			}
			logger = newLogger(config.Cfg.Log)
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory holding config.yaml")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(dueCmd())
	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(progressCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger uses tint for APP_ENV=dev or log.format=text, JSON otherwise.
func newLogger(cfg config.LogConfig) *slog.Logger {
	level := new(slog.LevelVar)
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	if strings.EqualFold(os.Getenv("APP_ENV"), "dev") || strings.EqualFold(cfg.Format, "text") {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}

func openStore(ctx context.Context) (*repository.Store, error) {
	store, err := repository.Open(ctx, config.Cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

func closeStore(store *repository.Store) {
	if err := store.Close(); err != nil {
		logger.Error("Error closing database connection", slog.Any("error", err))
		return
	}
	logger.Debug("Database connection closed")
}

func sessionMode() model.SessionMode {
	return model.SessionMode(config.Cfg.App.SessionMode)
}
