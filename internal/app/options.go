package app

import (
	"io"
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	out    io.Writer
	logger *slog.Logger
}

// WithOutput sets where tables and messages are written
func WithOutput(w io.Writer) Option {
	return func(cfg *appConfig) {
		cfg.out = w
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
