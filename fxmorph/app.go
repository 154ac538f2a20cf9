package fxmorph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/hjarta-morph/logging"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application with slog logging and, optionally, a configuration file.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	logger := createLogger(options.LogLevel, output)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: logging.FormatJSON}),
		fx.Supply(logger),
	}

	if options.ConfigFile != "" {
		fxOptions = append(fxOptions, FileModule(options.ConfigFile))
	}

	fxOptions = append(fxOptions, options.Modules...)

	return fx.New(fxOptions...)
}

func createLogger(level string, w io.Writer) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{Level: level, Format: logging.FormatJSON}, w)
}

// Err returns the error Fx recorded while building the graph, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
