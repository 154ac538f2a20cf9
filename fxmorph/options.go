package fxmorph

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogOutput  io.Writer
	ConfigFile string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the YAML, JSON or TOML file at path and provides a *morph.Morpher over it.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets where logs are written. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
