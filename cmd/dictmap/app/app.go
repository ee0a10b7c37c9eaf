// Package app provides the application context and dependency management
// for the dictmap CLI. It centralizes configuration, logging and the
// construction of dictmap instances for the commands.
package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/dictmap"
	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
)

// App represents the dictmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the
// config file; options are applied afterwards.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Dictmap returns a new dictmap instance. Inputs from the configuration
// are applied first so that opts, usually built from command flags, win.
func (a *App) Dictmap(opts ...dictmap.Option) (dictmap.Dictmap, error) {
	return dictmap.New(append(a.buildDictmapOptions(), opts...)...)
}

// Output opens the configured output file, creating its directory and
// truncating it, or returns stdout when none is configured.
func (a *App) Output() (io.WriteCloser, error) {
	if a.config.OutputFile == "" {
		return stdout{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(a.config.OutputFile), constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(a.config.OutputFile), err)
	}
	f, err := os.OpenFile(a.config.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("create", a.config.OutputFile, err)
	}
	a.logger.Debug().Str("path", a.config.OutputFile).Msg("writing output file")
	return f, nil
}

// buildDictmapOptions constructs dictmap options from the app configuration.
func (a *App) buildDictmapOptions() []dictmap.Option {
	var opts []dictmap.Option

	if a.config.UML != "" {
		opts = append(opts, dictmap.WithUML(a.config.UML))
	}
	if a.config.Terminology != "" {
		opts = append(opts, dictmap.WithTerminology(a.config.Terminology))
	}
	if a.config.API != "" {
		opts = append(opts, dictmap.WithAPI(a.config.API))
	}
	if a.config.APIRoot != "" {
		opts = append(opts, dictmap.WithAPIRoot(a.config.APIRoot))
	}
	if a.config.Cardinalities != "" {
		opts = append(opts, dictmap.WithCardinalities(a.config.Cardinalities, true))
	}
	if a.config.Previous != "" {
		opts = append(opts, dictmap.WithPrevious(a.config.Previous))
	}

	return opts
}

// stdout keeps Close from closing the process's standard output.
type stdout struct {
	io.Writer
}

func (stdout) Close() error { return nil }

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
