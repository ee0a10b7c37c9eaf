// Package application provides the application interface for dictmap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            dm, err := app.Dictmap()
//	            if err != nil {
//	                return err
//	            }
//	            m, err := dm.Dictionary(cmd.Context())
//	            // ... render m
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    DictmapFunc: func(opts ...dictmap.Option) (dictmap.Dictmap, error) {
//	        return dictmap.New(append(testOptions, opts...)...)
//	    },
//	}
//	cmd := dictionary.NewCommand(mock)
package application

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/dictmap"
)

// Application provides the application interface that commands need.
// The App struct from cmd/dictmap/app implements this interface.
type Application interface {
	// Dictmap returns an instance configured from flags, environment and
	// config file; opts are applied last and override them.
	Dictmap(opts ...dictmap.Option) (dictmap.Dictmap, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, csv, markdown, json, yaml).
	OutputFormat() string

	// Output opens the destination for rendered results: the configured
	// output file, or stdout.
	Output() (io.WriteCloser, error)

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
