// Package main provides the entry point for the dictmap CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/dictmap/cmd/dictmap/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel in-flight loads on interrupt
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Debug().Err(err).Msg("command failed")
		app.ExitOnError(err)
	}
}
