package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/dictmap/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag or LOG_LEVEL / log_level setting
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   os.Getenv("NO_COLOR") != "",
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel resolves the effective level name.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		level := validateLogLevel(config.LogLevel)
		if level != strings.ToLower(config.LogLevel) {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	}

	switch {
	case config.Verbose && config.Quiet:
		// quiet is the more restrictive of the two
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	}

	return "info"
}

// validateLogLevel normalizes a level name; anything zerolog does not
// know, or a level outside trace..error, becomes info.
func validateLogLevel(level string) string {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed < zerolog.TraceLevel || parsed > zerolog.ErrorLevel || level == "" {
		return "info"
	}
	return parsed.String()
}
