package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
)

// Execute runs the dictmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dictmap",
		Short:   "Data dictionary tooling for a clinical study model",
		Version: a.version,
		Long: `Dictmap turns one release of a clinical study data model into its
documentation artifacts and checks the release for consistency.

It reads the structural model (XMI), the terminology table (CSV), the
wire schema (JSON or YAML) and an optional cardinality override table.
Inputs default to the file names of a release folder and can be set with
flags, DICTMAP_* environment variables or a .dictmap.yaml config file.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.PersistentFlags().String("config", "", "config file (default is ./.dictmap.yaml or $HOME/.dictmap.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().StringP("format", "o", "", "output format: table, csv, markdown, json, yaml")
	rootCmd.PersistentFlags().String("output-file", "", "write results to this file instead of stdout")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		formats := make([]string, 0, len(output.Formats))
		for _, f := range output.Formats {
			formats = append(formats, string(f))
		}
		return formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.SetVersionTemplate("dictmap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := loadConfig(configFile)
		if err != nil {
			return errors.NewConfigError("app", "loading config file", err)
		}
		a.config = config
	}

	a.config.UpdateFromFlags(
		mustGetBool(cmd, "verbose"),
		mustGetBool(cmd, "quiet"),
		mustGetString(cmd, "format"),
		mustGetString(cmd, "log-level"),
		mustGetString(cmd, "output-file"),
	)

	if a.config.Format != "" {
		if _, err := output.ParseFormat(a.config.Format); err != nil {
			return err
		}
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(logging.WithRunID(ctx))

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
