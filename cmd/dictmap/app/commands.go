package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap/cmd/dictmap/cmd/align"
	"github.com/agentstation/dictmap/cmd/dictmap/cmd/dictionary"
	"github.com/agentstation/dictmap/cmd/dictmap/cmd/diff"
	"github.com/agentstation/dictmap/cmd/dictmap/cmd/structure"
	"github.com/agentstation/dictmap/cmd/dictmap/cmd/validate"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(dictionary.NewCommand(a))
	rootCmd.AddCommand(structure.NewCommand(a))
	rootCmd.AddCommand(align.NewCommand(a))
	rootCmd.AddCommand(diff.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("dictmap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
