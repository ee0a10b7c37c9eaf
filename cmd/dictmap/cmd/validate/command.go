// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/internal/cmd/emoji"
	"github.com/agentstation/dictmap/internal/cmd/globals"
	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/internal/cmd/table"
	"github.com/agentstation/dictmap/pkg/errors"
)

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		inputs *globals.InputFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Report problems found while building the data dictionary",
		Long: `Validate builds the enriched model and lists every warning raised on
the way: terminology rows naming unknown classes, cardinality overrides
for unknown attributes, unresolved types, and model entries that break
the multiplicity and typing rules.

With --strict any warning makes the command fail.`,
		Example: `  dictmap validate
  dictmap validate --strict -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dm, err := app.Dictmap(inputs.Options(cmd)...)
			if err != nil {
				return err
			}
			m, err := dm.Dictionary(cmd.Context())
			if err != nil {
				cmd.PrintErrf("%s %v\n", emoji.Error, err)
				return err
			}
			warnings := append(dm.Warnings(), m.Check()...)

			w, err := app.Output()
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			if len(warnings) == 0 {
				cmd.PrintErrf("%s %d classes, no warnings\n", emoji.Success, len(m))
				return nil
			}
			if err := output.Write(w, app.OutputFormat(), warnings, table.WarningsToTableData(warnings)); err != nil {
				return err
			}
			cmd.PrintErrf("%s %d classes, %d warnings\n", emoji.Warning, len(m), len(warnings))

			if strict {
				return errors.NewValidationError("warnings", len(warnings), fmt.Sprintf("%d warnings in strict mode", len(warnings)))
			}
			return nil
		},
	}

	inputs = globals.AddInputFlags(cmd, globals.FlagUML, globals.FlagTerminology, globals.FlagCardinalities)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any warning is found")

	return cmd
}
