// Package structure implements the structure command.
package structure

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/internal/cmd/globals"
	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/pkg/errors"
)

// NewCommand creates the structure command.
func NewCommand(app application.Application) *cobra.Command {
	var inputs *globals.InputFlags

	cmd := &cobra.Command{
		Use:     "structure",
		GroupID: "core",
		Short:   "Generate the structure document",
		Long: `Structure merges the enriched structural model with the wire schema.
Every attribute is keyed by its wire name and classified as a value, a
reference or a reference list. Wire properties the model does not declare
follow as synthetic attributes.

Only yaml and json output are supported; yaml is the default.`,
		Example: `  dictmap structure --api USDM_API.json > dataStructure.yml
  dictmap structure -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output.Format(app.OutputFormat())
			switch format {
			case "":
				format = output.FormatYAML
			case output.FormatYAML, output.FormatJSON:
			default:
				return errors.NewValidationError("format", format, "structure supports yaml and json only")
			}

			dm, err := app.Dictmap(inputs.Options(cmd)...)
			if err != nil {
				return err
			}
			doc, err := dm.Structure(cmd.Context())
			if err != nil {
				return err
			}

			w, err := app.Output()
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			return output.NewFormatter(format).Format(w, doc)
		},
	}

	inputs = globals.AddInputFlags(cmd, globals.FlagUML, globals.FlagTerminology, globals.FlagAPI, globals.FlagCardinalities)

	return cmd
}
