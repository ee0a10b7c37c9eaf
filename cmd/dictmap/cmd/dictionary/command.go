// Package dictionary implements the dictionary command.
package dictionary

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap"
	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/internal/cmd/filter"
	"github.com/agentstation/dictmap/internal/cmd/globals"
	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/internal/cmd/table"
)

// NewCommand creates the dictionary command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		inputs    *globals.InputFlags
		classes   *filter.Classes
		noInherit bool
	)

	cmd := &cobra.Command{
		Use:     "dictionary",
		GroupID: "core",
		Short:   "Generate the data dictionary",
		Long: `Dictionary reads the structural model, describes every class and
attribute from the terminology table, fills missing cardinalities from the
override table and copies inherited attributes into subclasses.

The result is one row per class followed by one row per attribute.
Markdown is the default output format.`,
		Example: `  dictmap dictionary                                  # Use configured inputs
  dictmap dictionary --uml USDM_UML.xmi --terminology USDM_CT.csv
  dictmap dictionary -o csv --output-file dictionary.csv
  dictmap dictionary --class 'Study*' -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := classes.Compile()
			if err != nil {
				return err
			}

			opts := inputs.Options(cmd)
			if noInherit {
				opts = append(opts, dictmap.WithInheritance(false))
			}
			dm, err := app.Dictmap(opts...)
			if err != nil {
				return err
			}

			m, err := dm.Dictionary(cmd.Context())
			if err != nil {
				return err
			}
			m = filter.Model(set, m)

			w, err := app.Output()
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			format := app.OutputFormat()
			if format == "" {
				format = string(output.FormatMarkdown)
			}
			return output.Write(w, format, m, table.DictionaryToTableData(m))
		},
	}

	inputs = globals.AddInputFlags(cmd, globals.FlagUML, globals.FlagTerminology, globals.FlagCardinalities)
	classes = filter.AddFlags(cmd)
	cmd.Flags().BoolVar(&noInherit, "no-inherit", false, "do not copy inherited attributes into subclasses")

	return cmd
}
