// Package align implements the align command.
package align

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap"
	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/internal/cmd/filter"
	"github.com/agentstation/dictmap/internal/cmd/globals"
	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/internal/cmd/table"
	"github.com/agentstation/dictmap/pkg/aligner"
)

// NewCommand creates the align command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		inputs    *globals.InputFlags
		classes   *filter.Classes
		all       bool
		apiExempt []string
		ctExempt  []string
	)

	cmd := &cobra.Command{
		Use:     "align",
		GroupID: "core",
		Short:   "Compare names across the structural model, terminology and wire schema",
		Long: `Align loads the three sources independently and lines up their class
and attribute names. Wire names are matched to model names through their
reference forms (studyId to study, activityIds to activities).

By default only discrepancies are reported: classes missing from a
source, and attribute rows missing a source that is not exempt for that
key.`,
		Example: `  dictmap align                         # Discrepancies only
  dictmap align --all -o csv            # Every aligned row
  dictmap align --ct-exempt id,instanceType,extensionAttributes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := classes.Compile()
			if err != nil {
				return err
			}

			var alignerOpts []aligner.Option
			if cmd.Flags().Changed("api-exempt") {
				alignerOpts = append(alignerOpts, aligner.WithAPIExempt(apiExempt...))
			}
			if cmd.Flags().Changed("ct-exempt") {
				alignerOpts = append(alignerOpts, aligner.WithCTExempt(ctExempt...))
			}

			opts := append(inputs.Options(cmd), dictmap.WithAlignerOptions(alignerOpts...))
			dm, err := app.Dictmap(opts...)
			if err != nil {
				return err
			}
			result, err := dm.Align(cmd.Context())
			if err != nil {
				return err
			}

			records := result.Discrepancies()
			if all {
				records = append(append([]aligner.Record{}, result.Classes...), result.Rows()...)
			}
			records = filter.Alignment(set, records)
			app.Logger().Info().Int("records", len(records)).Msg("alignment written")

			w, err := app.Output()
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			return output.Write(w, app.OutputFormat(), records, table.AlignmentToTableData(records))
		},
	}

	inputs = globals.AddInputFlags(cmd, globals.FlagUML, globals.FlagTerminology, globals.FlagAPI, globals.FlagAPIRoot)
	classes = filter.AddFlags(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "report every row, not only discrepancies")
	cmd.Flags().StringSliceVar(&apiExempt, "api-exempt", nil, "attribute keys never flagged for a missing API name (default instanceType)")
	cmd.Flags().StringSliceVar(&ctExempt, "ct-exempt", nil, "attribute keys never flagged for a missing CT name (default id,instanceType)")

	return cmd
}
