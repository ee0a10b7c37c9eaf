// Package diff implements the diff command.
package diff

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap"
	"github.com/agentstation/dictmap/cmd/application"
	"github.com/agentstation/dictmap/internal/cmd/filter"
	"github.com/agentstation/dictmap/internal/cmd/globals"
	"github.com/agentstation/dictmap/internal/cmd/output"
	"github.com/agentstation/dictmap/internal/cmd/table"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/errors"
)

// NewCommand creates the diff command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		inputs        *globals.InputFlags
		classes       *filter.Classes
		only          string
		ignoreClasses []string
		ignoreAttrs   []string
		summary       bool
	)

	cmd := &cobra.Command{
		Use:     "diff",
		GroupID: "core",
		Short:   "Compare two releases of the structural model",
		Long: `Diff reports the classes and properties added or removed between the
previous release of the structural model and the current one.

Records are listed in class order; class records are followed by the
attributes of the class.`,
		Example: `  dictmap diff --previous prevRelease/USDM_UML.xmi --uml currentRelease/USDM_UML.xmi
  dictmap diff --previous old.xmi --only additions-only -o csv
  dictmap diff --previous old.xmi --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy := differ.ApplyStrategy(only)
			switch strategy {
			case differ.ApplyAll, differ.ApplyAdditionsOnly, differ.ApplyRemovalsOnly, differ.ApplyClassesOnly:
			default:
				return errors.NewValidationError("only", only,
					fmt.Sprintf("must be one of: %s, %s, %s, %s",
						differ.ApplyAll, differ.ApplyAdditionsOnly, differ.ApplyRemovalsOnly, differ.ApplyClassesOnly))
			}

			set, err := classes.Compile()
			if err != nil {
				return err
			}

			opts := append(inputs.Options(cmd), dictmap.WithDifferOptions(
				differ.WithIgnoredClasses(ignoreClasses...),
				differ.WithIgnoredAttributes(ignoreAttrs...),
			))
			dm, err := app.Dictmap(opts...)
			if err != nil {
				return err
			}
			changes, err := dm.Diff(cmd.Context())
			if err != nil {
				return err
			}
			changes = filter.Changes(set, changes.Filter(strategy))

			w, err := app.Output()
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			if summary {
				changes.Print(w)
				return nil
			}
			return output.Write(w, app.OutputFormat(), changes.Records, table.ChangesToTableData(changes))
		},
	}

	inputs = globals.AddInputFlags(cmd, globals.FlagPrevious, globals.FlagUML)
	classes = filter.AddFlags(cmd)
	cmd.Flags().StringVar(&only, "only", string(differ.ApplyAll), "changes to keep: all, additions-only, removals-only, classes-only")
	cmd.Flags().StringSliceVar(&ignoreClasses, "ignore-class", nil, "classes left out of the comparison")
	cmd.Flags().StringSliceVar(&ignoreAttrs, "ignore-attribute", nil, "attribute names left out of the comparison")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a human-readable summary instead of records")

	return cmd
}
