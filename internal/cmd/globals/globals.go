// Package globals provides the input flags shared by dictmap commands.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap"
)

// Input flag names.
const (
	FlagUML           = "uml"
	FlagTerminology   = "terminology"
	FlagAPI           = "api"
	FlagAPIRoot       = "api-root"
	FlagCardinalities = "cardinalities"
	FlagPrevious      = "previous"
)

// InputFlags holds the input paths a command accepts.
type InputFlags struct {
	UML           string
	Terminology   string
	API           string
	APIRoot       string
	Cardinalities string
	Previous      string
}

// AddInputFlags registers the named input flags on cmd. Unset flags leave
// the configured value in place.
func AddInputFlags(cmd *cobra.Command, names ...string) *InputFlags {
	flags := &InputFlags{}
	for _, name := range names {
		switch name {
		case FlagUML:
			cmd.Flags().StringVar(&flags.UML, FlagUML, "", "structural model (XMI) of the current release")
		case FlagTerminology:
			cmd.Flags().StringVar(&flags.Terminology, FlagTerminology, "", "terminology table (CSV)")
		case FlagAPI:
			cmd.Flags().StringVar(&flags.API, FlagAPI, "", "wire-schema document (JSON or YAML)")
		case FlagAPIRoot:
			cmd.Flags().StringVar(&flags.APIRoot, FlagAPIRoot, "", "schema the wire-schema walk starts from")
		case FlagCardinalities:
			cmd.Flags().StringVar(&flags.Cardinalities, FlagCardinalities, "", "cardinality override table (JSON or YAML)")
		case FlagPrevious:
			cmd.Flags().StringVar(&flags.Previous, FlagPrevious, "", "structural model (XMI) of the previous release")
		default:
			panic("programming error: unknown input flag " + name)
		}
	}
	return flags
}

// Options converts the flags the user set into dictmap options.
func (f *InputFlags) Options(cmd *cobra.Command) []dictmap.Option {
	var opts []dictmap.Option
	changed := func(name string) bool {
		flag := cmd.Flags().Lookup(name)
		return flag != nil && flag.Changed
	}
	if changed(FlagUML) {
		opts = append(opts, dictmap.WithUML(f.UML))
	}
	if changed(FlagTerminology) {
		opts = append(opts, dictmap.WithTerminology(f.Terminology))
	}
	if changed(FlagAPI) {
		opts = append(opts, dictmap.WithAPI(f.API))
	}
	if changed(FlagAPIRoot) {
		opts = append(opts, dictmap.WithAPIRoot(f.APIRoot))
	}
	if changed(FlagCardinalities) {
		// An explicit file must exist.
		opts = append(opts, dictmap.WithCardinalities(f.Cardinalities, true))
	}
	if changed(FlagPrevious) {
		opts = append(opts, dictmap.WithPrevious(f.Previous))
	}
	return opts
}
