// Package filter restricts command results to the classes named by
// --class patterns.
package filter

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dictmap/internal/matcher"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/model"
)

// Classes holds the class patterns a command was given.
type Classes struct {
	Patterns   []string
	IgnoreCase bool
}

// AddFlags registers --class and --ignore-case on cmd.
func AddFlags(cmd *cobra.Command) *Classes {
	f := &Classes{}
	cmd.Flags().StringSliceVar(&f.Patterns, "class", nil,
		"only report classes matching these glob or regex patterns (e.g. Study*, ^Code$)")
	cmd.Flags().BoolVar(&f.IgnoreCase, "ignore-case", false, "match class patterns case-insensitively")
	return f
}

// Compile compiles the patterns. A nil receiver compiles to an empty set.
func (f *Classes) Compile() (*matcher.Set, error) {
	if f == nil {
		return nil, nil
	}
	set, err := matcher.NewSet(f.Patterns, &matcher.Options{CaseInsensitive: f.IgnoreCase})
	if err != nil {
		return nil, errors.WrapValidation("class", err)
	}
	return set, nil
}

// Model returns the entities of m whose name matches. The entities are
// shared with m.
func Model(set *matcher.Set, m model.Model) model.Model {
	if set.Empty() {
		return m
	}
	out := model.New()
	for _, name := range set.Filter(m.Names()...) {
		out[name] = m[name]
	}
	return out
}

// Alignment returns the records whose class matches.
func Alignment(set *matcher.Set, records []aligner.Record) []aligner.Record {
	if set.Empty() {
		return records
	}
	out := make([]aligner.Record, 0, len(records))
	for _, r := range records {
		if set.Match(r.Class) {
			out = append(out, r)
		}
	}
	return out
}

// Changes returns the changes whose class matches.
func Changes(set *matcher.Set, changes *differ.Changeset) *differ.Changeset {
	if set.Empty() {
		return changes
	}
	return changes.Select(func(r differ.Record) bool { return set.Match(r.Class) })
}
