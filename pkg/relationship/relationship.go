// Package relationship decides how the wire schema models an attribute of
// the structural model: as an embedded value, a single reference or a list
// of references. Wire properties no attribute claims are reified as
// synthetic attributes.
package relationship

import (
	"strings"

	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/synonyms"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

// Kind is the relationship classification of a match.
type Kind int

// Relationship kinds.
const (
	Unclassified Kind = iota
	Value
	Reference
	ReferenceList
)

// String returns the label used in rendered documents.
func (k Kind) String() string {
	switch k {
	case Value:
		return "Value"
	case Reference:
		return "Ref"
	case ReferenceList:
		return "Ref List"
	default:
		return constants.Unknown
	}
}

// MarshalText encodes the kind as its label.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsReference reports whether k is Reference or ReferenceList.
func (k Kind) IsReference() bool {
	return k == Reference || k == ReferenceList
}

// Match is the outcome of classifying one attribute.
type Match struct {
	Kind     Kind
	Property string               // Wire name that matched; empty when Unclassified
	Schema   *wireschema.Property // Matched property; nil when Unclassified
}

// Classify probes props for the reference forms of attr's name in order.
// The first present candidate is taken out of props and classified; later
// attributes can no longer match it. A nil set classifies as Unclassified.
func Classify(attr *model.Attribute, props *wireschema.PropertySet) Match {
	for _, candidate := range synonyms.ToReferenceForms(attr.Name) {
		p, ok := props.Take(candidate)
		if !ok {
			continue
		}
		return Match{Kind: kindOf(attr.Name, candidate), Property: candidate, Schema: p}
	}
	return Match{Kind: Unclassified}
}

func kindOf(name, candidate string) Kind {
	switch {
	case candidate == name:
		return Value
	case strings.HasSuffix(candidate, synonyms.IDsSuffix):
		return ReferenceList
	default:
		return Reference
	}
}

// Synthetic is a wire-schema property that no structural attribute claimed.
type Synthetic struct {
	Name         string
	Type         string
	Multiplicity string // Empty when unknown
	Kind         Kind   // Always Value
}

// Synthesize reifies every property still in props. Arrays become 0..*
// with the resolved item class (or UNKNOWN); string scalars and constants
// of any literal type become 0..1 string; anything else is UNKNOWN without
// a multiplicity.
func Synthesize(props *wireschema.PropertySet, doc *wireschema.Document) []Synthetic {
	remaining := props.Remaining()
	out := make([]Synthetic, 0, len(remaining))
	for _, p := range remaining {
		s := Synthetic{Name: p.Name, Type: constants.Unknown, Kind: Value}
		switch {
		case p.Kind == wireschema.Array:
			s.Multiplicity = constants.CardinalityMany
			if p.Items.Kind == wireschema.Ref && doc != nil {
				s.Type = doc.Resolve(p.Items.Ref)
			}
		case p.Kind == wireschema.Const || p.IsString():
			s.Multiplicity = constants.CardinalityOptional
			s.Type = constants.String
		}
		out = append(out, s)
	}
	return out
}
