// Package structure merges the structural model, enriched by the
// terminology table, with the wire schema into a per-class structure
// document: every attribute with its relationship type, followed by the
// wire properties the model does not declare.
package structure

import (
	"context"
	"strings"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/relationship"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

// Class modifiers.
const (
	Abstract = "Abstract" // not described by the wire schema
	Concrete = "Concrete"
)

// UnmatchedMarker is appended to the key of an attribute the wire schema
// does not describe although it describes the class.
const UnmatchedMarker = "*"

// Document is the merged structure of every class.
type Document struct {
	Classes []Class
}

// Class is the merged structure of one entity.
type Class struct {
	Name          string      `json:"name"`
	Code          string      `json:"code,omitempty"`
	PreferredTerm string      `json:"preferred_term,omitempty"`
	Definition    string      `json:"definition,omitempty"`
	SuperClasses  []string    `json:"super_classes,omitempty"`
	SubClasses    []string    `json:"sub_classes,omitempty"`
	Modifier      string      `json:"modifier"`
	InSchema      bool        `json:"-"`
	Attributes    []Attribute `json:"attributes"`
}

// Attribute is one entry of a class's attribute list.
type Attribute struct {
	Key           string            `json:"key"`                  // Wire name when matched, model name otherwise
	ModelName     string            `json:"model_name,omitempty"` // Empty for synthetic attributes
	Types         []string          `json:"types,omitempty"`
	Code          string            `json:"code,omitempty"`
	Cardinality   string            `json:"cardinality,omitempty"`
	PreferredTerm string            `json:"preferred_term,omitempty"`
	Definition    string            `json:"definition,omitempty"`
	CodeListRef   string            `json:"codelist_ref,omitempty"`
	Relationship  relationship.Kind `json:"relationship"`
	InheritedFrom string            `json:"inherited_from,omitempty"`
	Synthetic     bool              `json:"synthetic,omitempty"`
}

// Build merges m with doc. Entities are visited in name order, their
// attributes in name order; synthetic attributes follow in declaration order.
func Build(ctx context.Context, m model.Model, doc *wireschema.Document) *Document {
	logger := logging.FromContext(logging.WithOperation(ctx, "structure"))

	out := &Document{Classes: make([]Class, 0, len(m))}
	unclassified := 0
	for _, name := range m.Names() {
		e := m[name]
		props, inSchema := doc.Properties(name)

		c := Class{
			Name:          e.Name,
			Code:          ptr.Deref(e.Code),
			PreferredTerm: ptr.Deref(e.PreferredTerm),
			Definition:    ptr.Deref(e.Definition),
			SuperClasses:  e.SuperClasses.Values(),
			SubClasses:    e.SubClasses.Values(),
			Modifier:      Abstract,
			InSchema:      inSchema,
		}
		if inSchema {
			c.Modifier = Concrete
		}

		for _, attrName := range e.AttributeNames() {
			a := e.Attributes[attrName]
			match := relationship.Classify(a, props)

			key := a.Name
			switch {
			case match.Kind != relationship.Unclassified:
				key = match.Property
			case inSchema:
				key += UnmatchedMarker
				unclassified++
				logger.Debug().Str("entity", name).Str("attribute", a.Name).Msg("attribute not in wire schema")
			}

			c.Attributes = append(c.Attributes, Attribute{
				Key:           key,
				ModelName:     a.Name,
				Types:         a.Types.Values(),
				Code:          ptr.Deref(a.Code),
				Cardinality:   ptr.Deref(a.Multiplicity),
				PreferredTerm: ptr.Deref(a.PreferredTerm),
				Definition:    ptr.Deref(a.Definition),
				CodeListRef:   strings.Join(a.CodeLists, ", "),
				Relationship:  match.Kind,
				InheritedFrom: ptr.Deref(a.InheritedFrom),
			})
		}

		for _, s := range relationship.Synthesize(props, doc) {
			c.Attributes = append(c.Attributes, Attribute{
				Key:          s.Name,
				Types:        []string{s.Type},
				Cardinality:  s.Multiplicity,
				Relationship: s.Kind,
				Synthetic:    true,
			})
		}

		out.Classes = append(out.Classes, c)
	}

	logger.Info().Int("classes", len(out.Classes)).Int("unmatched", unclassified).Msg("structure built")
	return out
}

// Class looks up a class by name.
func (d *Document) Class(name string) (*Class, bool) {
	for i := range d.Classes {
		if d.Classes[i].Name == name {
			return &d.Classes[i], true
		}
	}
	return nil, false
}

// Attribute looks up an attribute by key.
func (c *Class) Attribute(key string) (*Attribute, bool) {
	for i := range c.Attributes {
		if c.Attributes[i].Key == key {
			return &c.Attributes[i], true
		}
	}
	return nil, false
}
