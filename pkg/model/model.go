package model

import (
	"slices"

	"github.com/jinzhu/copier"
)

// Model is a canonical model: entity name to entity.
type Model map[string]*Entity

// Entity represents a class of the domain model.
type Entity struct {
	// Identity
	Name string `json:"name" yaml:"name"` // Unique within a Model

	// Terminology - filled by the terminology source
	Definition    *string `json:"definition,omitempty" yaml:"definition,omitempty"`         // Human-readable definition
	PreferredTerm *string `json:"preferred_term,omitempty" yaml:"preferred_term,omitempty"` // Preferred term
	Code          *string `json:"code,omitempty" yaml:"code,omitempty"`                     // Controlled terminology code (NCI C-code)

	// Inheritance edges, by entity name
	SuperClasses Set `json:"super_classes,omitempty" yaml:"super_classes,omitempty"`
	SubClasses   Set `json:"sub_classes,omitempty" yaml:"sub_classes,omitempty"`

	// Attributes by name
	Attributes map[string]*Attribute `json:"attributes" yaml:"attributes"`
}

// Attribute represents a property of an Entity.
type Attribute struct {
	Name         string   `json:"name" yaml:"name"`                                     // Unique within its entity
	Types        Set      `json:"types,omitempty" yaml:"types,omitempty"`               // Declared types; a union when more than one
	Multiplicity *string  `json:"multiplicity,omitempty" yaml:"multiplicity,omitempty"` // Interval "<min>..<max|*>"
	CodeLists    []string `json:"code_lists,omitempty" yaml:"code_lists,omitempty"`     // Controlled vocabulary references

	Definition    *string `json:"definition,omitempty" yaml:"definition,omitempty"`
	PreferredTerm *string `json:"preferred_term,omitempty" yaml:"preferred_term,omitempty"`
	Code          *string `json:"code,omitempty" yaml:"code,omitempty"`

	InheritedFrom *string `json:"inherited_from,omitempty" yaml:"inherited_from,omitempty"` // Declaring ancestor, nil when local

	// Resolved is set by sources that assign a concrete type; Types must then be non-empty.
	Resolved bool `json:"-" yaml:"-"`
}

// New creates an empty model.
func New() Model {
	return make(Model)
}

// NewEntity creates an entity with no attributes.
func NewEntity(name string) *Entity {
	return &Entity{
		Name:       name,
		Attributes: make(map[string]*Attribute),
	}
}

// NewAttribute creates an attribute with the given declared types.
// An attribute created with at least one type is marked Resolved.
func NewAttribute(name string, types ...string) *Attribute {
	a := &Attribute{Name: name}
	for _, t := range types {
		if t != "" {
			a.Types.Add(t)
		}
	}
	a.Resolved = a.Types.Len() > 0
	return a
}

// Ensure returns the entity called name, creating it on first mention.
func (m Model) Ensure(name string) *Entity {
	if e, ok := m[name]; ok {
		return e
	}
	e := NewEntity(name)
	m[name] = e
	return e
}

// Entity looks up an entity by name.
func (m Model) Entity(name string) (*Entity, bool) {
	e, ok := m[name]
	return e, ok
}

// Has reports whether the model contains an entity called name.
func (m Model) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Names returns entity names in byte-wise order.
func (m Model) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	out := make(Model, len(m))
	for name, e := range m {
		out[name] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	var c Entity
	if err := copier.CopyWithOption(&c, e, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, impossible for identical types
		panic(err)
	}
	c.Attributes = make(map[string]*Attribute, len(e.Attributes))
	for name, a := range e.Attributes {
		c.Attributes[name] = a.Clone()
	}
	return &c
}

// Attribute looks up an attribute by name.
func (e *Entity) Attribute(name string) (*Attribute, bool) {
	a, ok := e.Attributes[name]
	return a, ok
}

// AddAttribute adds a unless an attribute with the same name exists.
// The first declaration wins; it reports whether a was added.
func (e *Entity) AddAttribute(a *Attribute) bool {
	if e.Attributes == nil {
		e.Attributes = make(map[string]*Attribute)
	}
	if _, ok := e.Attributes[a.Name]; ok {
		return false
	}
	e.Attributes[a.Name] = a
	return true
}

// EnsureAttribute returns the attribute called name, creating an untyped one on first mention.
func (e *Entity) EnsureAttribute(name string) *Attribute {
	if a, ok := e.Attribute(name); ok {
		return a
	}
	a := NewAttribute(name)
	e.AddAttribute(a)
	return a
}

// AttributeNames returns attribute names in byte-wise order.
func (e *Entity) AttributeNames() []string {
	names := make([]string, 0, len(e.Attributes))
	for name := range e.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the attribute.
func (a *Attribute) Clone() *Attribute {
	var c Attribute
	if err := copier.CopyWithOption(&c, a, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &c
}

// IsInherited reports whether the attribute was copied from an ancestor.
func (a *Attribute) IsInherited() bool {
	return a.InheritedFrom != nil
}
