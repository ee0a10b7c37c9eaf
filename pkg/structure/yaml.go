package structure

import (
	"github.com/goccy/go-yaml"

	"github.com/agentstation/dictmap/pkg/constants"
)

// Published key names.
const (
	keyCode          = "NCI C-Code"
	keyPreferredTerm = "Preferred Term"
	keyDefinition    = "Definition"
	keySuperClasses  = "Super Classes"
	keySubClasses    = "Sub Classes"
	keyModifier      = "Modifier"
	keyAttributes    = "Attributes"
	keyType          = "Type"
	keyCardinality   = "Cardinality"
	keyCodeListRef   = "Codelist Ref"
	keyRelationship  = "Relationship Type"
	keyModelName     = "Model Name"
	keyInheritedFrom = "Inherited From"
)

// MarshalYAML renders the document as one mapping per class, keyed by class
// name, with empty fields left out and class references written as
// {$ref: "#/Name"}.
func (d *Document) MarshalYAML() (any, error) {
	return d.MapSlice(), nil
}

// MapSlice returns the ordered mapping MarshalYAML encodes.
func (d *Document) MapSlice() yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(d.Classes))
	for i := range d.Classes {
		c := &d.Classes[i]
		out = append(out, yaml.MapItem{Key: c.Name, Value: c.mapSlice()})
	}
	return out
}

func (c *Class) mapSlice() yaml.MapSlice {
	var m yaml.MapSlice
	m = putString(m, keyCode, c.Code)
	m = putString(m, keyPreferredTerm, c.PreferredTerm)
	m = putString(m, keyDefinition, c.Definition)
	if len(c.SuperClasses) > 0 {
		m = append(m, yaml.MapItem{Key: keySuperClasses, Value: refs(c.SuperClasses)})
	}
	if len(c.SubClasses) > 0 {
		m = append(m, yaml.MapItem{Key: keySubClasses, Value: refs(c.SubClasses)})
	}
	m = append(m, yaml.MapItem{Key: keyModifier, Value: c.Modifier})

	attrs := make(yaml.MapSlice, 0, len(c.Attributes))
	for i := range c.Attributes {
		a := &c.Attributes[i]
		attrs = append(attrs, yaml.MapItem{Key: a.Key, Value: a.mapSlice(c.InSchema)})
	}
	return append(m, yaml.MapItem{Key: keyAttributes, Value: attrs})
}

func (a *Attribute) mapSlice(inSchema bool) yaml.MapSlice {
	var m yaml.MapSlice
	if len(a.Types) > 0 {
		m = append(m, yaml.MapItem{Key: keyType, Value: refs(a.Types)})
	}
	m = putString(m, keyCode, a.Code)
	m = putString(m, keyCardinality, a.Cardinality)
	m = putString(m, keyPreferredTerm, a.PreferredTerm)
	m = putString(m, keyDefinition, a.Definition)
	m = putString(m, keyCodeListRef, a.CodeListRef)
	if inSchema {
		m = append(m, yaml.MapItem{Key: keyRelationship, Value: a.Relationship.String()})
	}
	if a.Synthetic {
		return m
	}
	m = append(m, yaml.MapItem{Key: keyModelName, Value: a.ModelName})
	if a.InheritedFrom != "" {
		m = append(m, yaml.MapItem{Key: keyInheritedFrom, Value: ref(a.InheritedFrom)})
	}
	return m
}

func putString(m yaml.MapSlice, key, value string) yaml.MapSlice {
	if value == "" {
		return m
	}
	return append(m, yaml.MapItem{Key: key, Value: value})
}

func ref(name string) yaml.MapSlice {
	if name == constants.Unknown {
		return yaml.MapSlice{{Key: "$ref", Value: constants.Unknown}}
	}
	return yaml.MapSlice{{Key: "$ref", Value: "#/" + name}}
}

func refs(names []string) []yaml.MapSlice {
	out := make([]yaml.MapSlice, len(names))
	for i, n := range names {
		out[i] = ref(n)
	}
	return out
}
