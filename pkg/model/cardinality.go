package model

import (
	"context"
	"slices"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/logging"
)

// Overrides maps entity name to attribute name to a multiplicity string.
type Overrides map[string]map[string]string

// ApplyCardinalities fills Multiplicity from the override table for every
// attribute the structural source left unset. Existing values always win.
// Unknown targets and malformed intervals are skipped and reported.
func (m Model) ApplyCardinalities(ctx context.Context, overrides Overrides) (int, []Warning) {
	ctx = logging.WithSource(ctx, "cardinalities")

	var warnings []Warning
	warn := func(entity, attr, msg string) {
		logging.FromContext(logging.WithAttribute(logging.WithEntity(ctx, entity), attr)).Warn().Msg(msg)
		warnings = append(warnings, Warning{Source: "cardinalities", Entity: entity, Attribute: attr, Message: msg})
	}

	applied := 0
	entities := make([]string, 0, len(overrides))
	for name := range overrides {
		entities = append(entities, name)
	}
	slices.Sort(entities)

	for _, entityName := range entities {
		attrs := overrides[entityName]
		e, ok := m[entityName]
		if !ok {
			warn(entityName, "", "override for unknown entity")
			continue
		}
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, attrName := range names {
			a, ok := e.Attribute(attrName)
			if !ok {
				warn(entityName, attrName, "override for unknown attribute")
				continue
			}
			if ptr.Deref(a.Multiplicity) != "" {
				continue
			}
			value := NormalizeMultiplicity(attrs[attrName])
			if !ValidMultiplicity(value) {
				warn(entityName, attrName, "invalid cardinality override "+attrs[attrName])
				continue
			}
			a.Multiplicity = ptr.String(value)
			applied++
		}
	}
	return applied, warnings
}
