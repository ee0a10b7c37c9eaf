package wireschema

import (
	"context"
	"strings"

	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
)

var refPrefixes = []string{
	"#/components/schemas/",
	"#/$defs/",
	"#/definitions/",
}

// Schema is one named class of the wire document.
type Schema struct {
	Key        string      // Key under components.schemas
	Title      string      // Declared title, the class name
	Alias      string      // Set when the schema is itself a bare $ref
	Properties []*Property // Declaration order
}

// Name returns the class name: the title, falling back to the key.
func (s *Schema) Name() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Key
}

// Document is a loaded wire-schema document.
type Document struct {
	schemas map[string]*Schema
	keys    []string
}

func newDocument() *Document {
	return &Document{schemas: make(map[string]*Schema)}
}

func (d *Document) add(s *Schema) {
	if _, ok := d.schemas[s.Key]; ok {
		return
	}
	d.schemas[s.Key] = s
	d.keys = append(d.keys, s.Key)
}

// Len returns the number of schemas.
func (d *Document) Len() int {
	return len(d.keys)
}

// Schema looks up a schema by key.
func (d *Document) Schema(key string) (*Schema, bool) {
	s, ok := d.schemas[key]
	return s, ok
}

// Properties returns a fresh property set for class, looked up by key and
// then by key with the output suffix. The second result is false when the
// class is absent from the document.
func (d *Document) Properties(class string) (*PropertySet, bool) {
	for _, key := range []string{class, class + constants.OutputSchemaSuffix} {
		if s, ok := d.schemas[key]; ok {
			return NewPropertySet(s.Properties...), true
		}
	}
	return nil, false
}

// Target follows ref, and any alias chain behind it, to a schema.
// Cycles and dangling references report false.
func (d *Document) Target(ref string) (*Schema, bool) {
	visited := make(map[string]bool)
	for {
		key, ok := refKey(ref)
		if !ok || visited[key] {
			return nil, false
		}
		visited[key] = true
		s, ok := d.schemas[key]
		if !ok {
			return nil, false
		}
		if s.Alias == "" || len(s.Properties) > 0 {
			return s, true
		}
		ref = s.Alias
	}
}

// Resolve returns the class name ref points to, or UNKNOWN.
func (d *Document) Resolve(ref string) string {
	if s, ok := d.Target(ref); ok {
		return s.Name()
	}
	return constants.Unknown
}

// TypeName returns the display type of p: the scalar type, the resolved
// class of a reference, the element type of an array or the type of the
// first union member.
func (d *Document) TypeName(p *Property) string {
	switch p.Kind {
	case Scalar:
		return p.Type
	case Ref:
		return d.Resolve(p.Ref)
	case Array:
		return d.TypeName(p.Items)
	case Union:
		if len(p.Variants) == 0 {
			return constants.Unknown
		}
		return d.TypeName(p.Variants[0])
	case Const:
		if p.IsString() {
			return constants.String
		}
	}
	return constants.Unknown
}

// Model walks the document from the root schema key through every
// referenced schema, union members and array items included, and builds
// a canonical model of the reachable classes. Each attribute takes the
// type of its first variant. Dangling references become UNKNOWN and are
// reported as warnings.
func (d *Document) Model(ctx context.Context, root string) (model.Model, []model.Warning, error) {
	s, ok := d.schemas[root]
	if !ok {
		return nil, nil, errors.NewNotFoundError("schema", root)
	}

	b := &builder{
		doc:    d,
		model:  model.New(),
		ctx:    logging.WithSource(ctx, "api"),
	}
	b.visit(s)
	return b.model, b.warnings, nil
}

type builder struct {
	doc      *Document
	model    model.Model
	warnings []model.Warning
	ctx      context.Context
}

func (b *builder) visit(s *Schema) {
	name := s.Name()
	if b.model.Has(name) {
		return
	}
	e := b.model.Ensure(name)

	for _, p := range s.Properties {
		e.AddAttribute(model.NewAttribute(p.Name, b.doc.TypeName(p.First())))
		for _, ref := range p.Refs() {
			target, ok := b.doc.Target(ref)
			if !ok {
				b.warn(name, p.Name, "unresolvable reference "+ref)
				continue
			}
			b.visit(target)
		}
	}
}

func (b *builder) warn(entity, attribute, msg string) {
	logging.FromContext(logging.WithAttribute(logging.WithEntity(b.ctx, entity), attribute)).Warn().Msg(msg)
	b.warnings = append(b.warnings, model.Warning{Source: "api", Entity: entity, Attribute: attribute, Message: msg})
}

func refKey(ref string) (string, bool) {
	for _, prefix := range refPrefixes {
		if key, ok := strings.CutPrefix(ref, prefix); ok && key != "" {
			return key, true
		}
	}
	return "", false
}
