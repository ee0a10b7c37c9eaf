// Package xmi reads the structural model from a UML XMI export.
//
// Every packagedElement of type uml:Class becomes an entity, at any package
// depth. Its uml:Property owned attributes become attributes, typed from the
// exporter extension when present and from the UML type reference
// otherwise. Multiplicity comes from lowerValue/upperValue, then from the
// association connectors of the extension, and inheritance edges from
// generalization.
package xmi

import (
	"context"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
)

const (
	umlClass    = "uml:Class"
	umlProperty = "uml:Property"
)

// Source loads the structural model from an XMI file.
type Source struct {
	path     string
	warnings []model.Warning
}

// Option configures an XMI source.
type Option func(*Source)

// WithPath sets the XMI file path.
func WithPath(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// New creates a new XMI source.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier of this source.
func (s *Source) ID() sources.ID {
	return sources.UMLID
}

// Warnings returns the conditions reported by the last Load.
func (s *Source) Warnings() []model.Warning {
	return s.warnings
}

// Load reads the configured file. A file without classes is an error.
func (s *Source) Load(ctx context.Context) (model.Model, error) {
	if s.path == "" {
		return nil, errors.NewConfigError("uml", "no XMI file configured", errors.ErrMissingInput)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.WrapSource(s.ID().String(), s.path, errors.WrapIO("open", s.path, err))
	}
	defer func() { _ = f.Close() }()

	ctx = logging.WithSource(ctx, s.ID().String())
	m, warnings, err := parse(ctx, f, s.path)
	s.warnings = warnings
	if err != nil {
		return nil, errors.WrapSource(s.ID().String(), s.path, err)
	}
	if len(m) == 0 {
		return nil, errors.NewSourceError(s.ID().String(), s.path, errors.ErrEmptySource)
	}
	logging.FromContext(ctx).Info().Str("file", s.path).Int("classes", len(m)).Msg("structural model loaded")
	return m, nil
}

// Parse reads an XMI document into a canonical model.
func Parse(ctx context.Context, r io.Reader) (model.Model, []model.Warning, error) {
	return parse(ctx, r, "")
}

func parse(ctx context.Context, r io.Reader, file string) (model.Model, []model.Warning, error) {
	var doc document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, errors.WrapParse("xmi", file, err)
	}

	p := &parser{
		ctx:      ctx,
		model:    model.New(),
		names:    make(map[string]string),
		extTypes: make(map[string]string),
		extBound: make(map[string]string),
		links:    make(map[string][]link),
	}
	roots := doc.Packaged
	for _, m := range doc.Models {
		roots = append(roots, m.Packaged...)
	}

	p.index(roots)
	for _, ext := range doc.Extension {
		p.indexExtension(ext)
	}
	p.collect(roots)
	p.model.LinkSubclasses()

	return p.model, p.warnings, nil
}

type parser struct {
	ctx      context.Context
	model    model.Model
	warnings []model.Warning
	names    map[string]string // xmi:id to element name
	extTypes map[string]string // attribute xmi:id to extension type
	extBound map[string]string // attribute xmi:id to extension multiplicity
	links    map[string][]link // class xmi:id to the associations it is the source of
}

// link is the role a class holds an association under.
type link struct {
	role         string
	multiplicity string
}

// index records the name of every identified element so type and
// generalization references can be resolved.
func (p *parser) index(elements []element) {
	for _, e := range elements {
		if id := e.id(); id != "" && e.name() != "" {
			p.names[id] = e.name()
		}
		p.index(e.Packaged)
	}
}

func (p *parser) indexExtension(ext extension) {
	for _, e := range ext.Elements {
		for _, a := range e.Attributes {
			id := attr(a.Attrs, "idref", true)
			if id == "" {
				continue
			}
			if a.Properties != nil && a.Properties.Type != "" {
				p.extTypes[id] = a.Properties.Type
			}
			if a.Bounds != nil && a.Bounds.Lower != "" && a.Bounds.Upper != "" {
				p.extBound[id] = interval(a.Bounds.Lower, a.Bounds.Upper)
			}
		}
	}
	for _, c := range ext.Connectors {
		source := attr(c.Source.Attrs, "idref", true)
		if source == "" || c.Target.Role == nil || c.Target.Role.Name == "" {
			continue
		}
		l := link{role: c.Target.Role.Name}
		if c.Target.Type != nil {
			l.multiplicity = c.Target.Type.Multiplicity
		}
		p.links[source] = append(p.links[source], l)
	}
}

func (p *parser) collect(elements []element) {
	for _, e := range elements {
		if e.kind() == umlClass && e.name() != "" {
			p.class(e)
		}
		p.collect(e.Packaged)
	}
}

func (p *parser) class(e element) {
	name := e.name()
	if p.model.Has(name) {
		p.warn(name, "", "duplicate class, keeping the first declaration")
		return
	}
	entity := p.model.Ensure(name)

	for _, g := range e.Generalizations {
		if super, ok := p.names[g.General]; ok {
			entity.SuperClasses.Add(super)
		}
	}

	for _, oa := range e.OwnedAttributes {
		if kind := oa.kind(); kind != "" && kind != umlProperty {
			continue
		}
		attrName := oa.name()
		if attrName == "" {
			continue
		}
		a := model.NewAttribute(attrName)
		if t := p.typeOf(oa); t != "" {
			a.Types.Add(t)
			a.Resolved = true
		}
		a.Multiplicity = p.multiplicity(oa)
		if !entity.AddAttribute(a) {
			p.warn(name, attrName, "ignoring duplicate property")
		}
	}

	// Connector ends take precedence over the owned attribute bounds.
	for _, l := range p.links[e.id()] {
		if l.multiplicity == "" {
			continue
		}
		a, ok := entity.Attribute(l.role)
		if !ok {
			p.warn(name, l.role, "association role is not an attribute of the class")
			continue
		}
		a.Multiplicity = ptr.String(model.NormalizeMultiplicity(l.multiplicity))
	}
}

// typeOf resolves the display type of an attribute: the extension type,
// then a type reference by id, then an href fragment.
func (p *parser) typeOf(oa ownedAttribute) string {
	if t, ok := p.extTypes[oa.id()]; ok {
		return t
	}
	ref := attr(oa.Attrs, "type", false)
	if ref == "" && oa.Type != nil {
		ref = attr(oa.Type.Attrs, "idref", true)
		if href := attr(oa.Type.Attrs, "href", false); ref == "" && href != "" {
			_, frag, _ := strings.Cut(href, "#")
			return frag
		}
	}
	if ref == "" {
		return ""
	}
	if name, ok := p.names[ref]; ok {
		return name
	}
	// Exporter primitives such as EAJava_String
	if _, primitive, ok := strings.Cut(ref, "_"); ok && strings.HasPrefix(ref, "EA") {
		return primitive
	}
	return constants.Unknown
}

func (p *parser) multiplicity(oa ownedAttribute) *string {
	if oa.Lower == nil && oa.Upper == nil {
		if bound, ok := p.extBound[oa.id()]; ok {
			return ptr.String(bound)
		}
		return nil
	}
	lower, upper := "1", "1"
	if oa.Lower != nil && oa.Lower.Value != "" {
		lower = oa.Lower.Value
	}
	if oa.Upper != nil && oa.Upper.Value != "" {
		upper = oa.Upper.Value
	}
	return ptr.String(interval(lower, upper))
}

func interval(lower, upper string) string {
	if upper == "-1" {
		upper = "*"
	}
	if lower == "*" || lower == "-1" {
		lower = "0"
	}
	return lower + ".." + upper
}

func (p *parser) warn(entity, attribute, msg string) {
	logging.FromContext(logging.WithAttribute(logging.WithEntity(p.ctx, entity), attribute)).Warn().Msg(msg)
	p.warnings = append(p.warnings, model.Warning{Source: string(sources.UMLID), Entity: entity, Attribute: attribute, Message: msg})
}

// charsetReader decodes exports declared in a legacy encoding such as windows-1252.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}
