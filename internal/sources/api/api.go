// Package api loads the wire schema and the canonical model reachable from
// its root schema.
package api

import (
	"context"

	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

// Source loads the API model from a wire-schema document.
type Source struct {
	path     string
	root     string
	doc      *wireschema.Document
	warnings []model.Warning
}

// Option configures an API source.
type Option func(*Source)

// WithPath sets the wire-schema file path.
func WithPath(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithRoot sets the root schema key.
func WithRoot(root string) Option {
	return func(s *Source) {
		if root != "" {
			s.root = root
		}
	}
}

// WithDocument uses an already loaded document instead of reading a file.
func WithDocument(doc *wireschema.Document) Option {
	return func(s *Source) {
		s.doc = doc
	}
}

// New creates a new API source.
func New(opts ...Option) *Source {
	s := &Source{root: constants.DefaultAPIRoot}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier of this source.
func (s *Source) ID() sources.ID {
	return sources.APIID
}

// Warnings returns the conditions reported by the last Load.
func (s *Source) Warnings() []model.Warning {
	return s.warnings
}

// Document returns the wire schema, reading it on first use.
func (s *Source) Document() (*wireschema.Document, error) {
	if s.doc != nil {
		return s.doc, nil
	}
	if s.path == "" {
		return nil, errors.NewConfigError("api", "no wire schema configured", errors.ErrMissingInput)
	}
	doc, err := wireschema.LoadFile(s.path)
	if err != nil {
		return nil, errors.WrapSource(s.ID().String(), s.path, err)
	}
	s.doc = doc
	return doc, nil
}

// Load builds the model of every class reachable from the root schema.
func (s *Source) Load(ctx context.Context) (model.Model, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	ctx = logging.WithSource(ctx, s.ID().String())
	m, warnings, err := doc.Model(ctx, s.root)
	s.warnings = warnings
	if err != nil {
		return nil, errors.WrapSource(s.ID().String(), s.path, err)
	}
	if len(m) == 0 {
		return nil, errors.NewSourceError(s.ID().String(), s.path, errors.ErrEmptySource)
	}
	logging.FromContext(ctx).Info().
		Str("root", s.root).
		Int("classes", len(m)).
		Int("warnings", len(warnings)).
		Msg("api model loaded")
	return m, nil
}
