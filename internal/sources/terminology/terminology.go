// Package terminology reads the controlled terminology table: definitions,
// preferred terms, terminology codes and codelist references for every
// class and attribute of the domain model.
//
// The table serves twice. Load builds a standalone canonical model used as
// the terminology view when aligning sources; Populate copies the
// descriptive fields onto an existing structural model.
package terminology

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
)

// Source loads the terminology table from a CSV export or an .xlsx
// workbook.
type Source struct {
	path     string
	rows     []Row
	warnings []model.Warning
}

// Option configures a terminology source.
type Option func(*Source)

// WithPath sets the table path. Files ending in .xlsx are read as
// workbooks, anything else as CSV.
func WithPath(path string) Option {
	return func(s *Source) {
		s.path = path
	}
}

// WithRows supplies already parsed rows instead of a file.
func WithRows(rows []Row) Option {
	return func(s *Source) {
		s.rows = rows
	}
}

// New creates a new terminology source.
func New(opts ...Option) *Source {
	s := &Source{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identifier of this source.
func (s *Source) ID() sources.ID {
	return sources.TerminologyID
}

// Warnings returns the conditions reported by the last Populate.
func (s *Source) Warnings() []model.Warning {
	return s.warnings
}

// Rows returns the rows read so far.
func (s *Source) Rows() []Row {
	return s.rows
}

// Load reads the table and returns the terminology view of the model.
func (s *Source) Load(ctx context.Context) (model.Model, error) {
	if err := s.read(); err != nil {
		return nil, err
	}

	m := model.New()
	for _, r := range s.rows {
		if r.Entity == "" {
			continue
		}
		e := m.Ensure(r.Entity)
		switch {
		case r.IsEntity():
			describeEntity(e, r)
		case r.IsAttribute() && r.Name != "":
			describeAttribute(e.EnsureAttribute(r.Name), r)
		}
	}
	if len(m) == 0 {
		return nil, errors.NewSourceError(s.ID().String(), s.path, errors.ErrEmptySource)
	}

	logging.FromContext(logging.WithSource(ctx, s.ID().String())).Info().
		Str("file", s.path).Int("rows", len(s.rows)).Int("classes", len(m)).
		Msg("terminology loaded")
	return m, nil
}

// Populate copies definitions, terms, codes and codelists onto the
// matching entities and attributes of m. Rows naming an unknown class or
// attribute are skipped and reported.
func (s *Source) Populate(ctx context.Context, m model.Model) ([]model.Warning, error) {
	if err := s.read(); err != nil {
		return nil, err
	}
	ctx = logging.WithSource(ctx, s.ID().String())

	s.warnings = nil
	warn := func(entity, attribute, msg string) {
		logging.FromContext(logging.WithAttribute(logging.WithEntity(ctx, entity), attribute)).Warn().Msg(msg)
		s.warnings = append(s.warnings, model.Warning{Source: s.ID().String(), Entity: entity, Attribute: attribute, Message: msg})
	}

	for _, r := range s.rows {
		e, ok := m.Entity(r.Entity)
		if !ok {
			warn(r.Entity, "", "could not find class")
			continue
		}
		switch {
		case r.IsEntity():
			describeEntity(e, r)
		case r.IsAttribute():
			a, ok := e.Attribute(r.Name)
			if !ok {
				warn(r.Entity, r.Name, "could not find property")
				continue
			}
			describeAttribute(a, r)
		}
	}
	return s.warnings, nil
}

func (s *Source) read() error {
	if s.rows != nil {
		return nil
	}
	if s.path == "" {
		return errors.NewConfigError("terminology", "no terminology file configured", errors.ErrMissingInput)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return errors.WrapSource(s.ID().String(), s.path, errors.WrapIO("open", s.path, err))
	}
	defer func() { _ = f.Close() }()

	decode := ReadRows
	if strings.EqualFold(filepath.Ext(s.path), ".xlsx") {
		decode = ReadWorkbook
	}
	rows, err := decode(f)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.File = s.path
		}
		return errors.WrapSource(s.ID().String(), s.path, err)
	}
	s.rows = rows
	return nil
}

// Blank cells never overwrite earlier values.
func describeEntity(e *model.Entity, r Row) {
	if v := ptr.NonEmpty(r.Definition); v != nil {
		e.Definition = v
	}
	if v := ptr.NonEmpty(r.PreferredTerm); v != nil {
		e.PreferredTerm = v
	}
	if v := ptr.NonEmpty(r.Code); v != nil {
		e.Code = v
	}
}

func describeAttribute(a *model.Attribute, r Row) {
	if v := ptr.NonEmpty(r.Definition); v != nil {
		a.Definition = v
	}
	if v := ptr.NonEmpty(r.PreferredTerm); v != nil {
		a.PreferredTerm = v
	}
	if v := ptr.NonEmpty(r.Code); v != nil {
		a.Code = v
	}
	if r.CodeList != "" {
		a.CodeLists = []string{r.CodeList}
	}
}
