// Package sources defines the interface shared by the input adapters that
// turn one independently authored description of the domain model into a
// canonical model: the structural model, the terminology table, the wire
// schema and the cardinality override table.
package sources

import (
	"context"
	"slices"

	"github.com/agentstation/dictmap/pkg/model"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source name.
func (id ID) String() string {
	return string(id)
}

// Common source names.
const (
	UMLID           ID = "uml"
	TerminologyID   ID = "terminology"
	APIID           ID = "api"
	CardinalitiesID ID = "cardinalities"
)

// IDs returns all available source IDs.
func IDs() []ID {
	return []ID{
		UMLID,
		TerminologyID,
		APIID,
		CardinalitiesID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source represents one input that can be loaded into a canonical model.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Load reads the source and returns its canonical model.
	// An input that yields no entities is an error.
	Load(ctx context.Context) (model.Model, error)

	// Warnings returns the recoverable conditions met by the last Load
	Warnings() []model.Warning
}

// Sources holds loaded sources by ID.
type Sources struct {
	sources map[ID]Source
}

// NewSources creates a new Sources instance.
func NewSources(srcs ...Source) *Sources {
	s := &Sources{sources: make(map[ID]Source)}
	for _, src := range srcs {
		s.Set(src)
	}
	return s
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	src, found := s.sources[id]
	return src, found
}

// Set registers src under its ID, replacing any previous one.
func (s *Sources) Set(src Source) {
	s.sources[src.ID()] = src
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	return len(s.sources)
}

// Warnings collects the warnings of every source in ID order.
func (s *Sources) Warnings() []model.Warning {
	var out []model.Warning
	for _, id := range IDs() {
		if src, ok := s.sources[id]; ok {
			out = append(out, src.Warnings()...)
		}
	}
	return out
}
