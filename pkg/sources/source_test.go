package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/sources"
)

type stub struct {
	id       sources.ID
	warnings []model.Warning
}

func (s stub) ID() sources.ID                            { return s.id }
func (s stub) Load(context.Context) (model.Model, error) { return model.New(), nil }
func (s stub) Warnings() []model.Warning                 { return s.warnings }

func TestIDs(t *testing.T) {
	for _, id := range sources.IDs() {
		assert.True(t, id.IsValid(), id.String())
	}
	assert.False(t, sources.ID("nope").IsValid())
}

func TestSourcesWarningsInIDOrder(t *testing.T) {
	s := sources.NewSources(
		stub{id: sources.APIID, warnings: []model.Warning{{Source: "api", Entity: "B"}}},
		stub{id: sources.UMLID, warnings: []model.Warning{{Source: "uml", Entity: "A"}}},
	)
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get(sources.TerminologyID)
	assert.False(t, ok)

	w := s.Warnings()
	assert.Equal(t, "uml", w[0].Source)
	assert.Equal(t, "api", w[1].Source)
}
