package xmi_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/sources/xmi"
	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
)

func TestLoad(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	src := xmi.New(xmi.WithPath("testdata/model.xmi"))
	m, err := src.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Study", "StudyVersion", "Versioned"}, m.Names())

	study := m["Study"]
	assert.Equal(t, []string{"id", "name", "versions"}, study.AttributeNames())

	tests := []struct {
		entity, attr string
		typ          string
		multiplicity string
	}{
		{"Study", "id", "String", "1..1"},
		{"Study", "versions", "StudyVersion", "0..*"},
		{"Study", "name", "String", ""},
		{"StudyVersion", "label", "String", "0..1"},
		{"Versioned", "version", "int", ""},
	}
	for _, tt := range tests {
		t.Run(tt.entity+"."+tt.attr, func(t *testing.T) {
			a, ok := m[tt.entity].Attribute(tt.attr)
			require.True(t, ok)
			assert.Equal(t, tt.typ, a.Types.String())
			assert.Equal(t, tt.multiplicity, ptr.Deref(a.Multiplicity))
		})
	}

	assert.Equal(t, []string{"Versioned"}, m["StudyVersion"].SuperClasses.Values())
	assert.Equal(t, []string{"StudyVersion"}, m["Versioned"].SubClasses.Values())
	assert.NoError(t, m.Validate())

	require.Len(t, src.Warnings(), 1)
	assert.Equal(t, "name", src.Warnings()[0].Attribute)
	tl.AssertContains(t, "ignoring duplicate property")
}

func TestLoadErrors(t *testing.T) {
	_, err := xmi.New().Load(context.Background())
	assert.True(t, errors.IsMissingInput(err))

	_, err = xmi.New(xmi.WithPath("testdata/missing.xmi")).Load(context.Background())
	var srcErr *errors.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "uml", srcErr.Source)
}

func TestParseEmptyAndMalformed(t *testing.T) {
	m, _, err := xmi.Parse(context.Background(), strings.NewReader(`<xmi:XMI xmlns:xmi="x"></xmi:XMI>`))
	require.NoError(t, err)
	assert.Empty(t, m)

	_, _, err = xmi.Parse(context.Background(), strings.NewReader(`<xmi:XMI`))
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadConnectorMultiplicity(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	src := xmi.New(xmi.WithPath("testdata/connectors.xmi"))
	m, err := src.Load(ctx)
	require.NoError(t, err)

	tests := []struct {
		entity, attr string
		multiplicity string
	}{
		{"StudyDesign", "activities", "0..*"},
		{"StudyDesign", "arms", "1..*"},
		{"StudyDesign", "notes", ""},
		{"Activity", "next", "1..1"},
	}
	for _, tt := range tests {
		t.Run(tt.entity+"."+tt.attr, func(t *testing.T) {
			a, ok := m[tt.entity].Attribute(tt.attr)
			require.True(t, ok)
			assert.Equal(t, tt.multiplicity, ptr.Deref(a.Multiplicity))
		})
	}

	_, ok := m["StudyDesign"].Attribute("ghost")
	assert.False(t, ok, "roles never create attributes")
	require.Len(t, src.Warnings(), 1)
	assert.Equal(t, "StudyDesign", src.Warnings()[0].Entity)
	assert.Equal(t, "ghost", src.Warnings()[0].Attribute)
	tl.AssertContains(t, "association role is not an attribute of the class")
}
