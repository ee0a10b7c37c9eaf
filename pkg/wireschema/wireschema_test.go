package wireschema_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/logging"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

func loadFixture(t *testing.T) *wireschema.Document {
	t.Helper()
	doc, err := wireschema.LoadFile("testdata/api.json")
	require.NoError(t, err)
	return doc
}

func names(props []*wireschema.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.Name)
	}
	return out
}

func TestLoadVariants(t *testing.T) {
	doc := loadFixture(t)

	props, ok := doc.Properties("Study")
	require.True(t, ok, "falls back to the -Output key")

	tests := []struct {
		name string
		kind wireschema.Kind
	}{
		{"id", wireschema.Scalar},
		{"versions", wireschema.Array},
		{"instanceType", wireschema.Const},
		{"documentedBy", wireschema.Union},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := props.Get(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, p.Kind)
		})
	}

	p, _ := props.Get("versions")
	assert.Equal(t, wireschema.Ref, p.Items.Kind)

	c, _ := props.Get("instanceType")
	assert.True(t, c.IsString())
	assert.Equal(t, "Study", c.Literal)
}

func TestPropertySetKeepsDeclarationOrder(t *testing.T) {
	doc := loadFixture(t)
	props, ok := doc.Properties("StudyVersion")
	require.True(t, ok)

	assert.Equal(t, 6, props.Len())
	assert.True(t, props.Has("notes"))

	p, ok := props.Take("notes")
	require.True(t, ok)
	assert.Equal(t, "notes", p.Name)
	assert.False(t, props.Has("notes"))

	_, ok = props.Take("notes")
	assert.False(t, ok, "a property is consumed once")

	assert.Equal(t, []string{"id", "studyIdentifiers", "activityIds", "parent", "ghost"}, names(props.Remaining()))

	fresh, _ := doc.Properties("StudyVersion")
	assert.True(t, fresh.Has("notes"), "each lookup yields an owned set")
}

func TestPropertiesMissingClass(t *testing.T) {
	doc := loadFixture(t)
	props, ok := doc.Properties("Nope")
	assert.False(t, ok)
	assert.Nil(t, props)
	assert.Zero(t, props.Len())
	assert.False(t, props.Has("x"))
}

func TestResolve(t *testing.T) {
	doc := loadFixture(t)

	tests := []struct {
		ref  string
		want string
	}{
		{"#/components/schemas/StudyVersion-Output", "StudyVersion"},
		{"#/components/schemas/StudyDefinitionDocument", "StudyDefinitionDocument"},
		{"#/components/schemas/Missing", constants.Unknown},
		{"#/components/schemas/LoopA", constants.Unknown},
		{"not-a-ref", constants.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.Resolve(tt.ref))
		})
	}
}

func TestModel(t *testing.T) {
	doc := loadFixture(t)
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	m, warnings, err := doc.Model(ctx, constants.DefaultAPIRoot)
	require.NoError(t, err)

	assert.Equal(t, []string{"Study", "StudyDefinitionDocument", "StudyIdentifier", "StudyVersion"}, m.Names())

	study := m["Study"]
	assert.Equal(t, "StudyVersion", study.Attributes["versions"].Types.String())
	assert.Equal(t, "StudyDefinitionDocument", study.Attributes["documentedBy"].Types.String())
	assert.Equal(t, constants.String, study.Attributes["instanceType"].Types.String())

	version := m["StudyVersion"]
	assert.Equal(t, "string", version.Attributes["activityIds"].Types.String())
	assert.Equal(t, constants.Unknown, version.Attributes["ghost"].Types.String())

	require.Len(t, warnings, 1)
	assert.Equal(t, "ghost", warnings[0].Attribute)
	tl.AssertContains(t, "unresolvable reference")
}

func TestModelMissingRoot(t *testing.T) {
	doc := loadFixture(t)
	_, _, err := doc.Model(context.Background(), "Nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLoadErrors(t *testing.T) {
	_, err := wireschema.Load(strings.NewReader(`{"openapi": "3.1.0"}`))
	require.Error(t, err)
	assert.True(t, errors.IsEmptySource(err))

	_, err = wireschema.Load(strings.NewReader(`[1, 2]`))
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = wireschema.LoadFile("testdata/missing.json")
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
