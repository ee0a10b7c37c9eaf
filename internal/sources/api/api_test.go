package api_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/sources/api"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/sources"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

const fixture = "../../../pkg/wireschema/testdata/api.json"

func TestLoad(t *testing.T) {
	src := api.New(api.WithPath(fixture))
	assert.Equal(t, sources.APIID, src.ID())

	m, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Study", "StudyDefinitionDocument", "StudyIdentifier", "StudyVersion"}, m.Names())

	require.Len(t, src.Warnings(), 1)
	assert.Equal(t, "StudyVersion", src.Warnings()[0].Entity)
	assert.Equal(t, "ghost", src.Warnings()[0].Attribute)

	doc, err := src.Document()
	require.NoError(t, err)
	_, ok := doc.Properties("StudyIdentifier")
	assert.True(t, ok)
}

func TestLoadRoot(t *testing.T) {
	src := api.New(api.WithPath(fixture), api.WithRoot("StudyIdentifier"))
	m, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"StudyIdentifier"}, m.Names())
}

func TestLoadErrors(t *testing.T) {
	_, err := api.New().Load(context.Background())
	assert.True(t, errors.IsMissingInput(err))

	_, err = api.New(api.WithPath(fixture), api.WithRoot("Nope")).Load(context.Background())
	assert.True(t, errors.IsNotFound(err))

	_, err = api.New(api.WithPath("testdata/none.json")).Load(context.Background())
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestWithDocument(t *testing.T) {
	doc, err := wireschema.Load(strings.NewReader(`{"$defs": {"Study-Output": {"title": "Study", "properties": {"name": {"type": "string"}}}}}`))
	require.NoError(t, err)

	m, err := api.New(api.WithDocument(doc)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "string", m["Study"].Attributes["name"].Types.String())
}
