package filter

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/errors"
	"github.com/agentstation/dictmap/pkg/model"
)

func compile(t *testing.T, args ...string) *Classes {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return f
}

func TestModel(t *testing.T) {
	m := model.New()
	for _, name := range []string{"Study", "StudyDesign", "Activity"} {
		m[name] = model.NewEntity(name)
	}

	set, err := compile(t, "--class", "study*", "--ignore-case").Compile()
	require.NoError(t, err)
	filtered := Model(set, m)
	assert.Equal(t, []string{"Study", "StudyDesign"}, filtered.Names())
	assert.Same(t, m["Study"], filtered["Study"])

	set, err = compile(t).Compile()
	require.NoError(t, err)
	assert.Len(t, Model(set, m), 3)
}

func TestAlignment(t *testing.T) {
	records := []aligner.Record{
		{Class: "Study", Attribute: "id", UML: ptr.String("id")},
		{Class: "Code", Attribute: "code"},
		{Class: "CodeList"},
	}

	set, err := compile(t, "--class", "^Code$").Compile()
	require.NoError(t, err)
	got := Alignment(set, records)
	require.Len(t, got, 1)
	assert.Equal(t, "code", got[0].Attribute)
}

func TestChanges(t *testing.T) {
	changes := &differ.Changeset{Records: []differ.Record{
		{Status: differ.ClassNew, Class: "Activity"},
		{Status: differ.PropertyDeleted, Class: "Study", Attribute: "title", DataType: "string"},
	}}

	set, err := compile(t, "--class", "Study").Compile()
	require.NoError(t, err)
	got := Changes(set, changes)
	require.Len(t, got.Records, 1)
	assert.Equal(t, 1, got.Summary.PropertiesRemoved)
	assert.Equal(t, 0, got.Summary.ClassesAdded)
}

func TestCompileErrors(t *testing.T) {
	_, err := compile(t, "--class", "(unclosed").Compile()
	assert.True(t, errors.IsValidationError(err))

	var f *Classes
	set, err := f.Compile()
	require.NoError(t, err)
	assert.True(t, set.Empty())
}
