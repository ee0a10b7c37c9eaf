package structure_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/constants"
	"github.com/agentstation/dictmap/pkg/model"
	"github.com/agentstation/dictmap/pkg/relationship"
	"github.com/agentstation/dictmap/pkg/structure"
	"github.com/agentstation/dictmap/pkg/wireschema"
)

const api = `{
  "components": {"schemas": {
    "StudyDesign-Output": {"title": "StudyDesign", "properties": {
      "id": {"type": "string"},
      "subjectId": {"type": "string"},
      "activityIds": {"type": "array", "items": {"type": "string"}},
      "notes": {"type": "string"}
    }}
  }}
}`

func TestBuild(t *testing.T) {
	doc, err := wireschema.Load(strings.NewReader(api))
	require.NoError(t, err)

	m := model.New()
	design := m.Ensure("StudyDesign")
	design.Definition = ptr.String("The design of a study")
	design.SuperClasses.Add("Base")
	design.AddAttribute(model.NewAttribute("id", "string"))
	design.AddAttribute(model.NewAttribute("subject", "Subject"))
	acts := model.NewAttribute("activities", "Activity")
	acts.Multiplicity = ptr.String("0..*")
	acts.CodeLists = []string{"C1", "C2"}
	design.AddAttribute(acts)
	design.AddAttribute(model.NewAttribute("label", "string"))

	base := m.Ensure("Base")
	base.AddAttribute(model.NewAttribute("name", "string"))

	out := structure.Build(context.Background(), m, doc)
	require.Len(t, out.Classes, 2)

	b, ok := out.Class("Base")
	require.True(t, ok)
	assert.Equal(t, structure.Abstract, b.Modifier)
	name, ok := b.Attribute("name")
	require.True(t, ok, "no marker when the class is not in the wire schema")
	assert.Equal(t, relationship.Unclassified, name.Relationship)

	c, ok := out.Class("StudyDesign")
	require.True(t, ok)
	assert.Equal(t, structure.Concrete, c.Modifier)
	assert.Equal(t, []string{"Base"}, c.SuperClasses)
	assert.Equal(t, "The design of a study", c.Definition)

	var keys []string
	for _, a := range c.Attributes {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"activityIds", "id", "label*", "subjectId", "notes"}, keys)

	a, _ := c.Attribute("activityIds")
	assert.Equal(t, relationship.ReferenceList, a.Relationship)
	assert.Equal(t, "activities", a.ModelName)
	assert.Equal(t, "0..*", a.Cardinality)
	assert.Equal(t, "C1, C2", a.CodeListRef)

	s, _ := c.Attribute("subjectId")
	assert.Equal(t, relationship.Reference, s.Relationship)

	notes, _ := c.Attribute("notes")
	assert.True(t, notes.Synthetic)
	assert.Equal(t, []string{"string"}, notes.Types)
	assert.Equal(t, "0..1", notes.Cardinality)
	assert.Equal(t, relationship.Value, notes.Relationship)
}

func TestMapSlice(t *testing.T) {
	doc := &structure.Document{Classes: []structure.Class{
		{
			Name:       "Code",
			Modifier:   structure.Abstract,
			SubClasses: []string{"AliasCode"},
			Attributes: []structure.Attribute{{Key: "code", ModelName: "code", Types: []string{"string"}}},
		},
		{
			Name:     "StudyVersion",
			Code:     "C1",
			Modifier: structure.Concrete,
			InSchema: true,
			Attributes: []structure.Attribute{
				{Key: "titleIds", ModelName: "titles", Types: []string{"StudyTitle"}, Cardinality: "1..*", Relationship: relationship.ReferenceList, InheritedFrom: "Base"},
				{Key: "extra", Types: []string{constants.Unknown}, Relationship: relationship.Value, Synthetic: true},
			},
		},
	}}

	out := doc.MapSlice()
	require.Len(t, out, 2)
	assert.Equal(t, "Code", out[0].Key)

	code := out[0].Value.(yaml.MapSlice)
	assert.Equal(t, yaml.MapSlice{
		{Key: "Sub Classes", Value: []yaml.MapSlice{{{Key: "$ref", Value: "#/AliasCode"}}}},
		{Key: "Modifier", Value: "Abstract"},
		{Key: "Attributes", Value: yaml.MapSlice{
			{Key: "code", Value: yaml.MapSlice{
				{Key: "Type", Value: []yaml.MapSlice{{{Key: "$ref", Value: "#/string"}}}},
				{Key: "Model Name", Value: "code"},
			}},
		}},
	}, code, "no relationship type outside the wire schema")

	version := out[1].Value.(yaml.MapSlice)
	attrs := version[len(version)-1].Value.(yaml.MapSlice)
	assert.Equal(t, yaml.MapSlice{
		{Key: "Type", Value: []yaml.MapSlice{{{Key: "$ref", Value: "#/StudyTitle"}}}},
		{Key: "Cardinality", Value: "1..*"},
		{Key: "Relationship Type", Value: "Ref List"},
		{Key: "Model Name", Value: "titles"},
		{Key: "Inherited From", Value: yaml.MapSlice{{Key: "$ref", Value: "#/Base"}}},
	}, attrs[0].Value)
	assert.Equal(t, yaml.MapSlice{
		{Key: "Type", Value: []yaml.MapSlice{{{Key: "$ref", Value: constants.Unknown}}}},
		{Key: "Relationship Type", Value: "Value"},
	}, attrs[1].Value)

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Modifier: Concrete")
	assert.Contains(t, string(data), "Relationship Type: Ref List")
}
