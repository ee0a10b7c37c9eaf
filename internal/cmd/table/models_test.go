package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/cmd/table"
	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/differ"
	"github.com/agentstation/dictmap/pkg/model"
)

func TestDictionaryToTableData(t *testing.T) {
	m := model.New()
	study := m.Ensure("Study")
	study.Code = ptr.String("C15206")
	study.Definition = ptr.String("A clinical study")
	name := model.NewAttribute("name", "string")
	name.Multiplicity = ptr.String("1..1")
	name.CodeLists = []string{"C1", "C2"}
	study.AddAttribute(name)
	label := model.NewAttribute("label", "string", "Code")
	label.InheritedFrom = ptr.String("Base")
	study.AddAttribute(label)
	m.Ensure("Activity")

	data := table.DictionaryToTableData(m)
	assert.Equal(t, table.DictionaryHeaders, data.Headers)
	require.Len(t, data.Rows, 4)
	assert.Equal(t, []string{"Activity", "", "", "", "", "", "", "", ""}, data.Rows[0])
	assert.Equal(t, []string{"Study", "", "", "C15206", "", "", "A clinical study", "", ""}, data.Rows[1])
	assert.Equal(t, []string{"", "label", "string | Code", "", "", "", "", "", "Base"}, data.Rows[2])
	assert.Equal(t, []string{"", "name", "string", "", "1..1", "", "", "C1, C2", ""}, data.Rows[3])
}

func TestAlignmentToTableData(t *testing.T) {
	records := []aligner.Record{
		{Class: "Masking", CT: ptr.String("Masking"), UML: ptr.String("Masking"), Flagged: true},
		{Class: "StudyDesign", Attribute: "subject", API: ptr.String("subjectId"), UML: ptr.String("subject"), Flagged: true},
	}

	data := table.AlignmentToTableData(records)
	assert.Equal(t, []string{"Class", "Attribute", "API", "CT", "UML / DD", "Comment"}, data.Headers)
	assert.Equal(t, []string{"Masking", "", "", "Masking", "Masking", "missing from API"}, data.Rows[0])
	assert.Equal(t, []string{"StudyDesign", "subject", "subjectId", "", "subject", "missing from CT; API name subjectId"}, data.Rows[1])
}

func TestChangesToTableData(t *testing.T) {
	changes := &differ.Changeset{Records: []differ.Record{
		{Status: differ.ClassNew, Class: "Code", Members: []differ.Member{{Name: "code", DataType: "Code"}, {Name: "id", DataType: "String"}}},
		{Status: differ.PropertyDeleted, Class: "Study", Attribute: "label", DataType: "string"},
	}}

	data := table.ChangesToTableData(changes)
	assert.Equal(t, [][]string{
		{"Class-New", "Code", "", ""},
		{"", "", "code", "Code"},
		{"", "", "id", "String"},
		{"Property-Deleted", "Study", "label", "string"},
	}, data.Rows)
}

func TestWarningsToTableData(t *testing.T) {
	data := table.WarningsToTableData([]model.Warning{
		{Source: "terminology", Entity: "Orphan", Message: "class not in the model"},
		{Source: "api", Entity: "StudyVersion", Attribute: "ghost", Message: "unresolved reference"},
	})
	assert.Equal(t, table.WarningsHeaders, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"api", "StudyVersion", "ghost", "unresolved reference"}, data.Rows[1])
}
