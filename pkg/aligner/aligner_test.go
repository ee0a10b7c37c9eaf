package aligner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dictmap/internal/utils/ptr"
	"github.com/agentstation/dictmap/pkg/aligner"
	"github.com/agentstation/dictmap/pkg/model"
)

// build creates a model from class name to attribute names.
func build(classes map[string][]string) model.Model {
	m := model.New()
	for class, attrs := range classes {
		e := m.Ensure(class)
		for _, a := range attrs {
			e.AddAttribute(model.NewAttribute(a, "string"))
		}
	}
	return m
}

func TestClassMissingFromAPI(t *testing.T) {
	uml := build(map[string][]string{"Study": {"id", "name"}, "Code": {"code"}})
	ct := build(map[string][]string{"Study": {"name"}, "Code": {"code"}})
	api := build(map[string][]string{"Code": {"id", "code", "instanceType"}})

	result := aligner.New().Align(context.Background(), uml, ct, api)

	require.Len(t, result.Classes, 1)
	rec := result.Classes[0]
	assert.Equal(t, "Study", rec.Class)
	assert.Nil(t, rec.API)
	assert.Equal(t, "Study", ptr.Deref(rec.CT))
	assert.Equal(t, "Study", ptr.Deref(rec.UML))
	assert.True(t, rec.IsClass())
	assert.Equal(t, []string{aligner.SourceAPI}, rec.Missing())
}

func TestAttributeRows(t *testing.T) {
	uml := build(map[string][]string{"StudyDesign": {"id", "name", "subject", "activities", "label"}})
	ct := build(map[string][]string{"StudyDesign": {"name", "subject", "activities", "description"}})
	api := build(map[string][]string{"StudyDesign": {"id", "name", "subjectId", "activityIds", "instanceType", "notes"}})

	result := aligner.New().Align(context.Background(), uml, ct, api)
	assert.Empty(t, result.Classes)

	rows := result.Attributes["StudyDesign"]
	byKey := make(map[string]aligner.Record)
	var keys []string
	for _, r := range rows {
		byKey[r.Attribute] = r
		keys = append(keys, r.Attribute)
	}
	assert.Equal(t, []string{"activities", "description", "id", "instanceType", "label", "name", "notes", "subject"}, keys)

	tests := []struct {
		key          string
		api, ct, uml string
		flagged      bool
	}{
		{"activities", "activityIds", "activities", "activities", false},
		{"subject", "subjectId", "subject", "subject", false},
		{"name", "name", "name", "name", false},
		{"id", "id", "", "id", false},
		{"instanceType", "instanceType", "", "", true},
		{"label", "", "", "label", true},
		{"description", "", "description", "", true},
		{"notes", "notes", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r, ok := byKey[tt.key]
			require.True(t, ok)
			assert.Equal(t, tt.api, ptr.Deref(r.API))
			assert.Equal(t, tt.ct, ptr.Deref(r.CT))
			assert.Equal(t, tt.uml, ptr.Deref(r.UML))
			assert.Equal(t, tt.flagged, r.Flagged)
		})
	}

	assert.Equal(t, "API name subjectId", byKey["subject"].Comment())
	assert.Equal(t, "missing from API, CT", byKey["label"].Comment())
}

func TestAlignmentIsTotal(t *testing.T) {
	uml := build(map[string][]string{"E": {"subject", "children", "criteria", "x"}})
	ct := build(map[string][]string{"E": {"subject", "y"}})
	api := build(map[string][]string{"E": {"subject", "subjectId", "childIds", "criterionIds", "x", "xId", "z"}})

	result := aligner.New().Align(context.Background(), uml, ct, api)
	rows := result.Attributes["E"]

	seen := map[string]map[string]int{"api": {}, "ct": {}, "uml": {}}
	for _, r := range rows {
		if r.API != nil {
			seen["api"][*r.API]++
		}
		if r.CT != nil {
			seen["ct"][*r.CT]++
		}
		if r.UML != nil {
			seen["uml"][*r.UML]++
		}
	}

	views := map[string]*model.Entity{"api": api["E"], "ct": ct["E"], "uml": uml["E"]}
	for view, e := range views {
		for _, name := range e.AttributeNames() {
			assert.Equal(t, 1, seen[view][name], "%s attribute %s", view, name)
		}
		assert.Len(t, seen[view], len(e.Attributes))
	}

	keys := make(map[string]bool)
	for _, r := range rows {
		assert.False(t, keys[r.Attribute], "duplicate row %s", r.Attribute)
		keys[r.Attribute] = true
	}
}

func TestSingleSourceClassHasNoRows(t *testing.T) {
	uml := build(map[string][]string{"Only": {"a"}})
	result := aligner.New().Align(context.Background(), uml, model.New(), model.New())

	require.Len(t, result.Classes, 1)
	assert.NotContains(t, result.Attributes, "Only")
	assert.Len(t, result.Discrepancies(), 1)
}

func TestExemptOptions(t *testing.T) {
	uml := build(map[string][]string{"E": {"id", "instanceType"}})
	ct := build(map[string][]string{"E": {}})
	api := build(map[string][]string{"E": {"id"}})

	defaults := aligner.New().Align(context.Background(), uml, ct, api)
	assert.Empty(t, defaults.Discrepancies())

	strict := aligner.New(aligner.WithAPIExempt(), aligner.WithCTExempt("id")).
		Align(context.Background(), uml, ct, api)
	flagged := strict.Discrepancies()
	require.Len(t, flagged, 1)
	assert.Equal(t, "instanceType", flagged[0].Attribute)
}

func TestDiscrepanciesOrder(t *testing.T) {
	uml := build(map[string][]string{"A": {"x"}, "B": {"y"}})
	ct := build(map[string][]string{"A": {}, "B": {"y"}})
	api := build(map[string][]string{"B": {"y", "z"}})

	result := aligner.New().Align(context.Background(), uml, ct, api)
	got := result.Discrepancies()

	require.Len(t, got, 3)
	assert.Equal(t, aligner.Record{Class: "A", CT: ptr.String("A"), UML: ptr.String("A"), Flagged: true}, got[0])
	assert.Equal(t, "A", got[1].Class)
	assert.Equal(t, "x", got[1].Attribute)
	assert.Equal(t, "B", got[2].Class)
	assert.Equal(t, "z", got[2].Attribute)

	assert.Len(t, result.Rows(), 3)
}
