package synonyms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/dictmap/pkg/synonyms"
)

func TestToReferenceForms(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"subject", []string{"subject", "subjectId", "subjectIds"}},
		{"activities", []string{"activities", "activitiesId", "activitiesIds", "activitieIds", "activityIds"}},
		{"versions", []string{"versions", "versionsId", "versionsIds", "versionIds"}},
		{"children", []string{"children", "childrenId", "childrenIds", "childIds"}},
		{"criteria", []string{"criteria", "criteriaId", "criteriaIds", "criterionIds"}},
		{"childrenOfchildren", []string{"childrenOfchildren", "childrenOfchildrenId", "childrenOfchildrenIds", "childOfchildIds"}},
		{"", []string{"", "Id", "Ids"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synonyms.ToReferenceForms(tt.name))
		})
	}
}

func TestFromReferenceForm(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"subjectId", []string{"subjectId", "subject"}},
		{"activityIds", []string{"activityIds", "activities", "activitys", "activity"}},
		{"versionIds", []string{"versionIds", "versions", "version"}},
		{"childIds", []string{"childIds", "childs", "child", "children"}},
		{"criterionIds", []string{"criterionIds", "criterions", "criterion", "criteria"}},
		{"childOfchildIds", []string{"childOfchildIds", "childOfchilds", "childOfchild", "childrenOfchild", "childOfchildren", "childrenOfchildren"}},
		{"notes", []string{"notes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synonyms.FromReferenceForm(tt.name))
		})
	}
}

func TestFromReferenceFormIsLeftInverse(t *testing.T) {
	names := []string{
		"subject", "activities", "categories", "children", "criteria",
		"childrenNames", "inclusionCriteria", "studyDesigns", "xId", "xIds",
		"s", "ies", "Id", "", "childrenOfchild", "criteriacriteria",
		"childrenchildrenchild", "inclusionCriteriacriteria",
	}

	for _, n := range names {
		for _, candidate := range synonyms.ToReferenceForms(n) {
			assert.Contains(t, synonyms.FromReferenceForm(candidate), n,
				"%q should map back from %q", n, candidate)
		}
	}
}

func TestBareNameProbedFirst(t *testing.T) {
	for _, n := range []string{"subjectId", "activities", "ids"} {
		assert.Equal(t, n, synonyms.ToReferenceForms(n)[0])
		assert.Equal(t, n, synonyms.FromReferenceForm(n)[0])
	}
}
