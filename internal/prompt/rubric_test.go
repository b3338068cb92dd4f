package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupRubricKnownTypes(t *testing.T) {
	for _, questionType := range QuestionTypes() {
		r := LookupRubric(questionType)
		assert.Equal(t, questionType, r.QuestionType)
		assert.NotEmpty(t, r.Dimensions)
	}
}

func TestLookupRubricFallsBackToDesign(t *testing.T) {
	for _, unknown := range []string{"", "behavioral", "DESIGN", "estimation", "foo"} {
		r := LookupRubric(unknown)
		assert.Equal(t, "design", r.QuestionType, "unknown type %q should fall back to design", unknown)
	}
}

func TestRubricDimensionCounts(t *testing.T) {
	assert.Len(t, LookupRubric("design").Dimensions, 6)
	assert.Len(t, LookupRubric("improvement").Dimensions, 6)
	assert.Len(t, LookupRubric("rca").Dimensions, 6)
	assert.Len(t, LookupRubric("guesstimate").Dimensions, 5)
}

func TestEveryDimensionHasAnchors(t *testing.T) {
	for _, questionType := range QuestionTypes() {
		for _, dim := range LookupRubric(questionType).Dimensions {
			anchors, ok := scoreAnchors[dim]
			assert.True(t, ok, "dimension %q has no scoring anchors", dim)
			for _, anchor := range anchors {
				assert.NotEmpty(t, anchor)
			}
		}
	}
}
