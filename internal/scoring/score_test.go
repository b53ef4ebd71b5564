package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careercompass/internal/model"
)

func TestScore_Bounds(t *testing.T) {
	assert.Equal(t, 0, Score(nil))
	assert.Equal(t, 0, Score([]model.Answer{}))

	assert.Equal(t, 10, Score([]model.Answer{{Value: 5}}))
	assert.Equal(t, 2, Score([]model.Answer{{Value: 1}}))
	assert.Equal(t, 6, Score([]model.Answer{{Value: 3}, {Value: 3}}))
}

func TestScore_InRangeAnswersStayInRange(t *testing.T) {
	for v := 1; v <= 5; v++ {
		answers := []model.Answer{{Value: v}, {Value: v}, {Value: v}}
		got := Score(answers)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 10)
	}
}

func TestScore_RawStringParsing(t *testing.T) {
	// Old clients send the rating as the answer text.
	assert.Equal(t, 8, Score([]model.Answer{{Raw: "4"}}))

	// Non-numeric answers count as neutral (3).
	assert.Equal(t, 6, Score([]model.Answer{{Raw: "strongly agree"}}))
	assert.Equal(t, 6, Score([]model.Answer{{Raw: ""}}))
}

func TestScore_MixedValueAndRaw(t *testing.T) {
	answers := []model.Answer{
		{Value: 5},
		{Raw: "1"},
		{Raw: "not a number"}, // neutral 3
	}
	// mean 3 on the 1-5 scale -> 6
	assert.Equal(t, 6, Score(answers))
}

func TestScore_OutOfRangeValuesNotClamped(t *testing.T) {
	// The 1-5 scale is an upstream assumption; bad data passes through.
	assert.Equal(t, 14, Score([]model.Answer{{Value: 7}}))
}

func TestAnswerValue(t *testing.T) {
	assert.Equal(t, 4, AnswerValue(model.Answer{Value: 4}))
	assert.Equal(t, 2, AnswerValue(model.Answer{Raw: "2"}))
	assert.Equal(t, 3, AnswerValue(model.Answer{Raw: "maybe"}))
	// Explicit value wins over the raw text.
	assert.Equal(t, 5, AnswerValue(model.Answer{Value: 5, Raw: "1"}))
}

func TestAggregates_CoversEveryTierSection(t *testing.T) {
	rec := &model.TestRecord{
		Sections: map[string]model.SectionRecord{
			model.SectionRiasec: {Answers: []model.Answer{{Value: 5}}},
		},
	}

	agg := Aggregates(rec, model.TierFree)

	assert.Len(t, agg, len(model.TierSections[model.TierFree]))
	assert.Equal(t, 10, agg[model.SectionRiasec])
	// Sections with no stored answers aggregate to 0.
	assert.Equal(t, 0, agg[model.SectionIntelligence])
	assert.Equal(t, 0, agg[model.SectionPersonality])
}

func TestAggregates_NilRecord(t *testing.T) {
	agg := Aggregates(nil, model.TierFree)
	for _, name := range model.TierSections[model.TierFree] {
		assert.Equal(t, 0, agg[name])
	}
}
