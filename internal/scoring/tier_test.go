package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercompass/internal/model"
)

func completedSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func TestResolveTier_ExactBundles(t *testing.T) {
	tier, ok := ResolveTier(completedSet(
		model.SectionRiasec, model.SectionIntelligence, model.SectionPersonality,
	))
	require.True(t, ok)
	assert.Equal(t, model.TierFree, tier)

	tier, ok = ResolveTier(completedSet(
		model.SectionRiasec, model.SectionIntelligence, model.SectionPersonality,
		model.SectionWorkstyle, model.SectionLearning,
	))
	require.True(t, ok)
	assert.Equal(t, model.TierClarity, tier)

	tier, ok = ResolveTier(completedSet(model.TierSections[model.TierCompass]...))
	require.True(t, ok)
	assert.Equal(t, model.TierCompass, tier)
}

func TestResolveTier_NothingSatisfied(t *testing.T) {
	_, ok := ResolveTier(nil)
	assert.False(t, ok)

	// Partial completion of a tier never counts.
	_, ok = ResolveTier(completedSet(model.SectionRiasec, model.SectionIntelligence))
	assert.False(t, ok)
}

func TestResolveTier_HighestWins(t *testing.T) {
	// clarity complete plus scattered compass sections is still clarity
	tier, ok := ResolveTier(completedSet(
		model.SectionRiasec, model.SectionIntelligence, model.SectionPersonality,
		model.SectionWorkstyle, model.SectionLearning,
		model.SectionValues, model.SectionAptitude,
	))
	require.True(t, ok)
	assert.Equal(t, model.TierClarity, tier)
}

func TestResolveTier_MonotonicUnderExtraSections(t *testing.T) {
	set := completedSet(model.TierSections[model.TierCompass]...)
	set["some-future-section"] = true

	tier, ok := ResolveTier(set)
	require.True(t, ok)
	assert.Equal(t, model.TierCompass, tier)
}
