package model

// Tier names the assessment bundles. Each bundle is an independently
// enumerated list of required section names; free ⊂ clarity ⊂ compass by
// construction, not by shared schema.
type Tier string

const (
	TierFree    Tier = "free"
	TierClarity Tier = "clarity"
	TierCompass Tier = "compass"
)

const (
	SectionRiasec       = "riasec"
	SectionIntelligence = "intelligence"
	SectionPersonality  = "personality"
	SectionWorkstyle    = "workstyle"
	SectionLearning     = "learning"
	SectionValues       = "values"
	SectionAptitude     = "aptitude"
	SectionInterests    = "interests"
	SectionEnvironment  = "environment"
	SectionCreativity   = "creativity"
)

// TierSections lists the sections a tier requires, in assessment order.
var TierSections = map[Tier][]string{
	TierFree: {
		SectionRiasec,
		SectionIntelligence,
		SectionPersonality,
	},
	TierClarity: {
		SectionRiasec,
		SectionIntelligence,
		SectionPersonality,
		SectionWorkstyle,
		SectionLearning,
	},
	TierCompass: {
		SectionRiasec,
		SectionIntelligence,
		SectionPersonality,
		SectionWorkstyle,
		SectionLearning,
		SectionValues,
		SectionAptitude,
		SectionInterests,
		SectionEnvironment,
		SectionCreativity,
	},
}

// TierOrder is the resolution order: the highest fully-satisfied tier wins.
var TierOrder = []Tier{TierCompass, TierClarity, TierFree}

// LegacyProgressSections is the fixed five-section list the /progress
// endpoint reports on. It predates the tier bundles and is deliberately
// kept independent of them.
var LegacyProgressSections = []string{
	SectionRiasec,
	SectionIntelligence,
	SectionPersonality,
	SectionWorkstyle,
	SectionLearning,
}
