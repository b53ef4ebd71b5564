package scoring

import "careercompass/internal/model"

// ResolveTier returns the highest tier whose full required-section set is
// contained in the completed set, checking compass, then clarity, then
// free. ok is false when not even the free bundle is satisfied. Partial
// completion of a tier never counts.
func ResolveTier(completed map[string]bool) (model.Tier, bool) {
	for _, tier := range model.TierOrder {
		if containsAll(completed, model.TierSections[tier]) {
			return tier, true
		}
	}
	return "", false
}

func containsAll(set map[string]bool, names []string) bool {
	for _, name := range names {
		if !set[name] {
			return false
		}
	}
	return true
}
