// Package profile canonicalizes a user's self-reported attributes. Years
// of frontend churn left the same fact under several field names
// (12thTargetCountry, UGTargetCountry, ...); the compiler resolves them
// through one declarative alias table instead of per-field fallbacks.
package profile

import (
	"fmt"

	"careercompass/internal/model"
)

// fieldSpec declares one canonical profile field and its historical names.
type fieldSpec struct {
	canonical string
	aliases   []string
	assign    func(*model.CompiledProfile, string)
}

var fieldSpecs = []fieldSpec{
	{
		canonical: "targetCountry",
		aliases:   []string{"12thTargetCountry", "UGTargetCountry", "MasterTargetCountry", "workTargetCountry"},
		assign:    func(p *model.CompiledProfile, v string) { p.TargetCountry = v },
	},
	{
		canonical: "goal",
		aliases:   []string{"12thGoal", "UGGoal", "careerGoal", "workGoal"},
		assign:    func(p *model.CompiledProfile, v string) { p.Goal = v },
	},
	{
		canonical: "desiredCourse",
		aliases:   []string{"12thCourse", "UGDesiredCourse", "preferredCourse"},
		assign:    func(p *model.CompiledProfile, v string) { p.DesiredCourse = v },
	},
	{
		canonical: "bachelorStream",
		aliases:   []string{"12thStream", "UGStream", "stream"},
		assign:    func(p *model.CompiledProfile, v string) { p.BachelorStream = v },
	},
	{
		canonical: "currentLevel",
		aliases:   []string{"educationLevel", "studyLevel"},
		assign:    func(p *model.CompiledProfile, v string) { p.CurrentLevel = v },
	},
	{
		canonical: "budget",
		aliases:   []string{"studyBudget", "annualBudget"},
		assign:    func(p *model.CompiledProfile, v string) { p.Budget = v },
	},
}

// recognized covers every canonical and alias name; anything else is an
// overflow field.
var recognized = func() map[string]bool {
	m := make(map[string]bool)
	for _, spec := range fieldSpecs {
		m[spec.canonical] = true
		for _, a := range spec.aliases {
			m[a] = true
		}
	}
	return m
}()

// Compile merges the user's stored profile with the profile snapshot on
// their test record into one canonical view. Resolution order per field:
// legacy top-level user field, user profile map, test record profile,
// then each historical alias over the same sources; first non-empty
// wins. Pure: identical inputs always yield identical output.
func Compile(user *model.User, rec *model.TestRecord) model.CompiledProfile {
	var userTop, userProfile, testProfile map[string]interface{}
	if user != nil {
		userTop = topLevelFields(user)
		userProfile = user.Profile
	}
	if rec != nil {
		testProfile = rec.Profile.AsMap()
	}
	sources := []map[string]interface{}{userTop, userProfile, testProfile}

	var out model.CompiledProfile
	for _, spec := range fieldSpecs {
		if v, ok := firstValue(sources, spec.canonical); ok {
			spec.assign(&out, v)
			continue
		}
		for _, alias := range spec.aliases {
			if v, ok := firstValue(sources, alias); ok {
				spec.assign(&out, v)
				break
			}
		}
	}

	// Overflow bag: shallow merge, test-record fields win on collision.
	other := make(map[string]interface{})
	for _, src := range []map[string]interface{}{userProfile, testProfile} {
		for k, v := range src {
			if recognized[k] || v == nil {
				continue
			}
			other[k] = v
		}
	}
	if len(other) > 0 {
		out.Other = other
	}
	return out
}

func topLevelFields(u *model.User) map[string]interface{} {
	m := make(map[string]interface{}, 4)
	if u.TargetCountry != "" {
		m["targetCountry"] = u.TargetCountry
	}
	if u.Goal != "" {
		m["goal"] = u.Goal
	}
	if u.DesiredCourse != "" {
		m["desiredCourse"] = u.DesiredCourse
	}
	if u.BachelorStream != "" {
		m["bachelorStream"] = u.BachelorStream
	}
	return m
}

func firstValue(sources []map[string]interface{}, key string) (string, bool) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if v, ok := src[key]; ok {
			if s := stringValue(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func stringValue(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}
