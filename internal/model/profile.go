package model

// CompiledProfile is the canonicalized, alias-resolved view of a user's
// self-reported attributes. Other holds every profile field that is not a
// canonical one, preserved verbatim.
type CompiledProfile struct {
	TargetCountry  string                 `json:"targetCountry,omitempty" bson:"targetCountry,omitempty"`
	Goal           string                 `json:"goal,omitempty" bson:"goal,omitempty"`
	DesiredCourse  string                 `json:"desiredCourse,omitempty" bson:"desiredCourse,omitempty"`
	BachelorStream string                 `json:"bachelorStream,omitempty" bson:"bachelorStream,omitempty"`
	CurrentLevel   string                 `json:"currentLevel,omitempty" bson:"currentLevel,omitempty"`
	Budget         string                 `json:"budget,omitempty" bson:"budget,omitempty"`
	Other          map[string]interface{} `json:"otherProfileFields,omitempty" bson:"otherProfileFields,omitempty"`
}

// AsMap returns the canonical fields as a profile map, used when a stored
// snapshot feeds back into compilation.
func (p *CompiledProfile) AsMap() map[string]interface{} {
	m := make(map[string]interface{}, len(p.Other)+6)
	for k, v := range p.Other {
		m[k] = v
	}
	set := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	set("targetCountry", p.TargetCountry)
	set("goal", p.Goal)
	set("desiredCourse", p.DesiredCourse)
	set("bachelorStream", p.BachelorStream)
	set("currentLevel", p.CurrentLevel)
	set("budget", p.Budget)
	return m
}
