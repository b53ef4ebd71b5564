package model

import "encoding/json"

// Course is one recommended course of study.
type Course struct {
	Name     string `json:"name" bson:"name"`
	Duration string `json:"duration" bson:"duration"`
	Details  string `json:"details" bson:"details"`
}

// College is one recommended institution.
type College struct {
	Name    string `json:"name" bson:"name"`
	Course  string `json:"course" bson:"course"`
	Country string `json:"country" bson:"country"`
}

// Project is a portfolio project recommendation.
type Project struct {
	Title string `json:"title" bson:"title"`
	Link  string `json:"link" bson:"link"`
}

// SuggestionDetail is the provider-produced body of a career suggestion.
// It is never partially constructed: either the provider call succeeded
// and every field came back, or the whole detail is absent.
type SuggestionDetail struct {
	Domain      string    `json:"domain" bson:"domain"`
	Roles       []string  `json:"roles" bson:"roles"`
	Courses     []Course  `json:"courses" bson:"courses"`
	Description string    `json:"description" bson:"description"`
	Skills      []string  `json:"skills" bson:"skills"`
	NextSteps   []string  `json:"nextSteps" bson:"nextSteps"`
	Colleges    []College `json:"colleges" bson:"colleges"`
	Projects    []Project `json:"projects" bson:"projects"`
}

// CareerSuggestion is the persisted suggestion. Aggregates and PlanLevel
// are always present; Detail is nil when the provider call failed and the
// result degraded to aggregates only. Callers must branch on Fallback()
// instead of probing optional keys.
type CareerSuggestion struct {
	Aggregates map[string]int    `json:"aggregates" bson:"aggregates"`
	PlanLevel  Tier              `json:"planLevel" bson:"planLevel"`
	Detail     *SuggestionDetail `json:"-" bson:"detail,omitempty"`
}

// Fallback reports whether this suggestion degraded to aggregates only.
func (s *CareerSuggestion) Fallback() bool {
	return s.Detail == nil
}

// MarshalJSON flattens Detail into the historical wire shape: full
// suggestions carry domain/roles/... at the top level, fallback ones only
// aggregates and planLevel.
func (s CareerSuggestion) MarshalJSON() ([]byte, error) {
	type flat struct {
		*SuggestionDetail
		Aggregates map[string]int `json:"aggregates"`
		PlanLevel  Tier           `json:"planLevel"`
	}
	return json.Marshal(flat{
		SuggestionDetail: s.Detail,
		Aggregates:       s.Aggregates,
		PlanLevel:        s.PlanLevel,
	})
}

// UnmarshalJSON accepts the flat wire shape back, restoring the tagged
// variant: a payload without provider fields unmarshals as a fallback.
func (s *CareerSuggestion) UnmarshalJSON(data []byte) error {
	type flat struct {
		SuggestionDetail
		Aggregates map[string]int `json:"aggregates"`
		PlanLevel  Tier           `json:"planLevel"`
	}
	var f flat
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	s.Aggregates = f.Aggregates
	s.PlanLevel = f.PlanLevel
	s.Detail = nil
	if f.Domain != "" || len(f.Roles) > 0 {
		detail := f.SuggestionDetail
		s.Detail = &detail
	}
	return nil
}
