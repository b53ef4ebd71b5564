package model

import "time"

// TestRecord is the single per-user assessment document. Profile is
// snapshotted from the compiler when the record is first created and is
// not refreshed on later submissions; the results endpoint compiles a
// fresh profile on top of it instead.
//
// The document is keyed by userId and replaced wholesale on save, so it
// carries no _id field: decoding the Mongo-assigned ObjectID and writing
// it back would turn _id into a string and fail the replace.
type TestRecord struct {
	UserID           string                   `json:"userId" bson:"userId"`
	Sections         map[string]SectionRecord `json:"sections" bson:"sections"`
	Profile          CompiledProfile          `json:"profile" bson:"profile"`
	CareerSuggestion *CareerSuggestion        `json:"careerSuggestion" bson:"careerSuggestion,omitempty"`
	CreatedAt        time.Time                `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt" bson:"updatedAt"`
}

// CompletedSections returns the names of sections marked completed.
func (r *TestRecord) CompletedSections() map[string]bool {
	done := make(map[string]bool, len(r.Sections))
	for name, sec := range r.Sections {
		if sec.Completed {
			done[name] = true
		}
	}
	return done
}

// SubmitRequest is the body of a section submission.
type SubmitRequest struct {
	Answers   []Answer `json:"answers"`
	Section   string   `json:"section"`
	Completed bool     `json:"completed"`
}

// SubmitResponse is returned for every accepted submission. AllComplete
// is true only once the compass bundle is fully satisfied.
type SubmitResponse struct {
	Message          string            `json:"message"`
	CareerSuggestion *CareerSuggestion `json:"careerSuggestion"`
	AllComplete      bool              `json:"allComplete"`
}

// ResultsResponse is the full record plus a freshly compiled profile.
type ResultsResponse struct {
	TestRecord *TestRecord     `json:"testRecord"`
	Profile    CompiledProfile `json:"profile"`
}

// ProgressResponse reports completion over the legacy five-section flow.
type ProgressResponse struct {
	Sections    map[string]bool `json:"sections"`
	AllComplete bool            `json:"allComplete"`
}
