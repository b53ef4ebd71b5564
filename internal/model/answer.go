package model

import "time"

// Answer is one raw response as submitted by the client. Value carries the
// Likert rating (1-5) when the client sets it; older clients send the
// rating as a string in Raw instead.
type Answer struct {
	QuestionID int    `json:"questionId" bson:"questionId"`
	Raw        string `json:"answer,omitempty" bson:"answer,omitempty"`
	Value      int    `json:"value,omitempty" bson:"value,omitempty"`
}

// SectionRecord holds everything a user has submitted for one section.
// A resubmission replaces the record wholesale, it is never merged.
// Completed is declared by the caller and is independent of answer count.
type SectionRecord struct {
	Answers     []Answer  `json:"answers" bson:"answers"`
	Completed   bool      `json:"completed" bson:"completed"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
