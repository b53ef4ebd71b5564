package model

// Question is a single catalog entry. Questions never change at runtime;
// the id alone decides which section a question belongs to (contiguous
// ranges, no explicit foreign key).
type Question struct {
	ID       int    `json:"id" bson:"id"`
	Text     string `json:"text" bson:"text"`
	Category string `json:"category" bson:"category"`
}

// EnrichedAnswer pairs a stored answer with its catalog question. This is
// the shape handed to the suggestion provider.
type EnrichedAnswer struct {
	QuestionID int    `json:"questionId"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Section    string `json:"section"`
	Value      int    `json:"value"`
}
