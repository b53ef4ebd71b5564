package handler

import (
	"net/http"

	"careercompass/internal/bank"
)

// QuestionHandler serves the static question catalog
type QuestionHandler struct {
	catalog *bank.Catalog
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(catalog *bank.Catalog) *QuestionHandler {
	return &QuestionHandler{catalog: catalog}
}

// List handles GET /v1/questions?type={section}. An unknown or missing
// type returns the full catalog.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("type")
	questions := h.catalog.FilterByType(section)
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
