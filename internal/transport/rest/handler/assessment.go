package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// AssessmentHandler handles the submission pipeline endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.assessmentSvc.Submit(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSection):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUserNotVerified):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "could not save submission")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Results handles GET /v1/assessments/results
func (h *AssessmentHandler) Results(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.assessmentSvc.Results(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "could not load results")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Progress handles GET /v1/assessments/progress
func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.assessmentSvc.Progress(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load progress")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
