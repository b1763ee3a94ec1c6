// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/types"
)

// handleCreateInterview schedules a new interview
func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var req types.CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	employee, err := s.db.GetEmployeeByID(r.Context(), req.EmployeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	interview, err := s.db.CreateInterview(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create interview")
		return
	}

	s.jsonResponse(w, http.StatusCreated, interview)
}

// handleListInterviews lists interviews with optional filters
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	filters := db.InterviewFilters{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Type:       r.URL.Query().Get("type"),
		Status:     r.URL.Query().Get("status"),
		Limit:      queryInt(r, "limit"),
	}

	interviews, err := s.db.ListInterviews(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list interviews")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interviews": interviews,
		"count":      len(interviews),
	})
}

// handleGetInterview returns a single interview
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, interview)
}

// handleDeleteInterview soft-deletes an interview
func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	if err := s.db.DeleteInterview(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSaveResponses stores externally collected responses on the interview
// and marks it in progress
func (s *Server) handleSaveResponses(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	var responses map[string]string
	if err := json.NewDecoder(r.Body).Decode(&responses); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(responses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Responses must not be empty")
		return
	}

	if err := s.db.SaveResponses(r.Context(), interview.ID, responses); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save responses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interview_id": interview.ID,
		"responses":    len(responses),
		"status":       types.StatusInProgress,
	})
}

// interviewFromPath resolves the {id} path segment to an interview record,
// writing the error response itself when resolution fails.
func (s *Server) interviewFromPath(w http.ResponseWriter, r *http.Request) (*types.Interview, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return nil, false
	}

	interview, err := s.db.GetInterviewByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get interview")
		return nil, false
	}
	if interview == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return nil, false
	}
	return interview, true
}
