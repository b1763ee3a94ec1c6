// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/types"
)

// handleCreateEmployee creates a new employee record
func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	employee, err := s.db.CreateEmployee(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	s.jsonResponse(w, http.StatusCreated, employee)
}

// handleListEmployees lists employees with optional filters
func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	filters := db.EmployeeFilters{
		Department: r.URL.Query().Get("department"),
		Level:      r.URL.Query().Get("level"),
		ManagerID:  r.URL.Query().Get("manager_id"),
		Limit:      queryInt(r, "limit"),
	}

	employees, err := s.db.ListEmployees(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list employees")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"employees": employees,
		"count":     len(employees),
	})
}

// handleGetEmployee returns a single employee record
func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := s.db.GetEmployeeByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, employee)
}

// handleUpdateEmployee replaces the mutable fields of an employee record
func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	employee, err := s.db.UpdateEmployee(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, employee)
}

// handleDeleteEmployee soft-deletes an employee record
func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteEmployee(r.Context(), r.PathValue("id")); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddRating appends a performance rating to an employee's history
func (s *Server) handleAddRating(w http.ResponseWriter, r *http.Request) {
	var rating types.PerformanceRating
	if err := json.NewDecoder(r.Body).Decode(&rating); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if rating.Period == "" || rating.Score < 0 || rating.Score > 10 {
		s.errorResponse(w, http.StatusBadRequest, "Rating requires a period and a score between 0 and 10")
		return
	}

	id := r.PathValue("id")
	employee, err := s.db.GetEmployeeByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	if err := s.db.AddPerformanceRating(r.Context(), id, rating); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add rating")
		return
	}

	s.jsonResponse(w, http.StatusCreated, rating)
}

// handleEmployeeTrends returns per-criterion score trends across the
// employee's evaluations
func (s *Server) handleEmployeeTrends(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	employee, err := s.db.GetEmployeeByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get employee")
		return
	}
	if employee == nil {
		s.errorResponse(w, http.StatusNotFound, "Employee not found")
		return
	}

	trends, err := s.analytics.GetSkillTrends(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute trends")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"employee_id": id,
		"trends":      trends,
	})
}

// queryInt parses an integer query parameter, returning 0 when absent or invalid
func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
