// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"net/http"

	"github.com/jonathan/interview-assistant/internal/db"
)

// handleListQuestionBank lists distinct previously generated questions,
// optionally filtered by type and category.
func (s *Server) handleListQuestionBank(w http.ResponseWriter, r *http.Request) {
	filters := db.QuestionBankFilters{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit"),
	}

	questions, err := s.db.ListQuestionBank(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list question bank")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"count":     len(questions),
	})
}

// handleBenchmarks returns computed performance benchmarks for a department
func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	department := r.PathValue("department")

	benchmarks, err := s.analytics.GetDepartmentBenchmarks(r.Context(), department)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute benchmarks")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"department": department,
		"benchmarks": benchmarks,
	})
}
