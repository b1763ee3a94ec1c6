// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-assistant/internal/agent"
	"github.com/jonathan/interview-assistant/internal/schemas"
	"github.com/jonathan/interview-assistant/internal/types"
)

// requireRunner reports whether generation-backed endpoints are available,
// writing a 503 when the server was started without an API key.
func (s *Server) requireRunner(w http.ResponseWriter) bool {
	if s.runner == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Generation is not configured on this server")
		return false
	}
	return true
}

// agentError maps a pipeline error to its HTTP status
func (s *Server) agentError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// handleGenerateQuestions runs the question generation stage for an interview
// and persists the generated set.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	if !s.requireRunner(w) {
		return
	}
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	result, err := s.runner.GenerateQuestions(r.Context(), agent.Context{
		agent.FieldEmployeeID:    interview.EmployeeID,
		agent.FieldInterviewType: string(interview.Type),
		agent.FieldTimestamp:     time.Now().UTC(),
	})
	if err != nil {
		s.agentError(w, err)
		return
	}

	if err := schemas.ValidatePayload(schemas.SchemaQuestions, result.Payload); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Generated questions failed validation")
		return
	}

	if err := s.db.SaveInterviewQuestions(r.Context(), interview.ID, result.Payload); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save questions")
		return
	}

	s.jsonResponse(w, http.StatusCreated, result)
}

// handleGetQuestions returns the persisted question set for an interview
func (s *Server) handleGetQuestions(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	questions, err := s.db.GetInterviewQuestions(r.Context(), interview.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get questions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interview_id": interview.ID,
		"questions":    questions,
		"count":        len(questions),
	})
}

// handleAnalyzeResponses runs the response analysis stage against the
// interview's stored questions and responses, persisting the evaluation.
func (s *Server) handleAnalyzeResponses(w http.ResponseWriter, r *http.Request) {
	if !s.requireRunner(w) {
		return
	}
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}
	if len(interview.Responses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Interview has no recorded responses")
		return
	}

	questions, err := s.db.GetInterviewQuestions(r.Context(), interview.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get questions")
		return
	}
	if len(questions) == 0 {
		s.errorResponse(w, http.StatusConflict, "Questions have not been generated for this interview")
		return
	}

	result, err := s.runner.AnalyzeResponses(r.Context(), agent.Context{
		agent.FieldInterviewID: interview.ID.String(),
		agent.FieldEmployeeID:  interview.EmployeeID,
		agent.FieldQuestions:   questions,
		agent.FieldResponses:   interview.Responses,
		agent.FieldTimestamp:   time.Now().UTC(),
	})
	if err != nil {
		s.agentError(w, err)
		return
	}

	if err := schemas.ValidatePayload(schemas.SchemaAnalysis, result.Payload); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Generated analysis failed validation")
		return
	}

	confidence := metaFloat(result.Metadata, agent.MetaConfidenceLevel)
	if err := s.db.SaveEvaluation(r.Context(), interview.ID, interview.EmployeeID, result.Payload, confidence); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save evaluation")
		return
	}

	s.jsonResponse(w, http.StatusCreated, result)
}

// handleGetAnalysis returns the persisted evaluation for an interview
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	evaluation, err := s.db.GetEvaluation(r.Context(), interview.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get evaluation")
		return
	}
	if evaluation == nil {
		s.errorResponse(w, http.StatusNotFound, "Evaluation not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, evaluation)
}

// handleRecommend runs the decision support stage from the interview's
// persisted evaluation and stores the recommendation set.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if !s.requireRunner(w) {
		return
	}
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	evaluation, err := s.db.GetEvaluation(r.Context(), interview.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get evaluation")
		return
	}
	if evaluation == nil {
		s.errorResponse(w, http.StatusConflict, "Responses have not been analyzed for this interview")
		return
	}

	result, err := s.runner.Recommend(r.Context(), agent.Context{
		agent.FieldEmployeeID: interview.EmployeeID,
		agent.FieldAnalysis:   evaluation.Analysis,
		agent.FieldTimestamp:  time.Now().UTC(),
	})
	if err != nil {
		s.agentError(w, err)
		return
	}

	if err := schemas.ValidatePayload(schemas.SchemaRecommendations, result.Payload); err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Generated recommendations failed validation")
		return
	}

	quality := metaFloat(result.Metadata, agent.MetaConfidenceLevel)
	if err := s.db.SaveRecommendations(r.Context(), interview.ID, interview.EmployeeID, result.Payload, quality); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save recommendations")
		return
	}

	s.jsonResponse(w, http.StatusCreated, result)
}

// handleGetRecommendations returns the persisted recommendation set
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}

	record, err := s.db.GetRecommendations(r.Context(), interview.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Recommendations not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleRunPipeline executes the full three-stage pipeline for one interview
// and persists every stage result, completing the interview.
func (s *Server) handleRunPipeline(w http.ResponseWriter, r *http.Request) {
	if !s.requireRunner(w) {
		return
	}
	interview, ok := s.interviewFromPath(w, r)
	if !ok {
		return
	}
	if len(interview.Responses) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Interview has no recorded responses")
		return
	}

	outcome, err := s.coordinator.Run(r.Context(), agent.InterviewRequest{
		EmployeeID:    interview.EmployeeID,
		InterviewID:   interview.ID.String(),
		InterviewType: string(interview.Type),
		Responses:     interview.Responses,
	})
	if err != nil {
		s.agentError(w, err)
		return
	}

	if err := s.persistOutcome(r.Context(), interview, outcome); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to persist pipeline results")
		return
	}

	s.jsonResponse(w, http.StatusCreated, outcome)
}

// handleRunBatch executes the pipeline for several interviews concurrently.
// Every interview must exist and have recorded responses before any pipeline
// starts.
func (s *Server) handleRunBatch(w http.ResponseWriter, r *http.Request) {
	if !s.requireRunner(w) {
		return
	}

	var body struct {
		InterviewIDs []uuid.UUID `json:"interview_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body.InterviewIDs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "interview_ids must not be empty")
		return
	}

	interviews := make([]*types.Interview, 0, len(body.InterviewIDs))
	reqs := make([]agent.InterviewRequest, 0, len(body.InterviewIDs))
	for _, id := range body.InterviewIDs {
		interview, err := s.db.GetInterviewByID(r.Context(), id)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to get interview")
			return
		}
		if interview == nil {
			s.errorResponse(w, http.StatusNotFound, "Interview not found: "+id.String())
			return
		}
		if len(interview.Responses) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "Interview has no recorded responses: "+id.String())
			return
		}
		interviews = append(interviews, interview)
		reqs = append(reqs, agent.InterviewRequest{
			EmployeeID:    interview.EmployeeID,
			InterviewID:   interview.ID.String(),
			InterviewType: string(interview.Type),
			Responses:     interview.Responses,
		})
	}

	outcomes, err := s.coordinator.RunBatch(r.Context(), reqs, s.batchLimit)
	if err != nil {
		s.agentError(w, err)
		return
	}

	for i, outcome := range outcomes {
		if err := s.persistOutcome(r.Context(), interviews[i], outcome); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to persist pipeline results")
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"outcomes": outcomes,
		"count":    len(outcomes),
	})
}

// persistOutcome stores all three stage results and completes the interview
// with the mean criterion score as its overall score.
func (s *Server) persistOutcome(ctx context.Context, interview *types.Interview, outcome *agent.InterviewOutcome) error {
	if err := s.db.SaveInterviewQuestions(ctx, interview.ID, outcome.Questions.Payload); err != nil {
		return err
	}

	confidence := metaFloat(outcome.Analysis.Metadata, agent.MetaConfidenceLevel)
	if err := s.db.SaveEvaluation(ctx, interview.ID, interview.EmployeeID, outcome.Analysis.Payload, confidence); err != nil {
		return err
	}

	quality := metaFloat(outcome.Recommendations.Metadata, agent.MetaConfidenceLevel)
	if err := s.db.SaveRecommendations(ctx, interview.ID, interview.EmployeeID, outcome.Recommendations.Payload, quality); err != nil {
		return err
	}

	return s.db.CompleteInterview(ctx, interview.ID, overallScore(outcome.Analysis.Payload))
}

// overallScore is the mean of the analysis criterion scores
func overallScore(analysis *types.AnalysisResult) float64 {
	if analysis == nil || len(analysis.CriterionScores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range analysis.CriterionScores {
		sum += score
	}
	return sum / float64(len(analysis.CriterionScores))
}

// metaFloat reads a float64 metadata value, returning 0 when absent
func metaFloat(md agent.Metadata, key string) float64 {
	if v, ok := md[key].(float64); ok {
		return v
	}
	return 0
}
