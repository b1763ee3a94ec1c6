package agent

import (
	"time"

	"github.com/jonathan/interview-assistant/internal/types"
)

// Context is the input mapping a stage requires to run. Each agent kind
// declares its required fields; validation runs before any external call.
type Context map[string]any

// Context field names shared across agent kinds
const (
	FieldEmployeeID    = "employee_id"
	FieldInterviewID   = "interview_id"
	FieldInterviewType = "interview_type"
	FieldQuestions     = "questions"
	FieldResponses     = "responses"
	FieldAnalysis      = "analysis"
	FieldTimestamp     = "timestamp"
)

// Require checks that every named field is present, returning a
// ValidationError for the first one missing.
func (c Context) Require(fields ...string) error {
	for _, field := range fields {
		if _, ok := c[field]; !ok {
			return &ValidationError{Field: field}
		}
	}
	return nil
}

// String returns the named field as a string, or "" when absent or not a string
func (c Context) String(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// Questions returns the question list threaded from the generation stage
func (c Context) Questions() []types.GeneratedQuestion {
	if v, ok := c[FieldQuestions].([]types.GeneratedQuestion); ok {
		return v
	}
	return nil
}

// Responses returns the collected responses, keyed by stringified question
// number or by question text.
func (c Context) Responses() map[string]string {
	if v, ok := c[FieldResponses].(map[string]string); ok {
		return v
	}
	return nil
}

// Analysis returns the analysis result threaded from the analysis stage
func (c Context) Analysis() *types.AnalysisResult {
	if v, ok := c[FieldAnalysis].(*types.AnalysisResult); ok {
		return v
	}
	return nil
}

// Timestamp returns the pipeline timestamp threaded by the coordinator,
// or the zero time when not set.
func (c Context) Timestamp() time.Time {
	if v, ok := c[FieldTimestamp].(time.Time); ok {
		return v
	}
	return time.Time{}
}
