// Package agent implements the interview agent pipeline: context assembly,
// generation, result structuring, and quality scoring for each agent kind.
package agent

import "fmt"

// ValidationError indicates a required context field was missing or malformed.
// It is raised at stage entry, before any lookup or generation call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: required field %q is missing", e.Field)
}

// NotFoundError indicates a referenced resource does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ExternalServiceError indicates a downstream service call failed.
// The cause is opaque to the agent core and is never replaced with a default result.
type ExternalServiceError struct {
	Service string
	Cause   error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s failed: %v", e.Service, e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// StageError wraps a collaborator failure with stage-identifying context.
// The wrapped error keeps its kind; errors.As sees through the wrapper.
type StageError struct {
	Stage   Kind
	Subject string // employee or interview id the stage was processing
	Cause   error
}

func (e *StageError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("stage %s (%s): %v", e.Stage, e.Subject, e.Cause)
	}
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}
