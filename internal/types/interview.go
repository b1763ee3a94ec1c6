package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InterviewType selects the prompt template and required-field set for a session
type InterviewType string

// Interview types
const (
	InterviewPerformanceReview InterviewType = "PERFORMANCE_REVIEW"
	InterviewPromotion         InterviewType = "PROMOTION"
	InterviewSkillAssessment   InterviewType = "SKILL_ASSESSMENT"
	InterviewCareerDevelopment InterviewType = "CAREER_DEVELOPMENT"
	InterviewExit              InterviewType = "EXIT"
)

// InterviewStatus is the lifecycle state of an interview
type InterviewStatus string

// Interview statuses. The agent core only distinguishes scheduled and completed;
// responses are collected externally between the two.
const (
	StatusScheduled  InterviewStatus = "scheduled"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

// Interview is a persisted interview session
type Interview struct {
	ID           uuid.UUID         `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	Type         InterviewType     `json:"type"`
	Status       InterviewStatus   `json:"status"`
	ScheduledAt  time.Time         `json:"scheduled_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	Responses    map[string]string `json:"responses,omitempty"`
	OverallScore *float64          `json:"overall_score,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty"`
}

// Deleted reports whether the interview record has been soft-deleted
func (i *Interview) Deleted() bool {
	return i.DeletedAt != nil
}

// CreateInterviewRequest represents the request to schedule a new interview.
type CreateInterviewRequest struct {
	EmployeeID  string    `json:"employee_id" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// Validate validates the CreateInterviewRequest using the validator.
func (r *CreateInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
