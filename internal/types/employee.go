// Package types provides type definitions for structured data used throughout the interview-assistant system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Department is the organizational unit an employee belongs to
type Department string

// Known departments
const (
	DepartmentEngineering Department = "engineering"
	DepartmentMarketing   Department = "marketing"
	DepartmentSales       Department = "sales"
	DepartmentHR          Department = "hr"
	DepartmentFinance     Department = "finance"
	DepartmentOperations  Department = "operations"
)

// EmployeeLevel is the seniority level of an employee
type EmployeeLevel string

// Known employee levels
const (
	LevelIntern   EmployeeLevel = "intern"
	LevelJunior   EmployeeLevel = "junior"
	LevelMid      EmployeeLevel = "mid"
	LevelSenior   EmployeeLevel = "senior"
	LevelLead     EmployeeLevel = "lead"
	LevelManager  EmployeeLevel = "manager"
	LevelDirector EmployeeLevel = "director"
)

// PerformanceRating is one historical rating snapshot for an employee
type PerformanceRating struct {
	Period   string  `json:"period"`
	Score    float64 `json:"score"`
	Reviewer string  `json:"reviewer,omitempty"`
	Summary  string  `json:"summary,omitempty"`
	Date     string  `json:"date,omitempty"`
}

// EmployeeProfile is the immutable employee snapshot fed into agent context.
// It is sourced from the employee store but not owned by the agent core.
type EmployeeProfile struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Position          string             `json:"position"`
	Department        string             `json:"department"`
	Level             string             `json:"level"`
	ExperienceYears   int                `json:"experience_years"`
	Skills            []string           `json:"skills"`
	RecentPerformance *PerformanceRating `json:"recent_performance,omitempty"`
	CareerGoals       []string           `json:"career_goals,omitempty"`
}

// Employee is the full employee record as persisted
type Employee struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Position           string              `json:"position"`
	Department         Department          `json:"department"`
	Level              EmployeeLevel       `json:"level"`
	ExperienceYears    int                 `json:"experience_years"`
	Skills             []string            `json:"skills"`
	PerformanceRatings []PerformanceRating `json:"performance_ratings,omitempty"`
	CareerGoals        []string            `json:"career_goals,omitempty"`
	ManagerID          string              `json:"manager_id,omitempty"`
	HireDate           time.Time           `json:"hire_date"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          *time.Time          `json:"deleted_at,omitempty"`
}

// Deleted reports whether the employee record has been soft-deleted
func (e *Employee) Deleted() bool {
	return e.DeletedAt != nil
}

// Profile converts the full record to the snapshot used by the agents.
// The most recent performance rating (by date) becomes RecentPerformance.
func (e *Employee) Profile() EmployeeProfile {
	return EmployeeProfile{
		ID:                e.ID,
		Name:              e.Name,
		Position:          e.Position,
		Department:        string(e.Department),
		Level:             string(e.Level),
		ExperienceYears:   e.ExperienceYears,
		Skills:            e.Skills,
		RecentPerformance: MostRecentRating(e.PerformanceRatings),
		CareerGoals:       e.CareerGoals,
	}
}

// MostRecentRating returns the rating with the latest date, or nil when none exist
func MostRecentRating(ratings []PerformanceRating) *PerformanceRating {
	var recent *PerformanceRating
	for i := range ratings {
		if recent == nil || ratings[i].Date > recent.Date {
			recent = &ratings[i]
		}
	}
	return recent
}

// CreateEmployeeRequest represents the request to create a new employee record.
type CreateEmployeeRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Email           string   `json:"email" validate:"required,email"`
	Position        string   `json:"position" validate:"required,min=2,max=100"`
	Department      string   `json:"department" validate:"required"`
	Level           string   `json:"level" validate:"required"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0,lte=50"`
	Skills          []string `json:"skills,omitempty"`
	CareerGoals     []string `json:"career_goals,omitempty"`
	ManagerID       string   `json:"manager_id,omitempty"`
}

// Validate validates the CreateEmployeeRequest using the validator.
func (r *CreateEmployeeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
