// Package hrdata supplies employee context to the agent pipeline: profiles,
// job requirements, and the store interfaces the agents consume.
package hrdata

import (
	"context"

	"github.com/jonathan/interview-assistant/internal/db"
	"github.com/jonathan/interview-assistant/internal/types"
)

// Store serves employee profiles and job requirements from the database
type Store struct {
	db *db.DB
}

// NewStore creates a store backed by the given database
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// GetEmployeeProfile returns the agent-facing profile snapshot for an
// employee, or nil when no such employee exists.
func (s *Store) GetEmployeeProfile(ctx context.Context, id string) (*types.EmployeeProfile, error) {
	employee, err := s.db.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}

	profile := employee.Profile()
	return &profile, nil
}

// GetJobRequirements returns the requirements for a position in a department
func (s *Store) GetJobRequirements(ctx context.Context, position, department string) (types.JobRequirements, error) {
	return LookupJobRequirements(position, department), nil
}

// requirementsKey identifies one position within a department
type requirementsKey struct {
	position   string
	department string
}

// requirementsMap holds the known position requirements. Positions not in the
// map fall back to generic requirements.
var requirementsMap = map[requirementsKey]types.JobRequirements{
	{"Software Engineer", "engineering"}: {
		RequiredSkills:  []string{"Python", "JavaScript", "SQL", "Git"},
		PreferredSkills: []string{"React", "Docker", "AWS"},
		ExperienceLevel: "2-5 years",
		Competencies:    []string{"Technical Skills", "Problem Solving", "Communication"},
	},
	{"Marketing Manager", "marketing"}: {
		RequiredSkills:  []string{"Digital Marketing", "Analytics", "Campaign Management"},
		PreferredSkills: []string{"SEO", "Social Media", "Content Strategy"},
		ExperienceLevel: "3-7 years",
		Competencies:    []string{"Leadership", "Strategic Thinking", "Communication"},
	},
}

// LookupJobRequirements resolves the requirements for a position, falling
// back to generic requirements for unknown positions.
func LookupJobRequirements(position, department string) types.JobRequirements {
	if req, ok := requirementsMap[requirementsKey{position, department}]; ok {
		return req
	}
	return types.JobRequirements{
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
		ExperienceLevel: "Variable",
		Competencies:    []string{"Communication", "Problem Solving"},
	}
}
