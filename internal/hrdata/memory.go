package hrdata

import (
	"context"
	"sync"

	"github.com/jonathan/interview-assistant/internal/types"
)

// MemoryStore is an in-memory profile store. It backs CLI demo runs and tests
// where no database is available.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]types.EmployeeProfile
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]types.EmployeeProfile)}
}

// NewSeededMemoryStore creates an in-memory store preloaded with sample
// employees for demo runs.
func NewSeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	s.Put(types.EmployeeProfile{
		ID:              "emp_001",
		Name:            "Sarah Chen",
		Position:        "Software Engineer",
		Department:      "engineering",
		Level:           "mid",
		ExperienceYears: 4,
		Skills:          []string{"Python", "JavaScript", "SQL", "Docker"},
		RecentPerformance: &types.PerformanceRating{
			Period: "2026-H1",
			Score:  8.2,
			Date:   "2026-06-30",
		},
		CareerGoals: []string{"Senior engineer", "Technical leadership"},
	})
	s.Put(types.EmployeeProfile{
		ID:              "emp_002",
		Name:            "Marcus Webb",
		Position:        "Marketing Manager",
		Department:      "marketing",
		Level:           "manager",
		ExperienceYears: 8,
		Skills:          []string{"Digital Marketing", "Analytics", "Campaign Management"},
		RecentPerformance: &types.PerformanceRating{
			Period: "2026-H1",
			Score:  7.6,
			Date:   "2026-06-30",
		},
		CareerGoals: []string{"Director of marketing"},
	})
	return s
}

// Put adds or replaces a profile
func (s *MemoryStore) Put(profile types.EmployeeProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
}

// GetEmployeeProfile returns the stored profile, or nil when absent
func (s *MemoryStore) GetEmployeeProfile(_ context.Context, id string) (*types.EmployeeProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if profile, ok := s.profiles[id]; ok {
		return &profile, nil
	}
	return nil, nil
}

// GetJobRequirements returns the requirements for a position in a department
func (s *MemoryStore) GetJobRequirements(_ context.Context, position, department string) (types.JobRequirements, error) {
	return LookupJobRequirements(position, department), nil
}
