package hrdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestLookupJobRequirements_KnownPosition(t *testing.T) {
	req := LookupJobRequirements("Software Engineer", "engineering")

	assert.Equal(t, []string{"Python", "JavaScript", "SQL", "Git"}, req.RequiredSkills)
	assert.Equal(t, "2-5 years", req.ExperienceLevel)
	assert.Contains(t, req.Competencies, "Problem Solving")
}

func TestLookupJobRequirements_UnknownPositionFallsBack(t *testing.T) {
	req := LookupJobRequirements("Underwater Basket Weaver", "crafts")

	assert.Empty(t, req.RequiredSkills)
	assert.Equal(t, "Variable", req.ExperienceLevel)
	assert.Equal(t, []string{"Communication", "Problem Solving"}, req.Competencies)
}

func TestLookupJobRequirements_DepartmentMustMatch(t *testing.T) {
	// Same position name in a different department gets the generic fallback.
	req := LookupJobRequirements("Software Engineer", "marketing")

	assert.Equal(t, "Variable", req.ExperienceLevel)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	store.Put(types.EmployeeProfile{ID: "emp-1", Name: "Alice Johnson"})

	profile, err := store.GetEmployeeProfile(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Alice Johnson", profile.Name)

	missing, err := store.GetEmployeeProfile(context.Background(), "emp-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeededMemoryStore(t *testing.T) {
	store := NewSeededMemoryStore()

	profile, err := store.GetEmployeeProfile(context.Background(), "emp_001")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Sarah Chen", profile.Name)
	assert.Equal(t, "engineering", profile.Department)
	require.NotNil(t, profile.RecentPerformance)
	assert.Equal(t, 8.2, profile.RecentPerformance.Score)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	store.Put(types.EmployeeProfile{ID: "emp-1", Name: "Alice Johnson"})

	first, err := store.GetEmployeeProfile(context.Background(), "emp-1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := store.GetEmployeeProfile(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", second.Name)
}
