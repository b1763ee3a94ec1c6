package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-assistant/internal/types"
)

func TestFormatEmployeeProfile(t *testing.T) {
	profile := types.EmployeeProfile{
		ID:              "emp-1",
		Name:            "Alice Johnson",
		Position:        "Software Engineer",
		Department:      "engineering",
		Level:           "senior",
		ExperienceYears: 7,
		Skills:          []string{"Go", "PostgreSQL", "Kubernetes"},
		RecentPerformance: &types.PerformanceRating{
			Period: "2025-H2",
			Score:  8.5,
		},
		CareerGoals: []string{"Tech lead", "Architecture ownership"},
	}

	text := FormatEmployeeProfile(profile)

	assert.Contains(t, text, "EMPLOYEE PROFILE:\n")
	assert.Contains(t, text, "Name: Alice Johnson\n")
	assert.Contains(t, text, "Position: Software Engineer\n")
	assert.Contains(t, text, "Department: engineering\n")
	assert.Contains(t, text, "Level: senior\n")
	assert.Contains(t, text, "Experience: 7 years\n")
	assert.Contains(t, text, "Skills: Go, PostgreSQL, Kubernetes\n")
	assert.Contains(t, text, "Recent Performance: 8.5/10 (2025-H2)\n")
	assert.Contains(t, text, "Career Goals: Tech lead, Architecture ownership\n")
}

func TestFormatEmployeeProfile_MissingOptionalFields(t *testing.T) {
	profile := types.EmployeeProfile{
		Name:       "Bob Smith",
		Position:   "Analyst",
		Department: "finance",
	}

	text := FormatEmployeeProfile(profile)

	assert.Contains(t, text, "Recent Performance: N/A\n")
	assert.Contains(t, text, "Career Goals: N/A\n")
}

func TestFormatEmployeeProfile_RatingWithoutPeriod(t *testing.T) {
	profile := types.EmployeeProfile{
		Name:              "Carol Diaz",
		RecentPerformance: &types.PerformanceRating{Score: 7.0},
	}

	text := FormatEmployeeProfile(profile)

	assert.Contains(t, text, "Recent Performance: 7.0/10\n")
	assert.NotContains(t, text, "7.0/10 (")
}

func TestFormatEmployeeProfile_IsPure(t *testing.T) {
	profile := types.EmployeeProfile{
		Name:   "Dana Lee",
		Skills: []string{"SQL"},
	}

	first := FormatEmployeeProfile(profile)
	second := FormatEmployeeProfile(profile)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"SQL"}, profile.Skills)
}
