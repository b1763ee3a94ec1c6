package agent

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-assistant/internal/types"
)

// FormatEmployeeProfile renders an employee profile into the text block fed to
// the generation call. Absent optional fields degrade to "N/A"; the function
// never fails for a well-formed profile.
func FormatEmployeeProfile(profile types.EmployeeProfile) string {
	var sb strings.Builder

	sb.WriteString("EMPLOYEE PROFILE:\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Position: %s\n", profile.Position))
	sb.WriteString(fmt.Sprintf("Department: %s\n", profile.Department))
	sb.WriteString(fmt.Sprintf("Level: %s\n", profile.Level))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(profile.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("Recent Performance: %s\n", formatRecentPerformance(profile.RecentPerformance)))
	sb.WriteString(fmt.Sprintf("Career Goals: %s\n", formatCareerGoals(profile.CareerGoals)))

	return sb.String()
}

func formatRecentPerformance(rating *types.PerformanceRating) string {
	if rating == nil {
		return "N/A"
	}
	if rating.Period != "" {
		return fmt.Sprintf("%.1f/10 (%s)", rating.Score, rating.Period)
	}
	return fmt.Sprintf("%.1f/10", rating.Score)
}

func formatCareerGoals(goals []string) string {
	if len(goals) == 0 {
		return "N/A"
	}
	return strings.Join(goals, ", ")
}
