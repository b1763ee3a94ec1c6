// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEmployeeProfile outputs a human-readable summary of an employee profile
func (p *Printer) PrintEmployeeProfile(profile *types.EmployeeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Position: %s (%s)\n", profile.Position, profile.Department))
	sb.WriteString(fmt.Sprintf("Level: %s, %d years experience\n", profile.Level, profile.ExperienceYears))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(profile.Skills, ", ")))
	}
	if profile.RecentPerformance != nil {
		sb.WriteString(fmt.Sprintf("Recent performance: %.1f/10\n", profile.RecentPerformance.Score))
	}

	p.printBox("EMPLOYEE PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintQuestions outputs the generated question set
func (p *Printer) PrintQuestions(questions []types.GeneratedQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d questions\n", len(questions)))
	for i, q := range questions {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(questions)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, q.Type, q.Text))
	}

	p.printBox("GENERATED QUESTIONS", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs the analysis result with criterion scores
func (p *Printer) PrintAnalysis(analysis *types.AnalysisResult) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summary: %s\n", analysis.OverallAssessment.Summary))
	for _, criterion := range types.AllCriteria() {
		if score, ok := analysis.CriterionScores[criterion]; ok {
			sb.WriteString(fmt.Sprintf("  %s: %.1f/10\n", criterion, score))
		}
	}
	if len(analysis.DetailedFeedback.Strengths) > 0 {
		sb.WriteString(fmt.Sprintf("Strengths: %d identified\n", len(analysis.DetailedFeedback.Strengths)))
	}
	if len(analysis.DetailedFeedback.DevelopmentAreas) > 0 {
		sb.WriteString(fmt.Sprintf("Development areas: %d identified\n", len(analysis.DetailedFeedback.DevelopmentAreas)))
	}

	p.printBox("RESPONSE ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs the recommendation set, highest priority first
func (p *Printer) PrintRecommendations(set *types.RecommendationSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %s\n", set.ExecutiveSummary.OverallRecommendation))
	sb.WriteString(fmt.Sprintf("High priority items: %d of %d\n", set.HighPriorityCount(), len(set.Items)))
	for i, item := range set.Items {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(set.Items)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("P%d [%s] %s\n", item.Priority, item.Type, item.Title))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimRight(sb.String(), "\n"))
}
