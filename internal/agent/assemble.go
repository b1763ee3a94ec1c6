package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/interview-assistant/internal/types"
)

// assembleQuestionContext builds the prompt for the question generation stage
func assembleQuestionContext(ctx context.Context, r *Runner, in Context) (string, error) {
	employeeID := in.String(FieldEmployeeID)
	profile, err := r.lookupProfile(ctx, employeeID)
	if err != nil {
		return "", err
	}

	requirements, err := r.store.GetJobRequirements(ctx, profile.Position, profile.Department)
	if err != nil {
		return "", err
	}

	benchmarks, err := r.bench.GetDepartmentBenchmarks(ctx, profile.Department)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(FormatEmployeeProfile(profile))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("INTERVIEW TYPE: %s\n\n", in.String(FieldInterviewType)))
	sb.WriteString("JOB REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("Required Skills: %s\n", strings.Join(requirements.RequiredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Preferred Skills: %s\n", strings.Join(requirements.PreferredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Key Competencies: %s\n\n", strings.Join(requirements.Competencies, ", ")))
	sb.WriteString(formatBenchmarks(benchmarks))
	sb.WriteString("\nPlease generate appropriate interview questions for this context.\n")
	sb.WriteString("Include a mix of question types and provide rationale for each question.\n")

	return sb.String(), nil
}

// assembleAnalysisContext builds the prompt for the response analysis stage
func assembleAnalysisContext(ctx context.Context, r *Runner, in Context) (string, error) {
	profile, err := r.lookupProfile(ctx, in.String(FieldEmployeeID))
	if err != nil {
		return "", err
	}

	benchmarks, err := r.bench.GetDepartmentBenchmarks(ctx, profile.Department)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(FormatEmployeeProfile(profile))
	sb.WriteString("\n")
	sb.WriteString("INTERVIEW QUESTIONS AND RESPONSES:\n")
	sb.WriteString(FormatQAPairs(in.Questions(), in.Responses()))
	sb.WriteString("\n")
	sb.WriteString(formatBenchmarks(benchmarks))
	sb.WriteString("\nPlease provide a comprehensive analysis of these responses.\n")
	sb.WriteString("Include specific scores for each evaluation criterion and detailed reasoning.\n")

	return sb.String(), nil
}

// assembleRecommendationContext builds the prompt for the decision support stage
func assembleRecommendationContext(ctx context.Context, r *Runner, in Context) (string, error) {
	profile, err := r.lookupProfile(ctx, in.String(FieldEmployeeID))
	if err != nil {
		return "", err
	}

	requirements, err := r.store.GetJobRequirements(ctx, profile.Position, profile.Department)
	if err != nil {
		return "", err
	}

	benchmarks, err := r.bench.GetDepartmentBenchmarks(ctx, profile.Department)
	if err != nil {
		return "", err
	}

	analysis := in.Analysis()
	if analysis == nil {
		return "", &ValidationError{Field: FieldAnalysis, Message: "must be an analysis result"}
	}

	var sb strings.Builder
	sb.WriteString(FormatEmployeeProfile(profile))
	sb.WriteString("\n")
	sb.WriteString("INTERVIEW ANALYSIS RESULTS:\n")
	sb.WriteString(fmt.Sprintf("Overall Assessment: %s\n\n", analysis.OverallAssessment.Summary))
	sb.WriteString("Criterion Scores:\n")
	sb.WriteString(formatScores(analysis.CriterionScores))
	sb.WriteString("\nStrengths:\n")
	sb.WriteString(formatStrengths(analysis.DetailedFeedback.Strengths))
	sb.WriteString("\nDevelopment Areas:\n")
	sb.WriteString(formatDevelopmentAreas(analysis.DetailedFeedback.DevelopmentAreas))
	sb.WriteString("\n")
	sb.WriteString(formatBenchmarks(benchmarks))
	sb.WriteString("\nJOB REQUIREMENTS:\n")
	sb.WriteString(fmt.Sprintf("Required Skills: %s\n", strings.Join(requirements.RequiredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Key Competencies: %s\n", strings.Join(requirements.Competencies, ", ")))
	sb.WriteString("\nPlease provide comprehensive, prioritized recommendations for this employee's development and career progression.\n")
	sb.WriteString("Include specific action items, timelines, and success metrics.\n")

	return sb.String(), nil
}

// lookupProfile fetches the employee profile, converting an absent record
// into a NotFoundError so the stage aborts before any generation call.
func (r *Runner) lookupProfile(ctx context.Context, employeeID string) (types.EmployeeProfile, error) {
	profile, err := r.store.GetEmployeeProfile(ctx, employeeID)
	if err != nil {
		return types.EmployeeProfile{}, err
	}
	if profile == nil {
		return types.EmployeeProfile{}, &NotFoundError{Resource: "employee", ID: employeeID}
	}
	return *profile, nil
}

// FormatQAPairs renders numbered question/response blocks for analysis.
// The response for question i is looked up by its stringified 1-based index,
// falling back to the question text, falling back to "No response".
func FormatQAPairs(questions []types.GeneratedQuestion, responses map[string]string) string {
	blocks := make([]string, 0, len(questions))
	for i, question := range questions {
		number := i + 1
		text := question.Text
		if text == "" {
			text = fmt.Sprintf("Question %d", number)
		}

		response, ok := responses[strconv.Itoa(number)]
		if !ok {
			response, ok = responses[question.Text]
		}
		if !ok {
			response = "No response"
		}

		qType := string(question.Type)
		if qType == "" {
			qType = "Unknown"
		}

		blocks = append(blocks, fmt.Sprintf("Q%d: %s\nResponse: %s\nQuestion Type: %s\n---\n",
			number, text, response, qType))
	}
	return strings.Join(blocks, "\n")
}

func formatBenchmarks(b types.DepartmentBenchmarks) string {
	return fmt.Sprintf("DEPARTMENT BENCHMARKS:\nAverage Score: %.1f\nTop Quartile: %.1f\n",
		b.AverageScore, b.TopQuartile)
}

func formatScores(scores map[types.EvaluationCriteria]float64) string {
	var sb strings.Builder
	for _, criterion := range types.AllCriteria() {
		if score, ok := scores[criterion]; ok {
			sb.WriteString(fmt.Sprintf("- %s: %.1f/10\n", criterion, score))
		}
	}
	return sb.String()
}

func formatStrengths(strengths []types.Strength) string {
	var sb strings.Builder
	for _, s := range strengths {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", s.Area, s.Evidence))
	}
	return sb.String()
}

func formatDevelopmentAreas(areas []types.DevelopmentArea) string {
	var sb strings.Builder
	for _, a := range areas {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", a.Area, a.Gap))
	}
	return sb.String()
}
