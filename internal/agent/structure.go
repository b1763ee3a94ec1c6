package agent

import (
	"fmt"

	"github.com/jonathan/interview-assistant/internal/types"
)

// Structurers map raw generated text into the fixed per-kind schemas. The
// static implementations below are deterministic placeholders: they emit a
// canned structure irrespective of the raw text, matching the current
// behavior before real response parsing is integrated. They never fail, even
// on empty or malformed text. Replace them through Runner options once a
// parser exists.

// QuestionStructurer maps raw text to a structured question list
type QuestionStructurer func(raw string, in Context) []types.GeneratedQuestion

// AnalysisStructurer maps raw text to a structured analysis result
type AnalysisStructurer func(raw string, in Context) *types.AnalysisResult

// RecommendationStructurer maps raw text to a structured recommendation set
type RecommendationStructurer func(raw string, in Context) *types.RecommendationSet

// staticQuestionCount is the fixed number of placeholder questions per session
const staticQuestionCount = 8

// StaticQuestionStructurer returns the deterministic placeholder question set
func StaticQuestionStructurer(_ string, _ Context) []types.GeneratedQuestion {
	questions := make([]types.GeneratedQuestion, 0, staticQuestionCount)
	for i := 0; i < staticQuestionCount; i++ {
		questions = append(questions, types.GeneratedQuestion{
			ID:               fmt.Sprintf("q_%d", i),
			Text:             fmt.Sprintf("Sample question %d", i),
			Type:             types.QuestionBehavioral,
			Category:         types.CategorySkillsAssessment,
			Rationale:        "This question assesses...",
			Weight:           1,
			ExpectedElements: []string{"specific examples", "quantifiable results"},
		})
	}
	return questions
}

// StaticAnalysisStructurer returns the deterministic placeholder analysis
func StaticAnalysisStructurer(_ string, _ Context) *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallAssessment: types.OverallAssessment{
			Summary: "Strong candidate with excellent technical skills and communication abilities",
			KeyHighlights: []string{
				"Demonstrated strong problem-solving approach",
				"Clear communication with specific examples",
				"Shows leadership potential",
			},
			AreasOfConcern: []string{
				"Limited experience with team management",
				"Could provide more quantified results",
			},
		},
		CriterionScores: map[types.EvaluationCriteria]float64{
			types.CriteriaTechnicalSkills: 8.5,
			types.CriteriaCommunication:   9.0,
			types.CriteriaProblemSolving:  8.0,
			types.CriteriaLeadership:      7.5,
			types.CriteriaTeamwork:        8.5,
			types.CriteriaAdaptability:    8.0,
			types.CriteriaCulturalFit:     9.0,
			types.CriteriaGrowthPotential: 8.5,
		},
		DetailedFeedback: types.DetailedFeedback{
			Strengths: []types.Strength{
				{
					Area:     "Technical Problem Solving",
					Evidence: "Provided specific example of optimizing database queries",
					Impact:   "Demonstrated 60% performance improvement",
				},
				{
					Area:     "Communication",
					Evidence: "Clear, structured responses with concrete examples",
					Impact:   "Easy to follow thought process",
				},
			},
			DevelopmentAreas: []types.DevelopmentArea{
				{
					Area:           "Leadership Experience",
					Gap:            "Limited direct team management experience",
					Recommendation: "Seek mentoring opportunities or lead cross-functional projects",
				},
			},
		},
		ResponseQuality: &types.ResponseQuality{
			Completeness: 0.9,
			Specificity:  0.85,
			Relevance:    0.95,
		},
	}
}

// StaticRecommendationStructurer returns the deterministic placeholder recommendations
func StaticRecommendationStructurer(_ string, _ Context) *types.RecommendationSet {
	return &types.RecommendationSet{
		ExecutiveSummary: types.ExecutiveSummary{
			OverallRecommendation: "Strong performer ready for increased responsibilities",
			KeyPriorities: []string{
				"Leadership development program enrollment",
				"Technical mentoring assignment",
				"Cross-functional project leadership",
			},
			ExpectedOutcomes: "Promotion readiness within 12-18 months",
		},
		Items: []types.RecommendationItem{
			{
				Type:        types.RecommendTraining,
				Priority:    1,
				Title:       "Leadership Development Program",
				Description: "Enroll in comprehensive leadership training to address management readiness gap",
				ActionItems: []string{
					"Identify suitable internal leadership program",
					"Schedule training sessions over next 6 months",
					"Assign leadership mentor",
					"Begin leading small cross-functional project",
				},
				Timeline: "6 months",
				SuccessMetrics: []string{
					"Completion of leadership assessment",
					"360-degree feedback improvement",
					"Successful project delivery",
				},
				EstimatedCost: "$3,000",
				ROIProjection: "High - addresses key promotion requirement",
			},
			{
				Type:        types.RecommendMentoring,
				Priority:    2,
				Title:       "Senior Technical Mentorship",
				Description: "Pair with senior engineer to enhance advanced technical skills",
				ActionItems: []string{
					"Identify senior mentor in architecture domain",
					"Establish weekly 1-on-1 sessions",
					"Create technical learning plan",
					"Work on complex technical challenges together",
				},
				Timeline: "12 months",
				SuccessMetrics: []string{
					"Technical skill assessment scores",
					"Complex problem-solving demonstrations",
					"Mentor feedback ratings",
				},
				EstimatedCost: "$500",
				ROIProjection: "High - enhances technical capabilities",
			},
			{
				Type:        types.RecommendRecognition,
				Priority:    3,
				Title:       "Performance Recognition",
				Description: "Acknowledge strong performance and communication skills",
				ActionItems: []string{
					"Nominate for quarterly recognition award",
					"Share success stories in team meetings",
					"Consider for conference speaking opportunities",
					"Document achievements in performance review",
				},
				Timeline: "Immediate",
				SuccessMetrics: []string{
					"Award recognition received",
					"Positive team feedback",
					"Increased engagement scores",
				},
				EstimatedCost: "$200",
				ROIProjection: "Medium - improves retention and motivation",
			},
		},
		LongTermPathway: types.LongTermPathway{
			SixMonthGoals: []string{
				"Complete leadership fundamentals training",
				"Lead cross-functional project successfully",
				"Demonstrate improved technical architecture skills",
			},
			TwelveMonthGoals: []string{
				"Ready for senior role consideration",
				"Mentor junior team members",
				"Contribute to strategic technical decisions",
			},
			EighteenMonthGoals: []string{
				"Promotion to senior/lead role",
				"Take on team management responsibilities",
				"Drive major technical initiatives",
			},
		},
		RiskMitigation: types.RiskMitigation{
			PotentialRisks: []string{
				"Limited management experience may slow promotion timeline",
				"High performer retention risk if growth stagnates",
			},
			MitigationStrategies: []string{
				"Accelerated leadership development with stretch assignments",
				"Regular career progression discussions",
				"Competitive compensation review",
			},
		},
	}
}
