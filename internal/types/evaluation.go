package types

// EvaluationCriteria is one scored dimension of a response analysis
type EvaluationCriteria string

// The eight evaluation criteria. Every analysis is expected to score all of
// them; confidence computation degrades when any are missing.
const (
	CriteriaTechnicalSkills EvaluationCriteria = "technical_skills"
	CriteriaCommunication   EvaluationCriteria = "communication"
	CriteriaProblemSolving  EvaluationCriteria = "problem_solving"
	CriteriaLeadership      EvaluationCriteria = "leadership"
	CriteriaTeamwork        EvaluationCriteria = "teamwork"
	CriteriaAdaptability    EvaluationCriteria = "adaptability"
	CriteriaCulturalFit     EvaluationCriteria = "cultural_fit"
	CriteriaGrowthPotential EvaluationCriteria = "growth_potential"
)

// AllCriteria lists every evaluation criterion in scoring order
func AllCriteria() []EvaluationCriteria {
	return []EvaluationCriteria{
		CriteriaTechnicalSkills,
		CriteriaCommunication,
		CriteriaProblemSolving,
		CriteriaLeadership,
		CriteriaTeamwork,
		CriteriaAdaptability,
		CriteriaCulturalFit,
		CriteriaGrowthPotential,
	}
}

// OverallAssessment is the summary section of an analysis result
type OverallAssessment struct {
	Summary        string   `json:"summary"`
	KeyHighlights  []string `json:"key_highlights"`
	AreasOfConcern []string `json:"areas_of_concern"`
}

// Strength is one identified strength with supporting evidence
type Strength struct {
	Area     string `json:"area"`
	Evidence string `json:"evidence"`
	Impact   string `json:"impact,omitempty"`
}

// DevelopmentArea is one identified gap with a recommended remedy
type DevelopmentArea struct {
	Area           string `json:"area"`
	Gap            string `json:"gap"`
	Recommendation string `json:"recommendation,omitempty"`
}

// DetailedFeedback groups strengths and development areas
type DetailedFeedback struct {
	Strengths        []Strength        `json:"strengths"`
	DevelopmentAreas []DevelopmentArea `json:"development_areas"`
}

// ResponseQuality rates how usable the collected responses were, each in [0,1]
type ResponseQuality struct {
	Completeness float64 `json:"completeness"`
	Specificity  float64 `json:"specificity"`
	Relevance    float64 `json:"relevance"`
}

// AnalysisResult is the structured output of the response analysis stage.
// CriterionScores maps each criterion to a score in [0,10].
type AnalysisResult struct {
	OverallAssessment OverallAssessment              `json:"overall_assessment"`
	CriterionScores   map[EvaluationCriteria]float64 `json:"criterion_scores"`
	DetailedFeedback  DetailedFeedback               `json:"detailed_feedback"`
	ResponseQuality   *ResponseQuality               `json:"response_quality,omitempty"`
}
