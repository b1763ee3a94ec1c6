package types

// QuestionType classifies the format of an interview question
type QuestionType string

// Question types
const (
	QuestionBehavioral        QuestionType = "BEHAVIORAL"
	QuestionTechnical         QuestionType = "TECHNICAL"
	QuestionSituational       QuestionType = "SITUATIONAL"
	QuestionCareerDevelopment QuestionType = "CAREER_DEVELOPMENT"
)

// QuestionCategory classifies what competency a question probes
type QuestionCategory string

// Question categories
const (
	CategorySkillsAssessment QuestionCategory = "SKILLS_ASSESSMENT"
	CategoryLeadership       QuestionCategory = "LEADERSHIP"
	CategoryProblemSolving   QuestionCategory = "PROBLEM_SOLVING"
	CategoryCommunication    QuestionCategory = "COMMUNICATION"
	CategoryCulturalFit      QuestionCategory = "CULTURAL_FIT"
	CategoryCareerGrowth     QuestionCategory = "CAREER_GROWTH"
)

// GeneratedQuestion is one structured interview question produced by the
// question generation stage. Immutable once produced.
type GeneratedQuestion struct {
	ID               string           `json:"id"`
	Text             string           `json:"question_text"`
	Type             QuestionType     `json:"question_type"`
	Category         QuestionCategory `json:"category"`
	Rationale        string           `json:"rationale"`
	Weight           int              `json:"weight"`
	ExpectedElements []string         `json:"expected_elements"`
}
