package types

// RecommendationType classifies what kind of HR action an item proposes
type RecommendationType string

// Recommendation types
const (
	RecommendPromotion              RecommendationType = "promotion"
	RecommendTraining               RecommendationType = "training"
	RecommendMentoring              RecommendationType = "mentoring"
	RecommendRoleChange             RecommendationType = "role_change"
	RecommendPerformanceImprovement RecommendationType = "performance_improvement"
	RecommendRecognition            RecommendationType = "recognition"
)

// HighPriorityThreshold defines the cutoff for "high priority" items.
// Priority 1 is highest; anything at or below this value counts as high.
const HighPriorityThreshold = 2

// RecommendationItem is one prioritized, actionable recommendation.
// Priority runs 1 (highest) through 5; ties are allowed.
type RecommendationItem struct {
	Type           RecommendationType `json:"type"`
	Priority       int                `json:"priority"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	ActionItems    []string           `json:"action_items"`
	Timeline       string             `json:"timeline,omitempty"`
	SuccessMetrics []string           `json:"success_metrics,omitempty"`
	EstimatedCost  string             `json:"estimated_cost,omitempty"`
	ROIProjection  string             `json:"roi_projection,omitempty"`
}

// HighPriority reports whether the item falls in the high-priority band
func (r RecommendationItem) HighPriority() bool {
	return r.Priority <= HighPriorityThreshold
}

// ExecutiveSummary is the leading summary of a recommendation set
type ExecutiveSummary struct {
	OverallRecommendation string   `json:"overall_recommendation"`
	KeyPriorities         []string `json:"key_priorities"`
	ExpectedOutcomes      string   `json:"expected_outcomes"`
}

// LongTermPathway buckets development goals by horizon
type LongTermPathway struct {
	SixMonthGoals      []string `json:"6_month_goals"`
	TwelveMonthGoals   []string `json:"12_month_goals"`
	EighteenMonthGoals []string `json:"18_month_goals"`
}

// RiskMitigation pairs identified risks with mitigation strategies
type RiskMitigation struct {
	PotentialRisks       []string `json:"potential_risks"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

// RecommendationSet is the structured output of the decision support stage
type RecommendationSet struct {
	ExecutiveSummary ExecutiveSummary     `json:"executive_summary"`
	Items            []RecommendationItem `json:"items"`
	LongTermPathway  LongTermPathway      `json:"long_term_pathway"`
	RiskMitigation   RiskMitigation       `json:"risk_mitigation"`
}

// HighPriorityCount returns how many items fall in the high-priority band
func (s *RecommendationSet) HighPriorityCount() int {
	count := 0
	for _, item := range s.Items {
		if item.HighPriority() {
			count++
		}
	}
	return count
}
