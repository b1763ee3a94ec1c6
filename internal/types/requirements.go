package types

// JobRequirements describes what a position in a department calls for
type JobRequirements struct {
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Competencies    []string `json:"competencies"`
}

// DepartmentBenchmarks holds performance benchmarks for one department.
// Median and bottom quartile are only available when computed from real
// interview data rather than defaults.
type DepartmentBenchmarks struct {
	AverageScore   float64  `json:"average_score"`
	TopQuartile    float64  `json:"top_quartile"`
	MedianScore    *float64 `json:"median_score,omitempty"`
	BottomQuartile *float64 `json:"bottom_quartile,omitempty"`
}
