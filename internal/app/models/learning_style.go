package models

// StyleDistribution holds a user's learning style percentages
// ('learning_style_distribution' table)
type StyleDistribution struct {
	VisualPercentage         float64 `json:"visual_percentage" db:"visual_percentage"`
	AuditoryPercentage       float64 `json:"auditory_percentage" db:"auditory_percentage"`
	ReadingWritingPercentage float64 `json:"reading_writing_percentage" db:"reading_writing_percentage"`
	KinestheticPercentage    float64 `json:"kinesthetic_percentage" db:"kinesthetic_percentage"`
}

// StyleProfile holds a user's learning profile ('learning_style_profile')
type StyleProfile struct {
	Strengths      string `json:"strengths" db:"strengths"`
	AreasForGrowth string `json:"areas_for_growth" db:"areas_for_growth"`
}

// StudyTechnique is a per-style reference row ('study_techniques')
type StudyTechnique struct {
	Description string `json:"technique_description" db:"technique_description"`
}

// StudyTool is a per-style reference row ('study_tools')
type StudyTool struct {
	Name        string `json:"tool_name" db:"tool_name"`
	Description string `json:"tool_description" db:"tool_description"`
}

// GroupRecommendation is a per-style reference row
// ('study_group_recommendations')
type GroupRecommendation struct {
	Description string `json:"recommendation_description" db:"recommendation_description"`
}
