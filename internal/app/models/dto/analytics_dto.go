package dto

// Analytics endpoints return the exact shapes the dashboard charts read.
// The "status" field is part of the wire contract, not decoration.

// TotalMatchesResponse reports matches recorded in the reporting window
type TotalMatchesResponse struct {
	TotalMatches int64  `json:"total_matches"`
	TimePeriod   string `json:"time_period"`
	Status       string `json:"status"`
}

// RetentionResponse reports the 30-day retention rate. RetentionChange is
// a documented placeholder, the source system never computed it.
type RetentionResponse struct {
	RetentionRate   float64 `json:"retention_rate"`
	RetentionChange string  `json:"retention_change"`
	Status          string  `json:"status"`
}

// SuccessRateResponse reports the share of sessions marked successful.
// Change is a documented placeholder.
type SuccessRateResponse struct {
	SuccessRate float64 `json:"success_rate"`
	Change      float64 `json:"change"`
	Status      string  `json:"status"`
}

// AvgMatchTimeResponse reports average days from match to first session.
// Change is a documented placeholder.
type AvgMatchTimeResponse struct {
	AvgDays float64 `json:"avg_days"`
	Change  float64 `json:"change"`
	Status  string  `json:"status"`
}

// RecentMatch is one row of the recent-matches card
type RecentMatch struct {
	Pair          string `json:"pair"`
	Course        string `json:"course"`
	Compatibility string `json:"compatibility"`
	MatchDate     string `json:"match_date"`
}

// RecentMatchesResponse lists the newest matches
type RecentMatchesResponse struct {
	Matches []RecentMatch `json:"matches"`
	Status  string        `json:"status"`
}

// MajorDistributionEntry is one bucket of the major distribution
type MajorDistributionEntry struct {
	Major string `json:"major"`
	Count int64  `json:"count"`
}

// InterestDistributionEntry is one bucket of the interest distribution
type InterestDistributionEntry struct {
	Interest string `json:"interest"`
	Count    int64  `json:"count"`
}

// MajorDistributionResponse lists user counts per major, descending
type MajorDistributionResponse struct {
	Distribution []MajorDistributionEntry `json:"distribution"`
	Status       string                   `json:"status"`
}

// InterestDistributionResponse lists user counts per interest, descending
type InterestDistributionResponse struct {
	Distribution []InterestDistributionEntry `json:"distribution"`
	Status       string                      `json:"status"`
}

// WeekdaySessions is a per-weekday session bucket
type WeekdaySessions struct {
	Weekday  string `json:"weekday"`
	Sessions int64  `json:"sessions"`
}

// CohortSessions aggregates study session activity for the academic
// insights page
type CohortSessions struct {
	TotalSessions      int64             `json:"total_sessions"`
	AvgDurationMinutes float64           `json:"avg_duration_minutes"`
	ByWeekday          []WeekdaySessions `json:"by_weekday"`
}

// CohortAnalyticsResponse wraps the session aggregates
type CohortAnalyticsResponse struct {
	Sessions CohortSessions `json:"sessions"`
	Status   string         `json:"status"`
}
