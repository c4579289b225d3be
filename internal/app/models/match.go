package models

import "time"

// Match is a canonical unordered pair of user ids from the 'matched_with'
// table. Rows always store the smaller id in User1ID so each pair has
// exactly one representation.
type Match struct {
	User1ID   int64     `json:"user1_id" db:"user1_id"`
	User2ID   int64     `json:"user2_id" db:"user2_id"`
	Status    *string   `json:"status,omitempty" db:"status"`
	MatchDate time.Time `json:"match_date" db:"match_date"`
}

// MatchPartner is the other side of a match as seen by one user
type MatchPartner struct {
	UserID int64  `json:"matched_user_id" db:"matched_user_id"`
	Name   string `json:"matched_user_name" db:"matched_user_name"`
}

// StudyPartner is a scored matching candidate for a course
type StudyPartner struct {
	UserID        int64   `json:"userid" db:"userid"`
	Name          string  `json:"name" db:"name"`
	Email         string  `json:"email" db:"email"`
	LearningStyle *string `json:"learning_style" db:"learning_style"`
	Availability  *int64  `json:"availability" db:"availability"`
	Score         int     `json:"score" db:"score"`
}

// MatchHistoryEvent records match lifecycle events in 'match_history'
type MatchHistoryEvent struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   int64     `json:"user1_id" db:"user1_id"`
	User2ID   int64     `json:"user2_id" db:"user2_id"`
	Event     string    `json:"event" db:"event"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Match history event types
const (
	MatchEventCreated = "created"
	MatchEventDeleted = "deleted"
)
