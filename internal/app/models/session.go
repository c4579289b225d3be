package models

import "time"

// StudySession records a meeting between a user and a matched student for
// a course ('study_sessions' table)
type StudySession struct {
	ID               int64     `json:"sessionid" db:"sessionid"`
	UserID           int64     `json:"userid" db:"userid"`
	MatchedStudentID int64     `json:"matched_student_id" db:"matched_student_id"`
	CourseID         int64     `json:"course_id" db:"course_id"`
	ScheduledAt      time.Time `json:"scheduled_at" db:"scheduled_at"`
	DurationMinutes  int       `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Effectiveness is post-session feedback ('effectiveness' table), the
// input to the matching success-rate metric
type Effectiveness struct {
	SessionID     int64 `json:"sessionid" db:"sessionid"`
	Rating        int   `json:"rating" db:"rating"`
	WasSuccessful bool  `json:"was_successful" db:"was_successful"`
}
