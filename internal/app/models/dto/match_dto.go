package dto

import "github.com/studybuddy/backend/internal/app/models"

// RecordMatchRequest records a match between two users (POST /matches)
type RecordMatchRequest struct {
	User1ID *int64 `json:"user1_id" binding:"required"`
	User2ID *int64 `json:"user2_id" binding:"required"`
}

// UpdateMatchRequest updates an existing match's status
type UpdateMatchRequest struct {
	Status string `json:"status" binding:"required"`
}

// StudyPartnersRequest asks for partner candidates in a course
type StudyPartnersRequest struct {
	CourseID *int64 `json:"course_id" binding:"required"`
}

// StudyMatchRequest asks for the best-scoring partner in a course and
// records the resulting session + match (POST /study/match)
type StudyMatchRequest struct {
	UserID   *int64 `json:"user_id" binding:"required"`
	CourseID *int64 `json:"course_id" binding:"required"`
}

// StudyMatchResponse reports the created pairing
type StudyMatchResponse struct {
	Message   string               `json:"message"`
	SessionID int64                `json:"session_id"`
	Partner   *models.StudyPartner `json:"partner"`
}

// SessionFeedbackRequest records post-session effectiveness feedback
type SessionFeedbackRequest struct {
	Rating        *int  `json:"rating" binding:"required,min=1,max=5"`
	WasSuccessful *bool `json:"was_successful" binding:"required"`
}
