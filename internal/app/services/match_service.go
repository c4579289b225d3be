package services

import (
	"context"
	"time"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
)

// Defaults applied to auto-scheduled study sessions
const (
	defaultSessionLeadTime = 24 * time.Hour
	defaultSessionMinutes  = 60
)

// MatchService defines the interface for match-related operations
type MatchService interface {
	RecordMatch(ctx context.Context, user1ID, user2ID int64) (created bool, err error)
	UpdateMatchStatus(ctx context.Context, user1ID, user2ID int64, status string) error
	DeleteMatch(ctx context.Context, user1ID, user2ID int64) error
	GetMatchPartners(ctx context.Context, userID int64) ([]*models.MatchPartner, error)
	GetPotentialMatches(ctx context.Context, userID int64) ([]*models.User, error)
	FindStudyPartners(ctx context.Context, userID, courseID int64) ([]*models.StudyPartner, error)
	MatchForStudySession(ctx context.Context, userID, courseID int64) (*models.StudySession, *models.StudyPartner, error)
	RecordSessionFeedback(ctx context.Context, sessionID int64, rating int, wasSuccessful bool) error
}

// matchServiceImpl implements the MatchService interface
type matchServiceImpl struct {
	matchRepo *repositories.MatchRepository
}

// NewMatchService creates a new match service instance
func NewMatchService(matchRepo *repositories.MatchRepository) MatchService {
	return &matchServiceImpl{
		matchRepo: matchRepo,
	}
}

// canonicalPair orders an unordered user pair so the smaller id comes
// first, matching the matched_with table constraint
func canonicalPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// RecordMatch stores a match between two users. The pair is
// canonicalized first, so (a, b) and (b, a) are the same match.
func (s *matchServiceImpl) RecordMatch(ctx context.Context, user1ID, user2ID int64) (bool, error) {
	if user1ID == user2ID {
		return false, apperrors.ErrSelfMatch
	}
	u1, u2 := canonicalPair(user1ID, user2ID)
	return s.matchRepo.CreatePair(ctx, u1, u2)
}

// UpdateMatchStatus changes the status of an existing match
func (s *matchServiceImpl) UpdateMatchStatus(ctx context.Context, user1ID, user2ID int64, status string) error {
	u1, u2 := canonicalPair(user1ID, user2ID)
	return s.matchRepo.UpdateStatus(ctx, u1, u2, status)
}

// DeleteMatch removes an existing match
func (s *matchServiceImpl) DeleteMatch(ctx context.Context, user1ID, user2ID int64) error {
	u1, u2 := canonicalPair(user1ID, user2ID)
	return s.matchRepo.DeletePair(ctx, u1, u2)
}

// GetMatchPartners lists the users matched with the given user
func (s *matchServiceImpl) GetMatchPartners(ctx context.Context, userID int64) ([]*models.MatchPartner, error) {
	return s.matchRepo.GetPartners(ctx, userID)
}

// GetPotentialMatches lists up to 5 random unmatched users
func (s *matchServiceImpl) GetPotentialMatches(ctx context.Context, userID int64) ([]*models.User, error) {
	return s.matchRepo.GetPotentialMatches(ctx, userID, 5)
}

// FindStudyPartners scores candidates enrolled in a course
func (s *matchServiceImpl) FindStudyPartners(ctx context.Context, userID, courseID int64) ([]*models.StudyPartner, error) {
	return s.matchRepo.FindStudyPartners(ctx, userID, courseID)
}

// MatchForStudySession picks the best-scoring partner for the course
// and records a study session plus the match in one transaction
func (s *matchServiceImpl) MatchForStudySession(ctx context.Context, userID, courseID int64) (*models.StudySession, *models.StudyPartner, error) {
	partner, err := s.matchRepo.FindBestPartner(ctx, userID, courseID)
	if err != nil {
		return nil, nil, err
	}

	session := &models.StudySession{
		UserID:           userID,
		MatchedStudentID: partner.UserID,
		CourseID:         courseID,
		ScheduledAt:      time.Now().Add(defaultSessionLeadTime),
		DurationMinutes:  defaultSessionMinutes,
	}

	u1, u2 := canonicalPair(userID, partner.UserID)
	if err := s.matchRepo.RecordSessionAndMatch(ctx, session, u1, u2); err != nil {
		return nil, nil, err
	}

	return session, partner, nil
}

// RecordSessionFeedback upserts effectiveness feedback for a session
func (s *matchServiceImpl) RecordSessionFeedback(ctx context.Context, sessionID int64, rating int, wasSuccessful bool) error {
	feedback := &models.Effectiveness{
		SessionID:     sessionID,
		Rating:        rating,
		WasSuccessful: wasSuccessful,
	}
	return s.matchRepo.RecordFeedback(ctx, feedback)
}
