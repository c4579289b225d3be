package services

import (
	"context"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/logger"
)

// LearningStyleService serves the read-only learning style endpoints.
// These endpoints never fail toward the dashboard: a missing row or a
// store error both produce the zero-value default, the error only goes
// to the log.
type LearningStyleService interface {
	GetDistribution(ctx context.Context, userID int64) *models.StyleDistribution
	GetProfile(ctx context.Context, userID int64) *models.StyleProfile
	GetTechniques(ctx context.Context, style string) []*models.StudyTechnique
	GetTools(ctx context.Context, style string) []*models.StudyTool
	GetGroupRecommendations(ctx context.Context, style string) []*models.GroupRecommendation
}

// learningStyleServiceImpl implements the LearningStyleService interface
type learningStyleServiceImpl struct {
	styleRepo *repositories.LearningStyleRepository
}

// NewLearningStyleService creates a new learning style service instance
func NewLearningStyleService(styleRepo *repositories.LearningStyleRepository) LearningStyleService {
	return &learningStyleServiceImpl{
		styleRepo: styleRepo,
	}
}

// GetDistribution returns stored percentages or zeroed defaults
func (s *learningStyleServiceImpl) GetDistribution(ctx context.Context, userID int64) *models.StyleDistribution {
	dist, err := s.styleRepo.GetDistribution(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("Falling back to default style distribution")
		return &models.StyleDistribution{}
	}
	return dist
}

// GetProfile returns the stored profile or empty strings
func (s *learningStyleServiceImpl) GetProfile(ctx context.Context, userID int64) *models.StyleProfile {
	profile, err := s.styleRepo.GetProfile(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("Falling back to empty style profile")
		return &models.StyleProfile{}
	}
	return profile
}

// GetTechniques returns the reference techniques for a style, or an
// empty list
func (s *learningStyleServiceImpl) GetTechniques(ctx context.Context, style string) []*models.StudyTechnique {
	techniques, err := s.styleRepo.GetTechniques(ctx, style)
	if err != nil {
		logger.Warn().Err(err).Str("style", style).Msg("Falling back to empty technique list")
		return []*models.StudyTechnique{}
	}
	if techniques == nil {
		return []*models.StudyTechnique{}
	}
	return techniques
}

// GetTools returns the reference tools for a style, or an empty list
func (s *learningStyleServiceImpl) GetTools(ctx context.Context, style string) []*models.StudyTool {
	tools, err := s.styleRepo.GetTools(ctx, style)
	if err != nil {
		logger.Warn().Err(err).Str("style", style).Msg("Falling back to empty tool list")
		return []*models.StudyTool{}
	}
	if tools == nil {
		return []*models.StudyTool{}
	}
	return tools
}

// GetGroupRecommendations returns the reference recommendations for a
// style, or an empty list
func (s *learningStyleServiceImpl) GetGroupRecommendations(ctx context.Context, style string) []*models.GroupRecommendation {
	recs, err := s.styleRepo.GetGroupRecommendations(ctx, style)
	if err != nil {
		logger.Warn().Err(err).Str("style", style).Msg("Falling back to empty recommendation list")
		return []*models.GroupRecommendation{}
	}
	if recs == nil {
		return []*models.GroupRecommendation{}
	}
	return recs
}
