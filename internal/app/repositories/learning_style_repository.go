package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/db"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
)

// LearningStyleRepository reads learning style profiles and the
// per-style reference tables
type LearningStyleRepository struct {
	db db.Pool
}

// NewLearningStyleRepository creates a new learning style repository
func NewLearningStyleRepository(pool db.Pool) *LearningStyleRepository {
	return &LearningStyleRepository{
		db: pool,
	}
}

// GetDistribution retrieves a user's stored style percentages
func (r *LearningStyleRepository) GetDistribution(ctx context.Context, userID int64) (*models.StyleDistribution, error) {
	var dist models.StyleDistribution
	err := r.db.QueryRow(ctx, `
		SELECT visual_percentage, auditory_percentage,
		       reading_writing_percentage, kinesthetic_percentage
		FROM learning_style_distribution
		WHERE userid = $1`, userID).Scan(
		&dist.VisualPercentage,
		&dist.AuditoryPercentage,
		&dist.ReadingWritingPercentage,
		&dist.KinestheticPercentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return &dist, nil
}

// GetProfile retrieves a user's strengths and growth areas
func (r *LearningStyleRepository) GetProfile(ctx context.Context, userID int64) (*models.StyleProfile, error) {
	var profile models.StyleProfile
	err := r.db.QueryRow(ctx, `
		SELECT strengths, areas_for_growth
		FROM learning_style_profile
		WHERE userid = $1`, userID).Scan(
		&profile.Strengths,
		&profile.AreasForGrowth,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetTechniques retrieves the reference techniques for a style
func (r *LearningStyleRepository) GetTechniques(ctx context.Context, style string) ([]*models.StudyTechnique, error) {
	rows, err := r.db.Query(ctx, `
		SELECT technique_description
		FROM study_techniques
		WHERE learning_style = $1`, style)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techniques []*models.StudyTechnique
	for rows.Next() {
		var t models.StudyTechnique
		if err := rows.Scan(&t.Description); err != nil {
			return nil, err
		}
		techniques = append(techniques, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return techniques, nil
}

// GetTools retrieves the reference tools for a style
func (r *LearningStyleRepository) GetTools(ctx context.Context, style string) ([]*models.StudyTool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tool_name, tool_description
		FROM study_tools
		WHERE learning_style = $1`, style)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []*models.StudyTool
	for rows.Next() {
		var t models.StudyTool
		if err := rows.Scan(&t.Name, &t.Description); err != nil {
			return nil, err
		}
		tools = append(tools, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tools, nil
}

// GetGroupRecommendations retrieves the reference group
// recommendations for a style
func (r *LearningStyleRepository) GetGroupRecommendations(ctx context.Context, style string) ([]*models.GroupRecommendation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recommendation_description
		FROM study_group_recommendations
		WHERE learning_style = $1`, style)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*models.GroupRecommendation
	for rows.Next() {
		var rec models.GroupRecommendation
		if err := rows.Scan(&rec.Description); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}
