package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/db"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/dberrors"
)

// MatchRepository handles database operations for matches, study
// partner scoring, and study sessions
type MatchRepository struct {
	db db.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(pool db.Pool) *MatchRepository {
	return &MatchRepository{
		db: pool,
	}
}

// studyPartnerQuery scores every eligible candidate for a course:
// 50 base points, +25 when the availability bitmasks share a set bit,
// +25 when learning styles are equal. Eligible means enrolled in the
// course, not the requester, not an existing session partner, and not
// already matched.
const studyPartnerQuery = `
	SELECT u.userid, u.name, u.email, u.learning_style, u.availability,
		50
		+ CASE WHEN (COALESCE(u.availability, 0) & COALESCE(me.availability, 0)) > 0 THEN 25 ELSE 0 END
		+ CASE WHEN u.learning_style IS NOT NULL AND u.learning_style = me.learning_style THEN 25 ELSE 0 END
		AS score
	FROM users u
	JOIN enrollments e ON u.userid = e.userid
	CROSS JOIN (
		SELECT availability, learning_style FROM users WHERE userid = $1
	) me
	WHERE e.courseid = $2
	AND u.userid != $1
	AND u.userid NOT IN (
		SELECT ss.matched_student_id
		FROM study_sessions ss
		WHERE ss.userid = $1
	)
	AND u.userid NOT IN (
		SELECT CASE WHEN mw.user1_id = $1 THEN mw.user2_id ELSE mw.user1_id END
		FROM matched_with mw
		WHERE mw.user1_id = $1 OR mw.user2_id = $1
	)
	ORDER BY score DESC`

// CreatePair inserts a canonical match pair. Returns true when a new row
// was created, false when the pair already existed. Callers must pass
// user1 < user2.
func (r *MatchRepository) CreatePair(ctx context.Context, user1ID, user2ID int64) (bool, error) {
	var created bool
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO matched_with (user1_id, user2_id)
			VALUES ($1, $2)
			ON CONFLICT (user1_id, user2_id) DO NOTHING`,
			user1ID, user2ID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error recording match: %w", err)
		}

		created = cmdTag.RowsAffected() > 0
		if !created {
			return nil
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO match_history (user1_id, user2_id, event)
			VALUES ($1, $2, $3)`,
			user1ID, user2ID, models.MatchEventCreated); err != nil {
			return fmt.Errorf("error recording match history: %w", err)
		}
		return nil
	})
	return created, err
}

// UpdateStatus updates the status of an existing canonical pair
func (r *MatchRepository) UpdateStatus(ctx context.Context, user1ID, user2ID int64, status string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE matched_with SET status = $1
		WHERE user1_id = $2 AND user2_id = $3`,
		status, user1ID, user2ID)
	if err != nil {
		return fmt.Errorf("error updating match: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}

// DeletePair removes a canonical pair and records the deletion
func (r *MatchRepository) DeletePair(ctx context.Context, user1ID, user2ID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			DELETE FROM matched_with
			WHERE user1_id = $1 AND user2_id = $2`,
			user1ID, user2ID)
		if err != nil {
			return fmt.Errorf("error deleting match: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrMatchNotFound
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO match_history (user1_id, user2_id, event)
			VALUES ($1, $2, $3)`,
			user1ID, user2ID, models.MatchEventDeleted); err != nil {
			return fmt.Errorf("error recording match history: %w", err)
		}
		return nil
	})
}

// GetPartners returns the distinct partners matched with the given user
func (r *MatchRepository) GetPartners(ctx context.Context, userID int64) ([]*models.MatchPartner, error) {
	query := `
		SELECT DISTINCT
			CASE WHEN mw.user1_id = $1 THEN u2.name ELSE u1.name END AS matched_user_name,
			CASE WHEN mw.user1_id = $1 THEN u2.userid ELSE u1.userid END AS matched_user_id
		FROM matched_with mw
		JOIN users u1 ON mw.user1_id = u1.userid
		JOIN users u2 ON mw.user2_id = u2.userid
		WHERE mw.user1_id = $1 OR mw.user2_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*models.MatchPartner
	for rows.Next() {
		var partner models.MatchPartner
		if err := rows.Scan(&partner.Name, &partner.UserID); err != nil {
			return nil, err
		}
		partners = append(partners, &partner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

// GetPotentialMatches returns up to limit random users, excluding the
// requester and anyone already matched with them
func (r *MatchRepository) GetPotentialMatches(ctx context.Context, userID int64, limit int) ([]*models.User, error) {
	query := `
		SELECT u.userid, u.name, u.email, u.major, u.learning_style, u.availability
		FROM users u
		WHERE u.userid != $1
		AND u.userid NOT IN (
			SELECT CASE WHEN mw.user1_id = $1 THEN mw.user2_id ELSE mw.user1_id END
			FROM matched_with mw
			WHERE mw.user1_id = $1 OR mw.user2_id = $1
		)
		ORDER BY RANDOM()
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Major,
			&user.LearningStyle,
			&user.Availability,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// FindStudyPartners returns every scored candidate for the course
func (r *MatchRepository) FindStudyPartners(ctx context.Context, userID, courseID int64) ([]*models.StudyPartner, error) {
	rows, err := r.db.Query(ctx, studyPartnerQuery, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []*models.StudyPartner
	for rows.Next() {
		var p models.StudyPartner
		if err := rows.Scan(
			&p.UserID,
			&p.Name,
			&p.Email,
			&p.LearningStyle,
			&p.Availability,
			&p.Score,
		); err != nil {
			return nil, err
		}
		partners = append(partners, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}

// FindBestPartner returns the top-scoring candidate for the course.
// Ties fall to the store's row order.
func (r *MatchRepository) FindBestPartner(ctx context.Context, userID, courseID int64) (*models.StudyPartner, error) {
	var p models.StudyPartner
	err := r.db.QueryRow(ctx, studyPartnerQuery+`
	LIMIT 1`, userID, courseID).Scan(
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.LearningStyle,
		&p.Availability,
		&p.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoSuitableMatch
		}
		return nil, fmt.Errorf("error finding best partner: %w", err)
	}
	return &p, nil
}

// RecordSessionAndMatch creates a study session and the canonical match
// row for the pair in one transaction. The match insert is idempotent.
// Callers must pass user1 < user2 in the pair arguments.
func (r *MatchRepository) RecordSessionAndMatch(ctx context.Context, session *models.StudySession, user1ID, user2ID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO study_sessions (userid, matched_student_id, course_id, scheduled_at, duration_minutes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING sessionid, created_at`,
			session.UserID, session.MatchedStudentID, session.CourseID,
			session.ScheduledAt, session.DurationMinutes,
		).Scan(&session.ID, &session.CreatedAt)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error creating study session: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO matched_with (user1_id, user2_id)
			VALUES ($1, $2)
			ON CONFLICT (user1_id, user2_id) DO NOTHING`,
			user1ID, user2ID)
		if err != nil {
			return fmt.Errorf("error recording match: %w", err)
		}

		if cmdTag.RowsAffected() > 0 {
			if _, err := tx.Exec(ctx, `
				INSERT INTO match_history (user1_id, user2_id, event)
				VALUES ($1, $2, $3)`,
				user1ID, user2ID, models.MatchEventCreated); err != nil {
				return fmt.Errorf("error recording match history: %w", err)
			}
		}
		return nil
	})
}

// RecordFeedback upserts post-session effectiveness feedback
func (r *MatchRepository) RecordFeedback(ctx context.Context, feedback *models.Effectiveness) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO effectiveness (sessionid, rating, was_successful)
		VALUES ($1, $2, $3)
		ON CONFLICT (sessionid) DO UPDATE
		SET rating = EXCLUDED.rating, was_successful = EXCLUDED.was_successful`,
		feedback.SessionID, feedback.Rating, feedback.WasSuccessful)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSessionNotFound
		}
		return fmt.Errorf("error recording session feedback: %w", err)
	}
	return nil
}
