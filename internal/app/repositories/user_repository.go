package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/db"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/dberrors"
)

// emailConstraint is the unique constraint guarding users.email
const emailConstraint = "users_email_key"

// UserRepository handles database operations for users
type UserRepository struct {
	db db.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool db.Pool) *UserRepository {
	return &UserRepository{
		db: pool,
	}
}

// UserUpdate carries the recognized profile fields of a partial update.
// Nil fields are left untouched.
type UserUpdate struct {
	Name          *string
	Email         *string
	Major         *string
	LearningStyle *string
	Availability  *int64
}

// HasFields reports whether the update touches at least one column
func (u *UserUpdate) HasFields() bool {
	return u.Name != nil || u.Email != nil || u.Major != nil ||
		u.LearningStyle != nil || u.Availability != nil
}

// Create inserts a new user and sets the generated id
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, major, learning_style, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING userid, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password,
		user.Major, user.LearningStyle, user.Availability,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueConstraintViolation(err, emailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id, password excluded
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT userid, name, email, major, learning_style, availability
		FROM users
		WHERE userid = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Major,
		&user.LearningStyle,
		&user.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email including the password hash,
// used by the login path only
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT userid, name, email, password, major, learning_style, availability
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Major,
		&user.LearningStyle,
		&user.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// GetAll retrieves all users, passwords excluded
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT userid, name, email, major, learning_style, availability
		FROM users
		ORDER BY userid
	`

	rows, err := r.db.Query(ctx, query)
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

// Update applies a partial update and returns the updated row
func (r *UserRepository) Update(ctx context.Context, id int64, update *UserUpdate) (*models.User, error) {
	setClauses := make([]string, 0, 5)
	params := make([]any, 0, 6)

	appendClause := func(column string, value any) {
		params = append(params, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(params)))
	}

	if update.Name != nil {
		appendClause("name", *update.Name)
	}
	if update.Email != nil {
		appendClause("email", *update.Email)
	}
	if update.Major != nil {
		appendClause("major", *update.Major)
	}
	if update.LearningStyle != nil {
		appendClause("learning_style", *update.LearningStyle)
	}
	if update.Availability != nil {
		appendClause("availability", *update.Availability)
	}

	if len(setClauses) == 0 {
		return nil, apperrors.ErrValidationFailed
	}

	params = append(params, id)
	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE userid = $%d
		RETURNING userid, name, email, major, learning_style, availability`,
		strings.Join(setClauses, ", "), len(params))

	var user models.User
	err := r.db.QueryRow(ctx, query, params...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Major,
		&user.LearningStyle,
		&user.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueConstraintViolation(err, emailConstraint) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &user, nil
}

// Delete removes a user together with its dependent rows in one
// transaction so no orphaned references survive
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		dependents := []string{
			`DELETE FROM user_interests WHERE userid = $1`,
			`DELETE FROM learning_style_distribution WHERE userid = $1`,
			`DELETE FROM learning_style_profile WHERE userid = $1`,
			`DELETE FROM enrollments WHERE userid = $1`,
			`DELETE FROM group_students WHERE studentid = $1`,
			`DELETE FROM user_resources WHERE userid = $1`,
			`DELETE FROM effectiveness WHERE sessionid IN (
				SELECT sessionid FROM study_sessions WHERE userid = $1 OR matched_student_id = $1)`,
			`DELETE FROM study_sessions WHERE userid = $1 OR matched_student_id = $1`,
			`DELETE FROM match_history WHERE user1_id = $1 OR user2_id = $1`,
			`DELETE FROM matched_with WHERE user1_id = $1 OR user2_id = $1`,
		}
		for _, stmt := range dependents {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("error deleting user dependents: %w", err)
			}
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE userid = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE userid = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// Exists checks whether a user row exists
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE userid = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}
