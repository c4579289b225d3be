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

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db db.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool db.Pool) *AdminRepository {
	return &AdminRepository{
		db: pool,
	}
}

// AdminUpdate carries the optional fields of an admin update
type AdminUpdate struct {
	Name  *string
	Email *string
	Role  *string
}

// HasFields reports whether the update touches at least one column
func (u *AdminUpdate) HasFields() bool {
	return u.Name != nil || u.Email != nil || u.Role != nil
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (name, email, role)
		VALUES ($1, $2, $3)
		RETURNING adminid`,
		admin.Name, admin.Email, admin.Role,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetAll retrieves all admin accounts
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT adminid, name, email, role
		FROM admins
		ORDER BY adminid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Role); err != nil {
			return nil, err
		}
		admins = append(admins, &admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// Update applies a partial update and returns the updated row
func (r *AdminRepository) Update(ctx context.Context, id int64, update *AdminUpdate) (*models.Admin, error) {
	setClauses := make([]string, 0, 3)
	params := make([]any, 0, 4)

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
	if update.Role != nil {
		appendClause("role", *update.Role)
	}

	if len(setClauses) == 0 {
		return nil, apperrors.ErrValidationFailed
	}

	params = append(params, id)
	query := fmt.Sprintf(`
		UPDATE admins SET %s
		WHERE adminid = $%d
		RETURNING adminid, name, email, role`,
		strings.Join(setClauses, ", "), len(params))

	var admin models.Admin
	err := r.db.QueryRow(ctx, query, params...).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error updating admin: %w", err)
	}

	return &admin, nil
}

// Delete removes an admin account
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE adminid = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}

// Exists checks whether an admin with the given ID exists
func (r *AdminRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE adminid = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
