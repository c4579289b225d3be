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

// ResourceRepository handles database operations for study resources
// and their user links
type ResourceRepository struct {
	db db.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(pool db.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: pool,
	}
}

// ResourceUpdate carries the optional fields of a resource update
type ResourceUpdate struct {
	Link *string
	Type *string
}

// HasFields reports whether the update touches at least one column
func (u *ResourceUpdate) HasFields() bool {
	return u.Link != nil || u.Type != nil
}

// GetForUser retrieves all resources linked to a user
func (r *ResourceRepository) GetForUser(ctx context.Context, userID int64) ([]*models.Resource, error) {
	query := `
		SELECT r.resourceid, r.resource_link, r.resource_type
		FROM resources r
		JOIN user_resources ur ON r.resourceid = ur.resourceid
		WHERE ur.userid = $1
		ORDER BY r.resourceid
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		var resource models.Resource
		if err := rows.Scan(&resource.ID, &resource.Link, &resource.Type); err != nil {
			return nil, err
		}
		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}

// AddForUser inserts a resource and links it to the user in one
// transaction
func (r *ResourceRepository) AddForUser(ctx context.Context, userID int64, resource *models.Resource) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO resources (resource_link, resource_type)
			VALUES ($1, $2)
			RETURNING resourceid`,
			resource.Link, resource.Type,
		).Scan(&resource.ID)
		if err != nil {
			return fmt.Errorf("error creating resource: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO user_resources (userid, resourceid)
			VALUES ($1, $2)`,
			userID, resource.ID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error linking resource: %w", err)
		}
		return nil
	})
}

// Update applies a partial update and returns the updated row
func (r *ResourceRepository) Update(ctx context.Context, id int64, update *ResourceUpdate) (*models.Resource, error) {
	setClauses := make([]string, 0, 2)
	params := make([]any, 0, 3)

	if update.Link != nil {
		params = append(params, *update.Link)
		setClauses = append(setClauses, fmt.Sprintf("resource_link = $%d", len(params)))
	}
	if update.Type != nil {
		params = append(params, *update.Type)
		setClauses = append(setClauses, fmt.Sprintf("resource_type = $%d", len(params)))
	}

	if len(setClauses) == 0 {
		return nil, apperrors.ErrValidationFailed
	}

	params = append(params, id)
	query := fmt.Sprintf(`
		UPDATE resources SET %s
		WHERE resourceid = $%d
		RETURNING resourceid, resource_link, resource_type`,
		strings.Join(setClauses, ", "), len(params))

	var resource models.Resource
	err := r.db.QueryRow(ctx, query, params...).Scan(
		&resource.ID,
		&resource.Link,
		&resource.Type,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudyResourceNotFound
		}
		return nil, fmt.Errorf("error updating resource: %w", err)
	}

	return &resource, nil
}

// Delete removes a resource and its user links in one transaction
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM user_resources WHERE resourceid = $1`, id); err != nil {
			return fmt.Errorf("error deleting resource links: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			DELETE FROM resources WHERE resourceid = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting resource: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudyResourceNotFound
		}
		return nil
	})
}
