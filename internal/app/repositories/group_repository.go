package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/db"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/dberrors"
)

// GroupRepository handles database operations for study groups and
// their memberships
type GroupRepository struct {
	db db.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(pool db.Pool) *GroupRepository {
	return &GroupRepository{
		db: pool,
	}
}

// GetAll retrieves all study groups ordered by name
func (r *GroupRepository) GetAll(ctx context.Context) ([]*models.StudyGroup, error) {
	query := `
		SELECT groupid, group_name
		FROM study_groups
		ORDER BY group_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.StudyGroup
	for rows.Next() {
		var group models.StudyGroup
		if err := rows.Scan(&group.GroupID, &group.GroupName); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// GetForUser retrieves the groups a user is a member of
func (r *GroupRepository) GetForUser(ctx context.Context, userID int64) ([]*models.StudyGroup, error) {
	query := `
		SELECT sg.groupid, sg.group_name
		FROM group_students gs
		JOIN study_groups sg ON gs.groupid = sg.groupid
		WHERE gs.studentid = $1
		ORDER BY sg.group_name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.StudyGroup
	for rows.Next() {
		var group models.StudyGroup
		if err := rows.Scan(&group.GroupID, &group.GroupName); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// CreateWithCreator inserts a new group and its creator's membership in
// one transaction
func (r *GroupRepository) CreateWithCreator(ctx context.Context, group *models.StudyGroup, creatorID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO study_groups (group_name)
			VALUES ($1)
			RETURNING groupid`,
			group.GroupName,
		).Scan(&group.GroupID)
		if err != nil {
			return fmt.Errorf("error creating study group: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO group_students (groupid, studentid)
			VALUES ($1, $2)`,
			group.GroupID, creatorID); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error adding group creator: %w", err)
		}
		return nil
	})
}

// Rename updates a group's name
func (r *GroupRepository) Rename(ctx context.Context, groupID int64, name string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE study_groups SET group_name = $1
		WHERE groupid = $2`,
		name, groupID)
	if err != nil {
		return fmt.Errorf("error updating study group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// Delete removes a group and its memberships in one transaction.
// Memberships go first so no orphaned rows reference a missing group.
func (r *GroupRepository) Delete(ctx context.Context, groupID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM group_students WHERE groupid = $1`, groupID); err != nil {
			return fmt.Errorf("error deleting group memberships: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `
			DELETE FROM study_groups WHERE groupid = $1`, groupID)
		if err != nil {
			return fmt.Errorf("error deleting study group: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrGroupNotFound
		}
		return nil
	})
}

// AddMember adds a user to a group. Returns false without error when the
// user is already a member.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO group_students (groupid, studentid)
		VALUES ($1, $2)
		ON CONFLICT (groupid, studentid) DO NOTHING`,
		groupID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, r.classifyMissingPair(ctx, groupID, userID)
		}
		return false, fmt.Errorf("error joining group: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// RemoveMember removes a user from a group
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM group_students
		WHERE groupid = $1 AND studentid = $2`,
		groupID, userID)
	if err != nil {
		return fmt.Errorf("error leaving group: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	if err := r.classifyMissingPair(ctx, groupID, userID); err != nil {
		return err
	}
	return apperrors.ErrNotGroupMember
}

// classifyMissingPair distinguishes a missing group from a missing user
// when a membership statement touches no rows
func (r *GroupRepository) classifyMissingPair(ctx context.Context, groupID, userID int64) error {
	var groupExists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM study_groups WHERE groupid = $1)`, groupID).Scan(&groupExists); err != nil {
		return fmt.Errorf("error checking group existence: %w", err)
	}
	if !groupExists {
		return apperrors.ErrGroupNotFound
	}

	var userExists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE userid = $1)`, userID).Scan(&userExists); err != nil {
		return fmt.Errorf("error checking user existence: %w", err)
	}
	if !userExists {
		return apperrors.ErrUserNotFound
	}
	return nil
}
