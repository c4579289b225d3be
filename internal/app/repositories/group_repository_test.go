package repositories_test

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
)

func TestGroupRepository_CreateWithCreator(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO study_groups").
		WithArgs("Algorithms Crew").
		WillReturnRows(pgxmock.NewRows([]string{"groupid"}).AddRow(int64(3)))
	mock.ExpectExec("INSERT INTO group_students").
		WithArgs(int64(3), int64(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := repositories.NewGroupRepository(mock)
	group := &models.StudyGroup{GroupName: "Algorithms Crew"}

	require.NoError(t, repo.CreateWithCreator(context.Background(), group, 1))
	assert.Equal(t, int64(3), group.GroupID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepository_Rename(t *testing.T) {
	t.Run("unknown group", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE study_groups SET group_name").
			WithArgs("New Name", int64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repositories.NewGroupRepository(mock)
		err := repo.Rename(context.Background(), 404, "New Name")

		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_Delete(t *testing.T) {
	t.Run("memberships removed in same transaction", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_students").
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 4))
		mock.ExpectExec("DELETE FROM study_groups").
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		repo := repositories.NewGroupRepository(mock)
		require.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown group rolls back", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_students").
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM study_groups").
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		repo := repositories.NewGroupRepository(mock)
		err := repo.Delete(context.Background(), 404)

		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_AddMember(t *testing.T) {
	t.Run("new membership", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("INSERT INTO group_students").
			WithArgs(int64(3), int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := repositories.NewGroupRepository(mock)
		added, err := repo.AddMember(context.Background(), 3, 1)

		require.NoError(t, err)
		assert.True(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate join is not an error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("INSERT INTO group_students").
			WithArgs(int64(3), int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))

		repo := repositories.NewGroupRepository(mock)
		added, err := repo.AddMember(context.Background(), 3, 1)

		require.NoError(t, err)
		assert.False(t, added)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_RemoveMember(t *testing.T) {
	t.Run("member removed", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("DELETE FROM group_students").
			WithArgs(int64(3), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := repositories.NewGroupRepository(mock)
		assert.NoError(t, repo.RemoveMember(context.Background(), 3, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing group beats missing membership", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("DELETE FROM group_students").
			WithArgs(int64(404), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(404)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		repo := repositories.NewGroupRepository(mock)
		err := repo.RemoveMember(context.Background(), 404, 1)

		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("membership missing with group and user present", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("DELETE FROM group_students").
			WithArgs(int64(3), int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		repo := repositories.NewGroupRepository(mock)
		err := repo.RemoveMember(context.Background(), 3, 1)

		assert.ErrorIs(t, err, apperrors.ErrNotGroupMember)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
