package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
)

func TestMatchRepository_CreatePair(t *testing.T) {
	t.Run("new pair records history", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO matched_with").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO match_history").
			WithArgs(int64(1), int64(2), models.MatchEventCreated).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := repositories.NewMatchRepository(mock)
		created, err := repo.CreatePair(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing pair skips history", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO matched_with").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectCommit()

		repo := repositories.NewMatchRepository(mock)
		created, err := repo.CreatePair(context.Background(), 1, 2)

		require.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO matched_with").
			WithArgs(int64(1), int64(999)).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()

		repo := repositories.NewMatchRepository(mock)
		_, err := repo.CreatePair(context.Background(), 1, 999)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMatchRepository_UpdateStatus(t *testing.T) {
	t.Run("pair absent", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE matched_with SET status").
			WithArgs("active", int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repositories.NewMatchRepository(mock)
		err := repo.UpdateStatus(context.Background(), 1, 2, "active")

		assert.ErrorIs(t, err, apperrors.ErrMatchNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair present", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("UPDATE matched_with SET status").
			WithArgs("inactive", int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := repositories.NewMatchRepository(mock)
		assert.NoError(t, repo.UpdateStatus(context.Background(), 1, 2, "inactive"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMatchRepository_DeletePair(t *testing.T) {
	t.Run("records deletion event", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM matched_with").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO match_history").
			WithArgs(int64(1), int64(2), models.MatchEventDeleted).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		repo := repositories.NewMatchRepository(mock)
		require.NoError(t, repo.DeletePair(context.Background(), 1, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pair absent", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM matched_with").
			WithArgs(int64(1), int64(2)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		repo := repositories.NewMatchRepository(mock)
		err := repo.DeletePair(context.Background(), 1, 2)

		assert.ErrorIs(t, err, apperrors.ErrMatchNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMatchRepository_FindBestPartner(t *testing.T) {
	t.Run("returns top scored candidate", func(t *testing.T) {
		mock := newMockPool(t)
		rows := pgxmock.NewRows([]string{"userid", "name", "email", "learning_style", "availability", "score"}).
			AddRow(int64(5), "Carol", "carol@example.com", strPtr("visual"), int64Ptr(6), 100)
		mock.ExpectQuery("SELECT u.userid, u.name, u.email, u.learning_style, u.availability").
			WithArgs(int64(1), int64(3)).
			WillReturnRows(rows)

		repo := repositories.NewMatchRepository(mock)
		partner, err := repo.FindBestPartner(context.Background(), 1, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(5), partner.UserID)
		assert.Equal(t, 100, partner.Score)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no candidates", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT u.userid, u.name, u.email, u.learning_style, u.availability").
			WithArgs(int64(1), int64(3)).
			WillReturnError(pgx.ErrNoRows)

		repo := repositories.NewMatchRepository(mock)
		_, err := repo.FindBestPartner(context.Background(), 1, 3)

		assert.ErrorIs(t, err, apperrors.ErrNoSuitableMatch)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMatchRepository_FindStudyPartners(t *testing.T) {
	mock := newMockPool(t)
	rows := pgxmock.NewRows([]string{"userid", "name", "email", "learning_style", "availability", "score"}).
		AddRow(int64(5), "Carol", "carol@example.com", strPtr("visual"), int64Ptr(6), 100).
		AddRow(int64(8), "Dave", "dave@example.com", nil, nil, 50)
	mock.ExpectQuery("SELECT u.userid, u.name, u.email, u.learning_style, u.availability").
		WithArgs(int64(1), int64(3)).
		WillReturnRows(rows)

	repo := repositories.NewMatchRepository(mock)
	partners, err := repo.FindStudyPartners(context.Background(), 1, 3)

	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, 100, partners[0].Score)
	assert.Equal(t, 50, partners[1].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_RecordSessionAndMatch(t *testing.T) {
	scheduledAt := time.Date(2026, 8, 2, 14, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)

	mock := newMockPool(t)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO study_sessions").
		WithArgs(int64(1), int64(5), int64(3), scheduledAt, 60).
		WillReturnRows(pgxmock.NewRows([]string{"sessionid", "created_at"}).AddRow(int64(11), createdAt))
	mock.ExpectExec("INSERT INTO matched_with").
		WithArgs(int64(1), int64(5)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO match_history").
		WithArgs(int64(1), int64(5), models.MatchEventCreated).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := repositories.NewMatchRepository(mock)
	session := &models.StudySession{
		UserID:           1,
		MatchedStudentID: 5,
		CourseID:         3,
		ScheduledAt:      scheduledAt,
		DurationMinutes:  60,
	}

	require.NoError(t, repo.RecordSessionAndMatch(context.Background(), session, 1, 5))
	assert.Equal(t, int64(11), session.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchRepository_RecordFeedback(t *testing.T) {
	t.Run("upserts feedback", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("INSERT INTO effectiveness").
			WithArgs(int64(11), 4, true).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := repositories.NewMatchRepository(mock)
		err := repo.RecordFeedback(context.Background(), &models.Effectiveness{
			SessionID:     11,
			Rating:        4,
			WasSuccessful: true,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown session", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectExec("INSERT INTO effectiveness").
			WithArgs(int64(404), 4, true).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		repo := repositories.NewMatchRepository(mock)
		err := repo.RecordFeedback(context.Background(), &models.Effectiveness{
			SessionID:     404,
			Rating:        4,
			WasSuccessful: true,
		})

		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
