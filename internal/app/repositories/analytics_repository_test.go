package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/repositories"
)

func TestAnalyticsRepository_TotalMatchesSince(t *testing.T) {
	since := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty table counts zero", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		repo := repositories.NewAnalyticsRepository(mock)
		total, err := repo.TotalMatchesSince(context.Background(), since)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts window matches", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(17)))

		repo := repositories.NewAnalyticsRepository(mock)
		total, err := repo.TotalMatchesSince(context.Background(), since)

		require.NoError(t, err)
		assert.Equal(t, int64(17), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsRepository_RetentionCounts(t *testing.T) {
	since := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	mock := newMockPool(t)
	mock.ExpectQuery("FROM users").
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count", "count"}).AddRow(int64(40), int64(30)))

	repo := repositories.NewAnalyticsRepository(mock)
	total, retained, err := repo.RetentionCounts(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, int64(40), total)
	assert.Equal(t, int64(30), retained)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_SessionSuccessCounts(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("FROM effectiveness").
		WillReturnRows(pgxmock.NewRows([]string{"count", "count"}).AddRow(int64(10), int64(8)))

	repo := repositories.NewAnalyticsRepository(mock)
	rated, successful, err := repo.SessionSuccessCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), rated)
	assert.Equal(t, int64(8), successful)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_MajorDistribution(t *testing.T) {
	mock := newMockPool(t)
	rows := pgxmock.NewRows([]string{"major", "count"}).
		AddRow("Computer Science", int64(12)).
		AddRow("Undeclared", int64(4))
	mock.ExpectQuery("GROUP BY").WillReturnRows(rows)

	repo := repositories.NewAnalyticsRepository(mock)
	entries, err := repo.MajorDistribution(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Computer Science", entries[0].Label)
	assert.Equal(t, int64(12), entries[0].Count)
	assert.Equal(t, "Undeclared", entries[1].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_CohortSessions(t *testing.T) {
	mock := newMockPool(t)
	avg := 75.0
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).AddRow(int64(6), &avg))
	mock.ExpectQuery("FROM study_sessions").
		WillReturnRows(pgxmock.NewRows([]string{"weekday", "count"}).
			AddRow("Mon", int64(2)).
			AddRow("Wed", int64(4)))

	repo := repositories.NewAnalyticsRepository(mock)
	stats, err := repo.CohortSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalSessions)
	assert.Equal(t, 75.0, stats.AvgDurationMinutes)
	assert.Equal(t, int64(4), stats.ByWeekday["Wed"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
