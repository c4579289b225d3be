package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/services"
)

func newAnalyticsService(t *testing.T) (services.AnalyticsService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return services.NewAnalyticsService(repositories.NewAnalyticsRepository(mock)), mock
}

func TestAnalyticsService_TotalMatches(t *testing.T) {
	svc, mock := newAnalyticsService(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))

	resp, err := svc.TotalMatches(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.TotalMatches)
	assert.Equal(t, "Last 30 days", resp.TimePeriod)
	assert.Equal(t, "success", resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsService_Retention(t *testing.T) {
	t.Run("rounds to one decimal", func(t *testing.T) {
		svc, mock := newAnalyticsService(t)
		mock.ExpectQuery("FROM users").
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"total", "retained"}).
				AddRow(int64(3), int64(2)))

		resp, err := svc.Retention(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 66.7, resp.RetentionRate)
		assert.Equal(t, "+5%", resp.RetentionChange)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("no users yields zero rate", func(t *testing.T) {
		svc, mock := newAnalyticsService(t)
		mock.ExpectQuery("FROM users").
			WithArgs(pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"total", "retained"}).
				AddRow(int64(0), int64(0)))

		resp, err := svc.Retention(context.Background())

		require.NoError(t, err)
		assert.Zero(t, resp.RetentionRate)
	})
}

func TestAnalyticsService_MatchingSuccessRate(t *testing.T) {
	t.Run("share of rated sessions", func(t *testing.T) {
		svc, mock := newAnalyticsService(t)
		mock.ExpectQuery("FROM effectiveness").
			WillReturnRows(pgxmock.NewRows([]string{"rated", "successful"}).
				AddRow(int64(8), int64(6)))

		resp, err := svc.MatchingSuccessRate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 75.0, resp.SuccessRate)
		assert.Equal(t, 5.0, resp.Change)
	})

	t.Run("no feedback yields zero rate", func(t *testing.T) {
		svc, mock := newAnalyticsService(t)
		mock.ExpectQuery("FROM effectiveness").
			WillReturnRows(pgxmock.NewRows([]string{"rated", "successful"}).
				AddRow(int64(0), int64(0)))

		resp, err := svc.MatchingSuccessRate(context.Background())

		require.NoError(t, err)
		assert.Zero(t, resp.SuccessRate)
	})
}

func TestAnalyticsService_AvgMatchTime(t *testing.T) {
	svc, mock := newAnalyticsService(t)
	avg := 2.3456
	mock.ExpectQuery("FROM matched_with m").
		WillReturnRows(pgxmock.NewRows([]string{"avg"}).AddRow(&avg))

	resp, err := svc.AvgMatchTime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2.3, resp.AvgDays)
	assert.Equal(t, -0.3, resp.Change)
	assert.Equal(t, "success", resp.Status)
}

func TestAnalyticsService_RecentMatches(t *testing.T) {
	svc, mock := newAnalyticsService(t)
	matched := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM matched_with m").
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"pair", "course", "score", "match_date"}).
			AddRow("Alice & Bob", "Calculus", 100, matched))

	resp, err := svc.RecentMatches(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "Alice & Bob", resp.Matches[0].Pair)
	assert.Equal(t, "100%", resp.Matches[0].Compatibility)
	assert.Equal(t, "2024-03-15", resp.Matches[0].MatchDate)
}

func TestAnalyticsService_CohortAnalytics_OrdersWeekdays(t *testing.T) {
	svc, mock := newAnalyticsService(t)
	avg := 52.35
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count", "avg"}).
			AddRow(int64(7), &avg))
	mock.ExpectQuery("GROUP BY 1").
		WillReturnRows(pgxmock.NewRows([]string{"weekday", "count"}).
			AddRow("Fri", int64(2)).
			AddRow("Mon", int64(5)))

	resp, err := svc.CohortAnalytics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Sessions.TotalSessions)
	assert.Equal(t, 52.4, resp.Sessions.AvgDurationMinutes)
	require.Len(t, resp.Sessions.ByWeekday, 2)
	assert.Equal(t, "Mon", resp.Sessions.ByWeekday[0].Weekday)
	assert.Equal(t, "Fri", resp.Sessions.ByWeekday[1].Weekday)
	assert.NoError(t, mock.ExpectationsWereMet())
}
