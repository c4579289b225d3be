package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/studybuddy/backend/internal/db"
)

// AnalyticsRepository runs the read-only aggregate queries behind the
// dashboard endpoints
type AnalyticsRepository struct {
	db db.Pool
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(pool db.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: pool,
	}
}

// TotalMatchesSince counts matches created after the given time
func (r *AnalyticsRepository) TotalMatchesSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM matched_with WHERE match_date >= $1`, since).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting matches: %w", err)
	}
	return total, nil
}

// RetentionCounts returns the total user count and the count of users
// whose last login falls after the given time
func (r *AnalyticsRepository) RetentionCounts(ctx context.Context, since time.Time) (total int64, retained int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE last_login >= $1)
		FROM users`, since).Scan(&total, &retained)
	if err != nil {
		return 0, 0, fmt.Errorf("error computing retention: %w", err)
	}
	return total, retained, nil
}

// SessionSuccessCounts returns the number of sessions with recorded
// feedback and the number marked successful
func (r *AnalyticsRepository) SessionSuccessCounts(ctx context.Context) (rated int64, successful int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE was_successful)
		FROM effectiveness`).Scan(&rated, &successful)
	if err != nil {
		return 0, 0, fmt.Errorf("error computing success rate: %w", err)
	}
	return rated, successful, nil
}

// AvgMatchToSessionDays returns the average number of days between a
// match being recorded and the pair's first study session
func (r *AnalyticsRepository) AvgMatchToSessionDays(ctx context.Context) (float64, error) {
	var avgDays *float64
	err := r.db.QueryRow(ctx, `
		SELECT AVG(EXTRACT(EPOCH FROM (first_session - m.match_date)) / 86400.0)
		FROM matched_with m
		JOIN LATERAL (
			SELECT MIN(s.scheduled_at) AS first_session
			FROM study_sessions s
			WHERE (s.userid = m.user1_id AND s.matched_student_id = m.user2_id)
			   OR (s.userid = m.user2_id AND s.matched_student_id = m.user1_id)
		) fs ON fs.first_session IS NOT NULL
		WHERE fs.first_session >= m.match_date`).Scan(&avgDays)
	if err != nil {
		return 0, fmt.Errorf("error computing average match time: %w", err)
	}
	if avgDays == nil {
		return 0, nil
	}
	return *avgDays, nil
}

// RecentMatch is one row of the recent-matches dashboard panel
type RecentMatch struct {
	Pair          string
	Course        string
	Compatibility int
	MatchDate     time.Time
}

// RecentMatches returns the newest matches with partner names, the
// course the pair shares, and a recomputed compatibility score
func (r *AnalyticsRepository) RecentMatches(ctx context.Context, limit int) ([]*RecentMatch, error) {
	query := `
		SELECT u1.name || ' & ' || u2.name,
		       COALESCE(c.course_name, 'General'),
		       50
		       + CASE WHEN COALESCE(u1.availability, 0) & COALESCE(u2.availability, 0) > 0 THEN 25 ELSE 0 END
		       + CASE WHEN u1.learning_style = u2.learning_style THEN 25 ELSE 0 END,
		       m.match_date
		FROM matched_with m
		JOIN users u1 ON u1.userid = m.user1_id
		JOIN users u2 ON u2.userid = m.user2_id
		LEFT JOIN LATERAL (
			SELECT c.course_name
			FROM enrollments e1
			JOIN enrollments e2 ON e1.courseid = e2.courseid
			JOIN courses c ON c.courseid = e1.courseid
			WHERE e1.userid = m.user1_id AND e2.userid = m.user2_id
			LIMIT 1
		) c ON true
		ORDER BY m.match_date DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*RecentMatch
	for rows.Next() {
		var m RecentMatch
		if err := rows.Scan(&m.Pair, &m.Course, &m.Compatibility, &m.MatchDate); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

// DistributionEntry is one bucket of a group-by count
type DistributionEntry struct {
	Label string
	Count int64
}

// MajorDistribution counts users per major, descending
func (r *AnalyticsRepository) MajorDistribution(ctx context.Context) ([]*DistributionEntry, error) {
	return r.distribution(ctx, `
		SELECT COALESCE(major, 'Undeclared'), COUNT(*)
		FROM users
		GROUP BY COALESCE(major, 'Undeclared')
		ORDER BY COUNT(*) DESC`)
}

// InterestDistribution counts interest rows per interest, descending
func (r *AnalyticsRepository) InterestDistribution(ctx context.Context) ([]*DistributionEntry, error) {
	return r.distribution(ctx, `
		SELECT interest, COUNT(*)
		FROM user_interests
		GROUP BY interest
		ORDER BY COUNT(*) DESC`)
}

func (r *AnalyticsRepository) distribution(ctx context.Context, query string) ([]*DistributionEntry, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*DistributionEntry
	for rows.Next() {
		var entry DistributionEntry
		if err := rows.Scan(&entry.Label, &entry.Count); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// SessionStats aggregates study-session activity
type SessionStats struct {
	TotalSessions      int64
	AvgDurationMinutes float64
	ByWeekday          map[string]int64
}

// CohortSessions returns study-session totals, the average duration,
// and per-weekday counts
func (r *AnalyticsRepository) CohortSessions(ctx context.Context) (*SessionStats, error) {
	stats := &SessionStats{
		ByWeekday: make(map[string]int64),
	}

	var avgDuration *float64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), AVG(duration_minutes)
		FROM study_sessions`).Scan(&stats.TotalSessions, &avgDuration)
	if err != nil {
		return nil, fmt.Errorf("error computing session totals: %w", err)
	}
	if avgDuration != nil {
		stats.AvgDurationMinutes = *avgDuration
	}

	rows, err := r.db.Query(ctx, `
		SELECT TRIM(TO_CHAR(scheduled_at, 'Dy')), COUNT(*)
		FROM study_sessions
		GROUP BY 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var weekday string
		var count int64
		if err := rows.Scan(&weekday, &count); err != nil {
			return nil, err
		}
		stats.ByWeekday[weekday] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
