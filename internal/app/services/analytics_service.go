package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/repositories"
)

// Reporting window for the dashboard cards
const analyticsWindow = 30 * 24 * time.Hour

// Placeholder deltas carried over from the dashboard contract. The
// source system shipped these fixed values and the charts render them.
const (
	stubRetentionChange   = "+5%"
	stubSuccessRateChange = 5.0
	stubAvgTimeChange     = -0.3
)

const statusSuccess = "success"

// AnalyticsService defines the interface for the dashboard aggregates
type AnalyticsService interface {
	TotalMatches(ctx context.Context) (*dto.TotalMatchesResponse, error)
	Retention(ctx context.Context) (*dto.RetentionResponse, error)
	MatchingSuccessRate(ctx context.Context) (*dto.SuccessRateResponse, error)
	AvgMatchTime(ctx context.Context) (*dto.AvgMatchTimeResponse, error)
	RecentMatches(ctx context.Context) (*dto.RecentMatchesResponse, error)
	MajorDistribution(ctx context.Context) (*dto.MajorDistributionResponse, error)
	InterestDistribution(ctx context.Context) (*dto.InterestDistributionResponse, error)
	CohortAnalytics(ctx context.Context) (*dto.CohortAnalyticsResponse, error)
}

// analyticsServiceImpl implements the AnalyticsService interface
type analyticsServiceImpl struct {
	analyticsRepo *repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(analyticsRepo *repositories.AnalyticsRepository) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// TotalMatches counts matches recorded in the last 30 days
func (s *analyticsServiceImpl) TotalMatches(ctx context.Context) (*dto.TotalMatchesResponse, error) {
	since := time.Now().Add(-analyticsWindow)
	total, err := s.analyticsRepo.TotalMatchesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return &dto.TotalMatchesResponse{
		TotalMatches: total,
		TimePeriod:   "Last 30 days",
		Status:       statusSuccess,
	}, nil
}

// Retention reports the share of users whose last login falls inside
// the reporting window
func (s *analyticsServiceImpl) Retention(ctx context.Context) (*dto.RetentionResponse, error) {
	since := time.Now().Add(-analyticsWindow)
	total, retained, err := s.analyticsRepo.RetentionCounts(ctx, since)
	if err != nil {
		return nil, err
	}

	var rate float64
	if total > 0 {
		rate = roundPercent(float64(retained) / float64(total) * 100)
	}

	return &dto.RetentionResponse{
		RetentionRate:   rate,
		RetentionChange: stubRetentionChange,
		Status:          statusSuccess,
	}, nil
}

// MatchingSuccessRate reports the share of rated sessions marked
// successful
func (s *analyticsServiceImpl) MatchingSuccessRate(ctx context.Context) (*dto.SuccessRateResponse, error) {
	rated, successful, err := s.analyticsRepo.SessionSuccessCounts(ctx)
	if err != nil {
		return nil, err
	}

	var rate float64
	if rated > 0 {
		rate = roundPercent(float64(successful) / float64(rated) * 100)
	}

	return &dto.SuccessRateResponse{
		SuccessRate: rate,
		Change:      stubSuccessRateChange,
		Status:      statusSuccess,
	}, nil
}

// AvgMatchTime reports the average days between a match and the
// pair's first study session
func (s *analyticsServiceImpl) AvgMatchTime(ctx context.Context) (*dto.AvgMatchTimeResponse, error) {
	avgDays, err := s.analyticsRepo.AvgMatchToSessionDays(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AvgMatchTimeResponse{
		AvgDays: math.Round(avgDays*10) / 10,
		Change:  stubAvgTimeChange,
		Status:  statusSuccess,
	}, nil
}

// RecentMatches lists the 3 newest matches for the dashboard card
func (s *analyticsServiceImpl) RecentMatches(ctx context.Context) (*dto.RecentMatchesResponse, error) {
	rows, err := s.analyticsRepo.RecentMatches(ctx, 3)
	if err != nil {
		return nil, err
	}

	matches := make([]dto.RecentMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, dto.RecentMatch{
			Pair:          row.Pair,
			Course:        row.Course,
			Compatibility: fmt.Sprintf("%d%%", row.Compatibility),
			MatchDate:     row.MatchDate.Format("2006-01-02"),
		})
	}

	return &dto.RecentMatchesResponse{
		Matches: matches,
		Status:  statusSuccess,
	}, nil
}

// MajorDistribution counts users per major
func (s *analyticsServiceImpl) MajorDistribution(ctx context.Context) (*dto.MajorDistributionResponse, error) {
	entries, err := s.analyticsRepo.MajorDistribution(ctx)
	if err != nil {
		return nil, err
	}

	distribution := make([]dto.MajorDistributionEntry, 0, len(entries))
	for _, entry := range entries {
		distribution = append(distribution, dto.MajorDistributionEntry{
			Major: entry.Label,
			Count: entry.Count,
		})
	}

	return &dto.MajorDistributionResponse{
		Distribution: distribution,
		Status:       statusSuccess,
	}, nil
}

// InterestDistribution counts interest rows per interest
func (s *analyticsServiceImpl) InterestDistribution(ctx context.Context) (*dto.InterestDistributionResponse, error) {
	entries, err := s.analyticsRepo.InterestDistribution(ctx)
	if err != nil {
		return nil, err
	}

	distribution := make([]dto.InterestDistributionEntry, 0, len(entries))
	for _, entry := range entries {
		distribution = append(distribution, dto.InterestDistributionEntry{
			Interest: entry.Label,
			Count:    entry.Count,
		})
	}

	return &dto.InterestDistributionResponse{
		Distribution: distribution,
		Status:       statusSuccess,
	}, nil
}

// CohortAnalytics aggregates study session activity
func (s *analyticsServiceImpl) CohortAnalytics(ctx context.Context) (*dto.CohortAnalyticsResponse, error) {
	stats, err := s.analyticsRepo.CohortSessions(ctx)
	if err != nil {
		return nil, err
	}

	sessions := dto.CohortSessions{
		TotalSessions:      stats.TotalSessions,
		AvgDurationMinutes: math.Round(stats.AvgDurationMinutes*10) / 10,
		ByWeekday:          make([]dto.WeekdaySessions, 0, len(stats.ByWeekday)),
	}

	// Stable weekday order for the chart axis
	for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		if count, ok := stats.ByWeekday[day]; ok {
			sessions.ByWeekday = append(sessions.ByWeekday, dto.WeekdaySessions{
				Weekday:  day,
				Sessions: count,
			})
		}
	}

	return &dto.CohortAnalyticsResponse{
		Sessions: sessions,
		Status:   statusSuccess,
	}, nil
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
