package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// AnalyticsController serves the read-only dashboard aggregates
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// TotalMatches reports matches recorded in the last 30 days
// @Summary Total matches in the reporting window
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.TotalMatchesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/matches/total [get]
func (c *AnalyticsController) TotalMatches(ctx *gin.Context) {
	resp, err := c.analyticsService.TotalMatches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Retention reports the 30-day retention rate
// @Summary User retention rate
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.RetentionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/retention [get]
func (c *AnalyticsController) Retention(ctx *gin.Context) {
	resp, err := c.analyticsService.Retention(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SuccessRate reports the share of sessions marked successful
// @Summary Matching success rate
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.SuccessRateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/matching/success-rate [get]
func (c *AnalyticsController) SuccessRate(ctx *gin.Context) {
	resp, err := c.analyticsService.MatchingSuccessRate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AvgMatchTime reports average days from match to first session
// @Summary Average match-to-session time
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AvgMatchTimeResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/matching/avg-time [get]
func (c *AnalyticsController) AvgMatchTime(ctx *gin.Context) {
	resp, err := c.analyticsService.AvgMatchTime(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecentMatches lists the newest matches
// @Summary Recent matches
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.RecentMatchesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/matching/recent-matches [get]
func (c *AnalyticsController) RecentMatches(ctx *gin.Context) {
	resp, err := c.analyticsService.RecentMatches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// MajorDistribution counts users per major
// @Summary Major distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.MajorDistributionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/major-distribution [get]
func (c *AnalyticsController) MajorDistribution(ctx *gin.Context) {
	resp, err := c.analyticsService.MajorDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// InterestDistribution counts interest rows per interest
// @Summary Interest distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.InterestDistributionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /a/analytics/interest-distribution [get]
func (c *AnalyticsController) InterestDistribution(ctx *gin.Context) {
	resp, err := c.analyticsService.InterestDistribution(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CohortAnalytics aggregates study session activity
// @Summary Cohort study session analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.CohortAnalyticsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /study/cohort-analytics [get]
func (c *AnalyticsController) CohortAnalytics(ctx *gin.Context) {
	resp, err := c.analyticsService.CohortAnalytics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
