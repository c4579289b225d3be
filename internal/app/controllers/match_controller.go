package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// MatchController handles the match lifecycle and study session routes
type MatchController struct {
	matchService services.MatchService
}

// NewMatchController creates a new MatchController
func NewMatchController(matchService services.MatchService) *MatchController {
	return &MatchController{
		matchService: matchService,
	}
}

// RecordMatch stores a match between two users
// @Summary Record a match
// @Description Canonicalizes the pair and stores it. An existing pair returns 200.
// @Tags matches
// @Accept json
// @Produce json
// @Param request body dto.RecordMatchRequest true "User pair"
// @Success 200 {object} dto.MessageResponse "Match already exists"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Self-match or missing fields"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches [post]
func (c *MatchController) RecordMatch(ctx *gin.Context) {
	var req dto.RecordMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user1_id and user2_id are required"))
		return
	}

	created, err := c.matchService.RecordMatch(ctx, *req.User1ID, *req.User2ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if created {
		ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Match recorded successfully"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Match already exists"})
}

// UpdateMatch changes a match's status
// @Summary Update a match's status
// @Tags matches
// @Accept json
// @Produce json
// @Param user1_id path int true "First user ID"
// @Param user2_id path int true "Second user ID"
// @Param request body dto.UpdateMatchRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Match not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches/{user1_id}/{user2_id} [put]
func (c *MatchController) UpdateMatch(ctx *gin.Context) {
	user1ID, ok := parseIDParam(ctx, "user1_id")
	if !ok {
		return
	}
	user2ID, ok := parseIDParam(ctx, "user2_id")
	if !ok {
		return
	}

	var req dto.UpdateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("status is required"))
		return
	}

	if err := c.matchService.UpdateMatchStatus(ctx, user1ID, user2ID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Match updated successfully"})
}

// DeleteMatch removes a match
// @Summary Delete a match
// @Tags matches
// @Produce json
// @Param user1_id path int true "First user ID"
// @Param user2_id path int true "Second user ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Match not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches/{user1_id}/{user2_id} [delete]
func (c *MatchController) DeleteMatch(ctx *gin.Context) {
	user1ID, ok := parseIDParam(ctx, "user1_id")
	if !ok {
		return
	}
	user2ID, ok := parseIDParam(ctx, "user2_id")
	if !ok {
		return
	}

	if err := c.matchService.DeleteMatch(ctx, user1ID, user2ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Match deleted successfully"})
}

// StudyMatch pairs the user with the best-scoring course peer
// @Summary Match a user for a study session
// @Description Picks the highest-scoring partner and records a session and match
// @Tags study
// @Accept json
// @Produce json
// @Param request body dto.StudyMatchRequest true "User and course"
// @Success 201 {object} dto.StudyMatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No suitable matches found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /study/match [post]
func (c *MatchController) StudyMatch(ctx *gin.Context) {
	var req dto.StudyMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id and course_id are required"))
		return
	}

	session, partner, err := c.matchService.MatchForStudySession(ctx, *req.UserID, *req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudyMatchResponse{
		Message:   "Study partner matched successfully",
		SessionID: session.ID,
		Partner:   partner,
	})
}

// SessionFeedback records effectiveness feedback for a session
// @Summary Record session feedback
// @Tags study
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body dto.SessionFeedbackRequest true "Feedback"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /study/sessions/{id}/feedback [post]
func (c *MatchController) SessionFeedback(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SessionFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("rating (1-5) and was_successful are required"))
		return
	}

	if err := c.matchService.RecordSessionFeedback(ctx, sessionID, *req.Rating, *req.WasSuccessful); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback recorded successfully"})
}
