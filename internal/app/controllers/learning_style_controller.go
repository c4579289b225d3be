package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/services"
)

// LearningStyleController serves the read-only learning style
// endpoints. They always answer 200 with data or the documented
// zero-value defaults.
type LearningStyleController struct {
	styleService services.LearningStyleService
}

// NewLearningStyleController creates a new LearningStyleController
func NewLearningStyleController(styleService services.LearningStyleService) *LearningStyleController {
	return &LearningStyleController{
		styleService: styleService,
	}
}

// GetDistribution returns a user's style percentages
// @Summary Learning style distribution for a user
// @Tags learning-style
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.StyleDistribution
// @Router /learning-style/distribution/{user_id} [get]
func (c *LearningStyleController) GetDistribution(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.styleService.GetDistribution(ctx, userID))
}

// GetProfile returns a user's strengths and growth areas
// @Summary Learning style profile for a user
// @Tags learning-style
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.StyleProfile
// @Router /learning-style/profile/{user_id} [get]
func (c *LearningStyleController) GetProfile(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.styleService.GetProfile(ctx, userID))
}

// GetTechniques returns the reference techniques for a style
// @Summary Study techniques for a learning style
// @Tags learning-style
// @Produce json
// @Param style path string true "Learning style"
// @Success 200 {array} models.StudyTechnique
// @Router /learning-style/techniques/{style} [get]
func (c *LearningStyleController) GetTechniques(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.styleService.GetTechniques(ctx, ctx.Param("style")))
}

// GetTools returns the reference tools for a style
// @Summary Study tools for a learning style
// @Tags learning-style
// @Produce json
// @Param style path string true "Learning style"
// @Success 200 {array} models.StudyTool
// @Router /learning-style/tools/{style} [get]
func (c *LearningStyleController) GetTools(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.styleService.GetTools(ctx, ctx.Param("style")))
}

// GetGroupRecommendations returns the reference recommendations for a
// style
// @Summary Study group recommendations for a learning style
// @Tags learning-style
// @Produce json
// @Param style path string true "Learning style"
// @Success 200 {array} models.GroupRecommendation
// @Router /learning-style/recommendations/{style} [get]
func (c *LearningStyleController) GetGroupRecommendations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.styleService.GetGroupRecommendations(ctx, ctx.Param("style")))
}
