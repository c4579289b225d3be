package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to status codes and the flat
// {"error": ...} body the dashboard reads. Unknown errors become a
// generic 500, the raw error only goes to the log.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrSelfMatch):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Cannot match a user with themselves"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields provided"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Admin not found"))
	case errors.Is(err, apperrors.ErrGroupNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Group not found"))
	case errors.Is(err, apperrors.ErrNotGroupMember):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User is not a member of this group"))
	case errors.Is(err, apperrors.ErrStudyResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Match not found"))
	case errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Session not found"))
	case errors.Is(err, apperrors.ErrNoSuitableMatch):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("No suitable matches found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Conflict"))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
