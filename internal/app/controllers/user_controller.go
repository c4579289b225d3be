package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// UserController handles user profile routes and the per-user views
// over groups, resources and matches
type UserController struct {
	userService     services.UserService
	matchService    services.MatchService
	resourceService services.ResourceService
}

// NewUserController creates a new UserController
func NewUserController(
	userService services.UserService,
	matchService services.MatchService,
	resourceService services.ResourceService,
) *UserController {
	return &UserController{
		userService:     userService,
		matchService:    matchService,
		resourceService: resourceService,
	}
}

// parseIDParam reads a numeric path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}

// GetAllUsers lists all users
// @Summary Get all users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/all [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser retrieves a single user
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial profile update
// @Summary Update a user
// @Description Updates any subset of name, email, major, learning_style, availability
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UpdateUserResponse
// @Failure 400 {object} dto.ErrorResponse "No valid fields provided"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}
	if !req.HasFields() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields provided"))
		return
	}

	update := &repositories.UserUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Major:         req.Major,
		LearningStyle: req.LearningStyle,
		Availability:  req.Availability,
	}

	user, err := c.userService.UpdateUser(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateUserResponse{
		Message: "User updated successfully",
		User:    user,
	})
}

// DeleteUser removes a user and all dependent rows
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// GetUserGroups lists the groups a user belongs to
// @Summary Get a user's groups
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.StudyGroup
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/groups [get]
func (c *UserController) GetUserGroups(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	groups, err := c.userService.GetUserGroups(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// GetPotentialMatches lists random unmatched users
// @Summary Get potential matches for a user
// @Description Returns up to 5 random users not yet matched with the requester
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/potential-matches [get]
func (c *UserController) GetPotentialMatches(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	users, err := c.matchService.GetPotentialMatches(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUserResources lists the resources linked to a user
// @Summary Get a user's resources
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.Resource
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/resources [get]
func (c *UserController) GetUserResources(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resources, err := c.userService.GetUserResources(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resources)
}

// AddUserResource creates a resource and links it to the user
// @Summary Add a resource for a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.AddResourceRequest true "Resource data"
// @Success 201 {object} dto.AddResourceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/resources [post]
func (c *UserController) AddUserResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Link and type are required"))
		return
	}

	resource, err := c.resourceService.AddResourceForUser(ctx, id, req.Link, req.Type)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddResourceResponse{
		Message:    "Resource added successfully",
		ResourceID: resource.ID,
	})
}

// GetUserMatches lists a user's matched partners
// @Summary Get a user's matches
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.MatchPartner
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/matches [get]
func (c *UserController) GetUserMatches(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	partners, err := c.matchService.GetMatchPartners(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, partners)
}

// FindStudyPartners scores candidates enrolled in a course
// @Summary Find study partners for a course
// @Description Scores course peers by availability overlap and learning style
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.StudyPartnersRequest true "Course"
// @Success 200 {array} models.StudyPartner
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id}/study-partners [post]
func (c *UserController) FindStudyPartners(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StudyPartnersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("course_id is required"))
		return
	}

	partners, err := c.matchService.FindStudyPartners(ctx, id, *req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, partners)
}
