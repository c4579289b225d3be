package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// GroupController handles study group routes
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// FindGroups lists all study groups
// @Summary Get all study groups
// @Tags groups
// @Produce json
// @Success 200 {array} models.StudyGroup
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/find [get]
func (c *GroupController) FindGroups(ctx *gin.Context) {
	groups, err := c.groupService.GetAllGroups(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup creates a group with the creator as first member
// @Summary Create a study group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group data"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown creator"
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/create [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("group_name and user_id are required"))
		return
	}

	group, err := c.groupService.CreateGroup(ctx, req.GroupName, *req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GroupResponse{
		Message: "Group created successfully",
		Group:   group,
	})
}

// UpdateGroup renames a group
// @Summary Rename a study group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "New name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/{id} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("group_name is required"))
		return
	}

	if err := c.groupService.RenameGroup(ctx, groupID, req.GroupName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Group updated successfully"})
}

// DeleteGroup removes a group and its memberships
// @Summary Delete a study group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.groupService.DeleteGroup(ctx, groupID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Group deleted successfully"})
}

// JoinGroup adds a user to a group
// @Summary Join a study group
// @Description Adds the user to the group. A duplicate join returns 200.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.JoinGroupRequest true "User"
// @Success 200 {object} dto.MessageResponse "Already a member"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown group or user"
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/{id}/join [post]
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.JoinGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required"))
		return
	}

	joined, err := c.groupService.JoinGroup(ctx, groupID, *req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if joined {
		ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Joined group successfully"})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User is already a member of this group"})
}

// RemoveMember removes a user from a group
// @Summary Remove a group member
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Group, user or membership missing"
// @Failure 500 {object} dto.ErrorResponse
// @Router /groups/{id}/members/{user_id} [delete]
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	groupID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	if err := c.groupService.LeaveGroup(ctx, groupID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed successfully"})
}
