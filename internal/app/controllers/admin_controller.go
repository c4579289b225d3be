package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// AdminController handles the admin console routes: admin account CRUD
// and administrative user management
type AdminController struct {
	adminService services.AdminService
	userService  services.UserService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, userService services.UserService) *AdminController {
	return &AdminController{
		adminService: adminService,
		userService:  userService,
	}
}

// GetAdmins lists all admin accounts
// @Summary Get all admins
// @Tags admin
// @Produce json
// @Success 200 {array} models.Admin
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins [get]
func (c *AdminController) GetAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, admins)
}

// CreateAdmin creates a new admin account
// @Summary Create an admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Admin data"
// @Success 201 {object} dto.CreatedAdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins [post]
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and role are required"))
		return
	}

	admin := &models.Admin{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := c.adminService.CreateAdmin(ctx, admin); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedAdminResponse{
		Message: "Admin created successfully",
		AdminID: admin.ID,
	})
}

// UpdateAdmin applies a partial update to an admin account
// @Summary Update an admin
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param request body dto.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} models.Admin
// @Failure 400 {object} dto.ErrorResponse "No valid fields provided"
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/{id} [put]
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}
	if !req.HasFields() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields provided"))
		return
	}

	update := &repositories.AdminUpdate{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}

	admin, err := c.adminService.UpdateAdmin(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, admin)
}

// DeleteAdmin removes an admin account
// @Summary Delete an admin
// @Tags admin
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Admin not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/{id} [delete]
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Admin deleted successfully"})
}

// CountAdmins returns the number of admin accounts
// @Summary Count admins
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/count [get]
func (c *AdminController) CountAdmins(ctx *gin.Context) {
	count, err := c.adminService.CountAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetUsers lists all users for the admin console
// @Summary Get all users (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// CreateUser creates a user from the admin console
// @Summary Create a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminUserRequest true "User data"
// @Success 201 {object} dto.CreatedUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateAdminUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and password are required"))
		return
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		Major:         req.Major,
		LearningStyle: req.LearningStyle,
		Availability:  req.Availability,
	}
	if err := c.adminService.CreateUser(ctx, user, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedUserResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// UpdateUser applies a partial update to a user from the admin console
// @Summary Update a user (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UpdateUserResponse
// @Failure 400 {object} dto.ErrorResponse "No valid fields provided"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users/{id} [put]
func (c *AdminController) UpdateUser(ctx *gin.Context) {
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

	user, err := c.adminService.UpdateUser(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateUserResponse{
		Message: "User updated successfully",
		User:    user,
	})
}

// DeleteUser removes a user from the admin console
// @Summary Delete a user (admin)
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.adminService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// CountUsers returns the number of registered users
// @Summary Count users
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/users/count [get]
func (c *AdminController) CountUsers(ctx *gin.Context) {
	count, err := c.adminService.CountUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CountResponse{Count: count})
}
