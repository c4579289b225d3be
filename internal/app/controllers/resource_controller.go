package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/models/dto"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/middleware"
)

// ResourceController handles standalone study resource routes
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// UpdateResource applies a partial update to a resource
// @Summary Update a resource
// @Description Updates the link and/or type of an existing resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body dto.UpdateResourceRequest true "Fields to update"
// @Success 200 {object} dto.ResourceResponse
// @Failure 400 {object} dto.ErrorResponse "No valid fields provided"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}
	if !req.HasFields() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields provided"))
		return
	}

	update := &repositories.ResourceUpdate{
		Link: req.Link,
		Type: req.Type,
	}

	resource, err := c.resourceService.UpdateResource(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResourceResponse{
		Message:  "Resource updated successfully",
		Resource: resource,
	})
}

// DeleteResource removes a resource and its user links
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Param id path int true "Resource ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Resource deleted successfully"})
}
