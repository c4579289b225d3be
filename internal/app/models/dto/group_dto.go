package dto

import "github.com/studybuddy/backend/internal/app/models"

// CreateGroupRequest creates a group and enrolls the creator
type CreateGroupRequest struct {
	GroupName string `json:"group_name" binding:"required"`
	UserID    *int64 `json:"user_id" binding:"required"`
}

// UpdateGroupRequest renames a group
type UpdateGroupRequest struct {
	GroupName string `json:"group_name" binding:"required"`
}

// JoinGroupRequest adds a user to a group
type JoinGroupRequest struct {
	UserID *int64 `json:"user_id" binding:"required"`
}

// GroupResponse wraps a group in the create/update response body
type GroupResponse struct {
	Message string             `json:"message"`
	Group   *models.StudyGroup `json:"group"`
}
