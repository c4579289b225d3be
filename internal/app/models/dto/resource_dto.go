package dto

import "github.com/studybuddy/backend/internal/app/models"

// AddResourceRequest adds a resource and links it to a user
type AddResourceRequest struct {
	Link string `json:"link" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// UpdateResourceRequest updates a resource's link and/or type
type UpdateResourceRequest struct {
	Link *string `json:"link"`
	Type *string `json:"type"`
}

// HasFields reports whether at least one field is present
func (r *UpdateResourceRequest) HasFields() bool {
	return r.Link != nil || r.Type != nil
}

// AddResourceResponse is returned after a resource is created and linked
type AddResourceResponse struct {
	Message    string `json:"message"`
	ResourceID int64  `json:"resource_id"`
}

// ResourceResponse wraps a resource in the update response body
type ResourceResponse struct {
	Message  string           `json:"message"`
	Resource *models.Resource `json:"resource"`
}
