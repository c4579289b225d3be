package services

import (
	"context"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
)

// ResourceService defines the interface for study resource operations
type ResourceService interface {
	AddResourceForUser(ctx context.Context, userID int64, link, resourceType string) (*models.Resource, error)
	UpdateResource(ctx context.Context, id int64, update *repositories.ResourceUpdate) (*models.Resource, error)
	DeleteResource(ctx context.Context, id int64) error
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl struct {
	resourceRepo *repositories.ResourceRepository
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo *repositories.ResourceRepository) ResourceService {
	return &resourceServiceImpl{
		resourceRepo: resourceRepo,
	}
}

// AddResourceForUser creates a resource and links it to the user
func (s *resourceServiceImpl) AddResourceForUser(ctx context.Context, userID int64, link, resourceType string) (*models.Resource, error) {
	resource := &models.Resource{
		Link: link,
		Type: resourceType,
	}
	if err := s.resourceRepo.AddForUser(ctx, userID, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// UpdateResource applies a partial update to a resource
func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id int64, update *repositories.ResourceUpdate) (*models.Resource, error) {
	return s.resourceRepo.Update(ctx, id, update)
}

// DeleteResource removes a resource and its user links
func (s *resourceServiceImpl) DeleteResource(ctx context.Context, id int64) error {
	return s.resourceRepo.Delete(ctx, id)
}
