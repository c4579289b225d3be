package services

import (
	"context"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, update *repositories.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUserGroups(ctx context.Context, userID int64) ([]*models.StudyGroup, error)
	GetUserResources(ctx context.Context, userID int64) ([]*models.Resource, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo     *repositories.UserRepository
	groupRepo    *repositories.GroupRepository
	resourceRepo *repositories.ResourceRepository
}

// NewUserService creates a new user service instance
func NewUserService(
	userRepo *repositories.UserRepository,
	groupRepo *repositories.GroupRepository,
	resourceRepo *repositories.ResourceRepository,
) UserService {
	return &userServiceImpl{
		userRepo:     userRepo,
		groupRepo:    groupRepo,
		resourceRepo: resourceRepo,
	}
}

// GetAllUsers retrieves all registered users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUserByID retrieves a single user
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateUser applies a partial profile update
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, update *repositories.UserUpdate) (*models.User, error) {
	return s.userRepo.Update(ctx, id, update)
}

// DeleteUser removes a user together with all dependent rows
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// GetUserGroups lists the groups the user belongs to
func (s *userServiceImpl) GetUserGroups(ctx context.Context, userID int64) ([]*models.StudyGroup, error) {
	return s.groupRepo.GetForUser(ctx, userID)
}

// GetUserResources lists the resources linked to the user
func (s *userServiceImpl) GetUserResources(ctx context.Context, userID int64) ([]*models.Resource, error) {
	return s.resourceRepo.GetForUser(ctx, userID)
}
