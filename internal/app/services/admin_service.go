package services

import (
	"context"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/auth"
)

// AdminService defines the interface for the admin console: admin
// account CRUD plus administrative user management
type AdminService interface {
	GetAllAdmins(ctx context.Context) ([]*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	UpdateAdmin(ctx context.Context, id int64, update *repositories.AdminUpdate) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
	CountAdmins(ctx context.Context) (int64, error)

	CreateUser(ctx context.Context, user *models.User, plainPassword string) error
	UpdateUser(ctx context.Context, id int64, update *repositories.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	adminRepo *repositories.AdminRepository
	userRepo  *repositories.UserRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(adminRepo *repositories.AdminRepository, userRepo *repositories.UserRepository) AdminService {
	return &adminServiceImpl{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

// GetAllAdmins lists all admin accounts
func (s *adminServiceImpl) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

// CreateAdmin creates a new admin account
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return s.adminRepo.Create(ctx, admin)
}

// UpdateAdmin applies a partial update to an admin account
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, update *repositories.AdminUpdate) (*models.Admin, error) {
	return s.adminRepo.Update(ctx, id, update)
}

// DeleteAdmin removes an admin account
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	return s.adminRepo.Delete(ctx, id)
}

// CountAdmins returns the number of admin accounts
func (s *adminServiceImpl) CountAdmins(ctx context.Context) (int64, error) {
	return s.adminRepo.Count(ctx)
}

// CreateUser creates a user on behalf of an admin, hashing the
// password the same way self-registration does
func (s *adminServiceImpl) CreateUser(ctx context.Context, user *models.User, plainPassword string) error {
	hashedPassword, err := auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return s.userRepo.Create(ctx, user)
}

// UpdateUser applies a partial update to a user account
func (s *adminServiceImpl) UpdateUser(ctx context.Context, id int64, update *repositories.UserUpdate) (*models.User, error) {
	return s.userRepo.Update(ctx, id, update)
}

// DeleteUser removes a user together with dependent rows
func (s *adminServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// CountUsers returns the number of registered users
func (s *adminServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
