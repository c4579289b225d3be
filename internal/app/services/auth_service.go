package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/auth"
	"github.com/studybuddy/backend/internal/pkg/logger"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, user *models.User, plainPassword string) error
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register hashes the password and creates the user
func (s *authServiceImpl) Register(ctx context.Context, user *models.User, plainPassword string) error {
	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if plainPassword == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	hashedPassword, err := auth.HashPassword(plainPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashedPassword

	return s.userRepo.Create(ctx, user)
}

// Login verifies credentials, stamps last_login and issues a token.
// The token is advisory, no route requires it.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to update last login")
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to generate token")
		token = ""
	}

	return user, token, nil
}
