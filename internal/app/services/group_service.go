package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
)

// GroupService defines the interface for study group operations
type GroupService interface {
	GetAllGroups(ctx context.Context) ([]*models.StudyGroup, error)
	CreateGroup(ctx context.Context, name string, creatorID int64) (*models.StudyGroup, error)
	RenameGroup(ctx context.Context, groupID int64, name string) error
	DeleteGroup(ctx context.Context, groupID int64) error
	JoinGroup(ctx context.Context, groupID, userID int64) (joined bool, err error)
	LeaveGroup(ctx context.Context, groupID, userID int64) error
}

// groupServiceImpl implements the GroupService interface
type groupServiceImpl struct {
	groupRepo *repositories.GroupRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo *repositories.GroupRepository) GroupService {
	return &groupServiceImpl{
		groupRepo: groupRepo,
	}
}

// GetAllGroups lists every study group ordered by name
func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]*models.StudyGroup, error) {
	return s.groupRepo.GetAll(ctx)
}

// CreateGroup creates a group and enrolls the creator as its first
// member
func (s *groupServiceImpl) CreateGroup(ctx context.Context, name string, creatorID int64) (*models.StudyGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: group name cannot be empty", apperrors.ErrValidationFailed)
	}

	group := &models.StudyGroup{GroupName: name}
	if err := s.groupRepo.CreateWithCreator(ctx, group, creatorID); err != nil {
		return nil, err
	}
	return group, nil
}

// RenameGroup changes a group's name
func (s *groupServiceImpl) RenameGroup(ctx context.Context, groupID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: group name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.groupRepo.Rename(ctx, groupID, name)
}

// DeleteGroup removes a group and all its memberships
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, groupID int64) error {
	return s.groupRepo.Delete(ctx, groupID)
}

// JoinGroup adds a user to a group. A duplicate join reports
// joined=false without an error.
func (s *groupServiceImpl) JoinGroup(ctx context.Context, groupID, userID int64) (bool, error) {
	return s.groupRepo.AddMember(ctx, groupID, userID)
}

// LeaveGroup removes a user's membership
func (s *groupServiceImpl) LeaveGroup(ctx context.Context, groupID, userID int64) error {
	return s.groupRepo.RemoveMember(ctx, groupID, userID)
}
