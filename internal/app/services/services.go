// Services defined in this package:
// - AuthService: registration and login
// - UserService: user profiles and their groups/resources
// - MatchService: match lifecycle, partner scoring, study sessions
// - GroupService: study group CRUD and membership
// - ResourceService: study resource CRUD
// - AdminService: admin console operations
// - AnalyticsService: dashboard aggregates
// - LearningStyleService: learning style reference data
package services

import (
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService          AuthService
	UserService          UserService
	MatchService         MatchService
	GroupService         GroupService
	ResourceService      ResourceService
	AdminService         AdminService
	AnalyticsService     AnalyticsService
	LearningStyleService LearningStyleService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:          NewAuthService(repos.UserRepository, jwtService),
		UserService:          NewUserService(repos.UserRepository, repos.GroupRepository, repos.ResourceRepository),
		MatchService:         NewMatchService(repos.MatchRepository),
		GroupService:         NewGroupService(repos.GroupRepository),
		ResourceService:      NewResourceService(repos.ResourceRepository),
		AdminService:         NewAdminService(repos.AdminRepository, repos.UserRepository),
		AnalyticsService:     NewAnalyticsService(repos.AnalyticsRepository),
		LearningStyleService: NewLearningStyleService(repos.LearningStyleRepository),
	}
}
