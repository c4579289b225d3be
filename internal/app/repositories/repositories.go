package repositories

import (
	"github.com/studybuddy/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	AdminRepository         *AdminRepository
	GroupRepository         *GroupRepository
	ResourceRepository      *ResourceRepository
	MatchRepository         *MatchRepository
	AnalyticsRepository     *AnalyticsRepository
	LearningStyleRepository *LearningStyleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(pool),
		AdminRepository:         NewAdminRepository(pool),
		GroupRepository:         NewGroupRepository(pool),
		ResourceRepository:      NewResourceRepository(pool),
		MatchRepository:         NewMatchRepository(pool),
		AnalyticsRepository:     NewAnalyticsRepository(pool),
		LearningStyleRepository: NewLearningStyleRepository(pool),
	}
}
