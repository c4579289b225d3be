package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	matchController *controllers.MatchController,
	groupController *controllers.GroupController,
	resourceController *controllers.ResourceController,
	adminController *controllers.AdminController,
	analyticsController *controllers.AnalyticsController,
	learningStyleController *controllers.LearningStyleController,
) {
	// Diagnostic endpoints the dashboard pings on startup
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Auth routes. The dashboard uses /login for all three verbs:
	// GET lists users, POST registers, PUT logs in.
	router.GET("/login", authController.ListUsers)
	router.POST("/login", authController.Register)
	router.PUT("/login", authController.Login)

	// User routes
	users := router.Group("/users")
	{
		users.GET("/all", userController.GetAllUsers)
		users.GET("/:id", userController.GetUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
		users.GET("/:id/groups", userController.GetUserGroups)
		users.GET("/:id/potential-matches", userController.GetPotentialMatches)
		users.GET("/:id/resources", userController.GetUserResources)
		users.POST("/:id/resources", userController.AddUserResource)
		users.GET("/:id/matches", userController.GetUserMatches)
		users.POST("/:id/study-partners", userController.FindStudyPartners)
	}

	// Match routes
	matches := router.Group("/matches")
	{
		matches.POST("", matchController.RecordMatch)
		matches.PUT("/:user1_id/:user2_id", matchController.UpdateMatch)
		matches.DELETE("/:user1_id/:user2_id", matchController.DeleteMatch)
	}

	// Study routes
	study := router.Group("/study")
	{
		study.POST("/match", matchController.StudyMatch)
		study.POST("/sessions/:id/feedback", matchController.SessionFeedback)
		study.GET("/cohort-analytics", analyticsController.CohortAnalytics)
	}

	// Group routes
	groups := router.Group("/groups")
	{
		groups.GET("/find", groupController.FindGroups)
		groups.POST("/create", groupController.CreateGroup)
		groups.PUT("/:id", groupController.UpdateGroup)
		groups.DELETE("/:id", groupController.DeleteGroup)
		groups.POST("/:id/join", groupController.JoinGroup)
		groups.DELETE("/:id/members/:user_id", groupController.RemoveMember)
	}

	// Resource routes
	resources := router.Group("/resources")
	{
		resources.PUT("/:id", resourceController.UpdateResource)
		resources.DELETE("/:id", resourceController.DeleteResource)
	}

	// Admin console routes
	admin := router.Group("/admin")
	{
		admin.GET("/admins", adminController.GetAdmins)
		admin.POST("/admins", adminController.CreateAdmin)
		admin.GET("/admins/count", adminController.CountAdmins)
		admin.PUT("/admins/:id", adminController.UpdateAdmin)
		admin.DELETE("/admins/:id", adminController.DeleteAdmin)

		admin.GET("/users", adminController.GetUsers)
		admin.POST("/users", adminController.CreateUser)
		admin.GET("/users/count", adminController.CountUsers)
		admin.PUT("/users/:id", adminController.UpdateUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)
	}

	// Analytics routes
	analytics := router.Group("/a/analytics")
	{
		analytics.GET("/matches/total", analyticsController.TotalMatches)
		analytics.GET("/retention", analyticsController.Retention)
		analytics.GET("/matching/success-rate", analyticsController.SuccessRate)
		analytics.GET("/matching/avg-time", analyticsController.AvgMatchTime)
		analytics.GET("/matching/recent-matches", analyticsController.RecentMatches)
		analytics.GET("/major-distribution", analyticsController.MajorDistribution)
		analytics.GET("/interest-distribution", analyticsController.InterestDistribution)
	}

	// The matching dashboard requests the total without the /analytics
	// segment, both paths serve the same handler
	router.GET("/a/matches/total", analyticsController.TotalMatches)

	// Learning style reference routes
	learningStyle := router.Group("/learning-style")
	{
		learningStyle.GET("/distribution/:user_id", learningStyleController.GetDistribution)
		learningStyle.GET("/profile/:user_id", learningStyleController.GetProfile)
		learningStyle.GET("/techniques/:style", learningStyleController.GetTechniques)
		learningStyle.GET("/tools/:style", learningStyleController.GetTools)
		learningStyle.GET("/recommendations/:style", learningStyleController.GetGroupRecommendations)
	}
}
