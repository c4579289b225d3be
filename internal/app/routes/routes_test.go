package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/controllers"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/routes"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repos := repositories.NewRepositories(mock)
	svcs := services.NewServices(repos, auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studybuddy.test",
	}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(svcs.AuthService, svcs.UserService),
		controllers.NewUserController(svcs.UserService, svcs.MatchService, svcs.ResourceService),
		controllers.NewMatchController(svcs.MatchService),
		controllers.NewGroupController(svcs.GroupService),
		controllers.NewResourceController(svcs.ResourceService),
		controllers.NewAdminController(svcs.AdminService, svcs.UserService),
		controllers.NewAnalyticsController(svcs.AnalyticsService),
		controllers.NewLearningStyleController(svcs.LearningStyleService),
	)
	return router, mock
}

// The matching dashboard reads the match total from /a/matches/total
// while the charts use the /a/analytics prefix. Both must resolve.
func TestTotalMatchesServedOnBothPaths(t *testing.T) {
	for _, path := range []string{"/a/analytics/matches/total", "/a/matches/total"} {
		t.Run(path, func(t *testing.T) {
			router, mock := newTestRouter(t)
			mock.ExpectQuery("SELECT COUNT").
				WithArgs(pgxmock.AnyArg()).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"total_matches":12`)
			assert.Contains(t, w.Body.String(), `"time_period":"Last 30 days"`)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHealthRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}
