package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy/backend/internal/app/models"
	"github.com/studybuddy/backend/internal/app/repositories"
	"github.com/studybuddy/backend/internal/app/services"
	"github.com/studybuddy/backend/internal/pkg/apperrors"
	"github.com/studybuddy/backend/internal/pkg/auth"
)

func newAuthService(t *testing.T) (services.AuthService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "studybuddy.test",
	})
	return services.NewAuthService(repositories.NewUserRepository(mock), jwtService), mock
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password before storing", func(t *testing.T) {
		svc, mock := newAuthService(t)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Alice", "alice@example.com", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"userid", "created_at"}).
				AddRow(int64(1), time.Now()))

		user := &models.User{Name: "Alice", Email: "alice@example.com"}
		err := svc.Register(context.Background(), user, "s3cret")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", user.Password)
		assert.True(t, auth.CheckPassword(user.Password, "s3cret"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		svc, mock := newAuthService(t)

		err := svc.Register(context.Background(), &models.User{Name: " ", Email: "a@b.c"}, "pw")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		err = svc.Register(context.Background(), &models.User{Name: "Alice", Email: ""}, "pw")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		err = svc.Register(context.Background(), &models.User{Name: "Alice", Email: "a@b.c"}, "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	userRow := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{
			"userid", "name", "email", "password", "major", "learning_style", "availability",
		}).AddRow(int64(1), "Alice", "alice@example.com", hashed, nil, nil, nil)
	}

	t.Run("valid credentials return user and token", func(t *testing.T) {
		svc, mock := newAuthService(t)
		mock.ExpectQuery("WHERE email").
			WithArgs("alice@example.com").
			WillReturnRows(userRow())
		mock.ExpectExec("UPDATE users SET last_login").
			WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		user, token, err := svc.Login(context.Background(), "alice@example.com", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEmpty(t, token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mock := newAuthService(t)
		mock.ExpectQuery("WHERE email").
			WithArgs("alice@example.com").
			WillReturnRows(userRow())

		_, _, err := svc.Login(context.Background(), "alice@example.com", "nope")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		svc, mock := newAuthService(t)
		mock.ExpectQuery("WHERE email").
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, _, err := svc.Login(context.Background(), "ghost@example.com", "s3cret")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
