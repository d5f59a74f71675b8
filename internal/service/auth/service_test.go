package auth_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-platform-service/internal/auth"
	"blog-platform-service/internal/custom_errors"
	"blog-platform-service/internal/logger"
	prometheus_metrics "blog-platform-service/internal/metrics/prometheus"
	"blog-platform-service/internal/model"
	"blog-platform-service/internal/repository/user/memory"
	auth_service "blog-platform-service/internal/service/auth"
)

func setupAuthTest(t *testing.T) (*auth_service.AuthService, *auth.TokenService) {
	log := logger.New("test")
	userRepo := memory.NewUserRepository(log)
	tokens := auth.NewTokenService("test-secret", time.Hour)
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	return auth_service.NewAuthService(userRepo, tokens, log, metrics), tokens
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := setupAuthTest(t)

	dto := &model.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	user, err := svc.Register(context.Background(), dto)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	tests := []struct {
		name string
		dto  *model.RegisterDTO
	}{
		{
			name: "duplicate email",
			dto:  &model.RegisterDTO{Username: "bob", Email: "alice@example.com", Password: "password123"},
		},
		{
			name: "duplicate username",
			dto:  &model.RegisterDTO{Username: "alice", Email: "bob@example.com", Password: "password123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Register(context.Background(), tt.dto)

			assert.ErrorIs(t, err, custom_errors.ErrUserAlreadyExists)
			assert.Nil(t, got)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, tokens := setupAuthTest(t)

	_, err := svc.Register(context.Background(), &model.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), &model.LoginDTO{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		require.NotEmpty(t, token)

		userID, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	// Unknown email and wrong password must be indistinguishable.
	t.Run("unknown email", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), &model.LoginDTO{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), &model.LoginDTO{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})
}
