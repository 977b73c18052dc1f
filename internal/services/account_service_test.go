package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/request_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

func TestAccountRegisterAndLogin(t *testing.T) {
	service := NewAccountService(repositories.NewInMemoryUserRepository())
	ctx := context.Background()

	err := service.CreateAccount(ctx, request_models.SignUpRequest{Username: "wanderer", Password: "secret123"})
	require.NoError(t, err)

	token, err := service.Login(ctx, request_models.LoginRequest{Username: "wanderer", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "wanderer", claims.Username)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestAccountGetAccount(t *testing.T) {
	service := NewAccountService(repositories.NewInMemoryUserRepository())
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{Username: "wanderer", Password: "secret123"}))

	account, err := service.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "wanderer", account.Username)

	_, err = service.GetAccount(ctx, 99)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAccountRegisterDuplicateUsername(t *testing.T) {
	service := NewAccountService(repositories.NewInMemoryUserRepository())
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{Username: "wanderer", Password: "secret123"}))

	err := service.CreateAccount(ctx, request_models.SignUpRequest{Username: "wanderer", Password: "other456"})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestAccountLoginFailures(t *testing.T) {
	service := NewAccountService(repositories.NewInMemoryUserRepository())
	ctx := context.Background()

	require.NoError(t, service.CreateAccount(ctx, request_models.SignUpRequest{Username: "wanderer", Password: "secret123"}))

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, request_models.LoginRequest{Username: "wanderer", Password: "wrong"})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Login(ctx, request_models.LoginRequest{Username: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}
