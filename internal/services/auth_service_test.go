package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	user, err := env.userService.CreateUser(ctx, CreateUserInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := env.authService.Login(ctx, LoginInput{Username: "ALICE", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = env.authService.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.authService.Login(ctx, LoginInput{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	user, err := env.userService.CreateUser(ctx, CreateUserInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	_, err = env.userService.UpdateUser(ctx, UpdateUserInput{
		ID: user.ID, Username: "alice", Roles: []string{"Employee"}, Active: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = env.authService.Login(ctx, LoginInput{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestAuthService_GetUser(t *testing.T) {
	env := setupServiceTestEnv(t)
	ctx := context.Background()

	_, err := env.authService.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
