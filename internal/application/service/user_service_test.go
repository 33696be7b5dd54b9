package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

func TestCreateUserDefaultsRoleAndHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{Username: "clerk", Password: "secret123", FullName: "Front Desk"})
	require.NoError(t, err)
	assert.Equal(t, "staff", user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserInput{Username: "clerk", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &CreateUserInput{Username: "clerk", Password: "other456"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateUserRequiresCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{Username: "", Password: ""})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestSetActiveTogglesAccount(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{Username: "clerk", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.SetActive(ctx, user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = svc.SetActive(ctx, 99, false)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code, "unknown id is a client error")
}

func TestSetRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{Username: "clerk", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.SetRole(ctx, user.ID, "manager")
	require.NoError(t, err)
	assert.Equal(t, "manager", updated.Role)

	_, err = svc.SetRole(ctx, user.ID, "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
