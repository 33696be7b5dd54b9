package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, active bool) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{Username: username, Password: string(hashed), Role: "staff", Active: active}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "clerk", "secret123", true)

	result, err := svc.Login(context.Background(), "clerk", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "clerk", result.User.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "clerk", "secret123", true)

	_, err := svc.Login(context.Background(), "clerk", "wrong")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)

	// An unknown username fails identically to a wrong password.
	_, err = svc.Login(context.Background(), "nobody", "secret123")
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "clerk", "secret123", false)

	_, err := svc.Login(context.Background(), "clerk", "secret123")
	assert.Equal(t, apperror.ErrAccountDisabled, err)
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, repo := newAuthFixture(t)
	seedUser(t, repo, "clerk", "secret123", true)
	ctx := context.Background()

	login, err := svc.Login(ctx, "clerk", "secret123")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsDeactivatedAccount(t *testing.T) {
	svc, repo := newAuthFixture(t)
	user := seedUser(t, repo, "clerk", "secret123", true)
	ctx := context.Background()

	login, err := svc.Login(ctx, "clerk", "secret123")
	require.NoError(t, err)

	user.Active = false
	require.NoError(t, repo.Update(ctx, user))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.Equal(t, apperror.ErrUnauthorized, err)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.Equal(t, apperror.ErrInvalidToken, err)
}

func TestChangePassword(t *testing.T) {
	svc, repo := newAuthFixture(t)
	user := seedUser(t, repo, "clerk", "secret123", true)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user.ID, "wrong", "newpassword")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	err = svc.ChangePassword(ctx, user.ID, "secret123", "short")
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret123", "newpassword"))

	_, err = svc.Login(ctx, "clerk", "newpassword")
	require.NoError(t, err)
}
