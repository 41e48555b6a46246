package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
	"github.com/hayat/parivartan/internal/pkg/auth"
	"github.com/hayat/parivartan/internal/seed"
)

func newAuthService() AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "parivartan-test",
	})
	return NewAuthService(newSeededStore(), jwtService, testLogger())
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService()

	resp, err := svc.Login(seed.AdminUsername, seed.AdminPassword)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, 3600, resp.Token.ExpiresIn)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, string(models.RoleAdmin), resp.User.Role)
}

func TestLogin_UsernameCaseInsensitive(t *testing.T) {
	svc := newAuthService()

	resp, err := svc.Login("BEINGHAYAT", seed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.User.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService()

	// Wrong password and unknown username produce the same error so
	// callers cannot probe for valid usernames
	_, err := svc.Login(seed.AdminUsername, "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_PasswordCaseSensitive(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(seed.AdminUsername, "HAYAT@MIET")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestViewerLogin(t *testing.T) {
	svc := newAuthService()

	resp, err := svc.ViewerLogin()
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "guest", resp.User.ID)
	assert.Equal(t, string(models.RoleGuest), resp.User.Role)
}
