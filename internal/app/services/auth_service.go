package services

import (
	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
	"github.com/hayat/parivartan/internal/pkg/auth"
	"github.com/hayat/parivartan/internal/seed"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(username, password string) (*dto.AuthResponse, error)
	ViewerLogin() (*dto.AuthResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store      *store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      store,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user by username and password. The username
// match is case-insensitive, the password match is exact. Failures are
// reported with a single generic error so callers cannot distinguish an
// unknown username from a wrong password.
func (s *authServiceImpl) Login(username, password string) (*dto.AuthResponse, error) {
	user, found := s.store.UserByUsername(username)
	if !found || user.Password != password {
		s.logger.Warn().
			Str("username", username).
			Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		s.logger.Error().Err(err).
			Str("userID", user.ID).
			Msg("Failed to sign access token")
		return nil, err
	}

	s.logger.Info().
		Str("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("User logged in")

	resp := dto.NewAuthResponse(&user, token, expiresIn)
	return &resp, nil
}

// ViewerLogin issues a read-only session without credentials. All
// viewers share the same guest identity.
func (s *authServiceImpl) ViewerLogin() (*dto.AuthResponse, error) {
	viewer := seed.ViewerUser

	token, expiresIn, err := s.jwtService.GenerateToken(&viewer)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to sign viewer token")
		return nil, err
	}

	s.logger.Info().Msg("Viewer session started")

	resp := dto.NewAuthResponse(&viewer, token, expiresIn)
	return &resp, nil
}
