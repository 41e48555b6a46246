package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

// UserService defines the interface for member management operations
type UserService interface {
	GetMembers() []dto.UserResponse
	AddMember(actorRole models.Role, req *dto.CreateMemberRequest) (*dto.UserResponse, error)
	RemoveMember(actorRole models.Role, userID string, confirmed bool) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	store   *store.Store
	authzSv *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(store *store.Store, authzSv *auth.AuthorizationService, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		store:   store,
		authzSv: authzSv,
		logger:  logger,
	}
}

// GetMembers returns the member directory
func (s *userServiceImpl) GetMembers() []dto.UserResponse {
	return dto.ToUserResponses(s.store.Users())
}

// AddMember creates a MEMBER account. Only admins may do this. The
// email address and avatar are derived from the submitted identity.
func (s *userServiceImpl) AddMember(actorRole models.Role, req *dto.CreateMemberRequest) (*dto.UserResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageMembers); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	username := strings.TrimSpace(req.Username)
	if name == "" || username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Name, username and password are required")
	}

	if _, exists := s.store.UserByUsername(username); exists {
		return nil, apperrors.NewCustomError(apperrors.ErrUsernameTaken, "Username is already taken")
	}

	user := models.User{
		ID:        store.NewID("user"),
		Name:      name,
		Username:  username,
		Password:  req.Password,
		Email:     fmt.Sprintf("%s@parivartan-miet.org", strings.ToLower(username)),
		Role:      models.RoleMember,
		AvatarURL: fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name)),
	}
	s.store.InsertUser(user)

	s.logger.Info().
		Str("userID", user.ID).
		Str("username", user.Username).
		Msg("Member added")

	resp := dto.ToUserResponse(&user)
	return &resp, nil
}

// RemoveMember deletes a member account and all of their posts. Only
// admins may do this, and the caller must confirm the deletion.
// Removing an id that no longer exists is a silent no-op.
func (s *userServiceImpl) RemoveMember(actorRole models.Role, userID string, confirmed bool) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageMembers); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	if user, found := s.store.UserByID(userID); found && user.Role == models.RoleAdmin {
		return apperrors.NewForbiddenError("Admin accounts cannot be removed")
	}

	if !s.store.DeleteUser(userID) {
		s.logger.Debug().
			Str("userID", userID).
			Msg("Remove member skipped, user not found")
		return nil
	}

	removed := s.store.DeletePostsByAuthor(userID)

	s.logger.Info().
		Str("userID", userID).
		Int("postsRemoved", removed).
		Msg("Member removed")
	return nil
}
