package auth

import (
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

// Capability names an action a role may perform
type Capability string

const (
	CapabilityCreatePost          Capability = "CREATE_POST"
	CapabilityManageAnnouncements Capability = "MANAGE_ANNOUNCEMENTS"
	CapabilityManageAchievements  Capability = "MANAGE_ACHIEVEMENTS"
	CapabilityManageEvents        Capability = "MANAGE_EVENTS"
	CapabilityChat                Capability = "CHAT"
	CapabilityAITools             Capability = "AI_TOOLS"
	CapabilityManageMembers       Capability = "MANAGE_MEMBERS"
)

// CapabilitiesFor resolves the full capability set for a role.
// Roles are fixed; there is no per-user grant mechanism.
func CapabilitiesFor(role models.Role) map[Capability]bool {
	switch role {
	case models.RoleAdmin:
		return map[Capability]bool{
			CapabilityCreatePost:          true,
			CapabilityManageAnnouncements: true,
			CapabilityManageAchievements:  true,
			CapabilityManageEvents:        true,
			CapabilityChat:                true,
			CapabilityAITools:             true,
			CapabilityManageMembers:       true,
		}
	case models.RoleMember:
		return map[Capability]bool{
			CapabilityCreatePost:          true,
			CapabilityManageAnnouncements: true,
			CapabilityManageAchievements:  true,
			CapabilityManageEvents:        true,
			CapabilityChat:                true,
			CapabilityAITools:             true,
		}
	default:
		// Guests can only read
		return map[Capability]bool{}
	}
}

// HasCapability reports whether the role holds the capability
func HasCapability(role models.Role, capability Capability) bool {
	return CapabilitiesFor(role)[capability]
}

// AuthorizationService answers ownership and capability questions for
// the request handlers
type AuthorizationService struct{}

// NewAuthorizationService creates an authorization service
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// RequireCapability returns a permission error unless the role holds
// the capability
func (s *AuthorizationService) RequireCapability(role models.Role, capability Capability) error {
	if !HasCapability(role, capability) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CanModify reports whether the actor may edit or delete content owned
// by authorID. Authors may modify their own content; admins may modify
// anyone's.
func (s *AuthorizationService) CanModify(actorID string, actorRole models.Role, authorID string) bool {
	if actorRole == models.RoleAdmin {
		return true
	}
	return actorID == authorID
}

// RequireModify returns a permission error unless CanModify holds
func (s *AuthorizationService) RequireModify(actorID string, actorRole models.Role, authorID string) error {
	if !s.CanModify(actorID, actorRole, authorID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
