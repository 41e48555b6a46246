package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		capability Capability
		want       bool
	}{
		{"admin can manage members", models.RoleAdmin, CapabilityManageMembers, true},
		{"admin can post", models.RoleAdmin, CapabilityCreatePost, true},
		{"member can post", models.RoleMember, CapabilityCreatePost, true},
		{"member can chat", models.RoleMember, CapabilityChat, true},
		{"member can use AI tools", models.RoleMember, CapabilityAITools, true},
		{"member cannot manage members", models.RoleMember, CapabilityManageMembers, false},
		{"guest cannot post", models.RoleGuest, CapabilityCreatePost, false},
		{"guest cannot chat", models.RoleGuest, CapabilityChat, false},
		{"guest cannot use AI tools", models.RoleGuest, CapabilityAITools, false},
		{"unknown role has no capabilities", models.Role("WEIRD"), CapabilityCreatePost, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCapability(tt.role, tt.capability))
		})
	}
}

func TestRequireCapability(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.RequireCapability(models.RoleMember, CapabilityChat))

	err := svc.RequireCapability(models.RoleGuest, CapabilityChat)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCanModify(t *testing.T) {
	svc := NewAuthorizationService()

	// Admins may modify anyone's content
	assert.True(t, svc.CanModify("user-1", models.RoleAdmin, "user-2"))

	// Members may only modify their own
	assert.True(t, svc.CanModify("user-2", models.RoleMember, "user-2"))
	assert.False(t, svc.CanModify("user-2", models.RoleMember, "user-3"))

	assert.False(t, svc.CanModify("guest", models.RoleGuest, "user-2"))
}

func TestRequireModify(t *testing.T) {
	svc := NewAuthorizationService()

	assert.NoError(t, svc.RequireModify("user-2", models.RoleMember, "user-2"))

	err := svc.RequireModify("user-2", models.RoleMember, "user-3")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
