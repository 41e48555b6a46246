package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

func newAnnouncementFixture() (*store.Store, AnnouncementService) {
	s := newSeededStore()
	notifications := NewNotificationService(s, testLogger())
	return s, NewAnnouncementService(s, testAuthz(), notifications, testLogger())
}

func TestCreateAnnouncement_EmitsNotification(t *testing.T) {
	s, svc := newAnnouncementFixture()

	created, err := svc.CreateAnnouncement("user-2", models.RoleMember, &dto.CreateAnnouncementRequest{
		Title:   "Library Hours Extended",
		Content: "The library stays open until 9 PM during exam week.",
	})
	require.NoError(t, err)

	announcements := s.Announcements()
	assert.Equal(t, created.ID, announcements[0].ID)

	notifications := s.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, fmt.Sprintf("New Announcement: %q", "Library Hours Extended"), notifications[0].Content)
	assert.False(t, notifications[0].Read)
}

func TestCreateAnnouncement_GuestDenied(t *testing.T) {
	_, svc := newAnnouncementFixture()

	_, err := svc.CreateAnnouncement("guest", models.RoleGuest, &dto.CreateAnnouncementRequest{
		Title:   "x",
		Content: "y",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreateAnnouncement_Validation(t *testing.T) {
	_, svc := newAnnouncementFixture()

	_, err := svc.CreateAnnouncement("user-2", models.RoleMember, &dto.CreateAnnouncementRequest{
		Title:   "Missing body",
		Content: "  ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateAnnouncement_AnyMemberMayEdit(t *testing.T) {
	s, svc := newAnnouncementFixture()

	// ann-1 was authored by user-1; a different member may still edit it
	err := svc.UpdateAnnouncement(models.RoleMember, "ann-1", &dto.UpdateAnnouncementRequest{
		Content: strPtr("Updated: we now need 3 more volunteers."),
	})
	require.NoError(t, err)

	a, found := s.AnnouncementByID("ann-1")
	require.True(t, found)
	assert.Equal(t, "Updated: we now need 3 more volunteers.", a.Content)
	// Untouched fields keep their values
	assert.Equal(t, "Urgent: Volunteer Requirement for Weekend Classes", a.Title)
}

func TestUpdateAnnouncement_GuestDenied(t *testing.T) {
	_, svc := newAnnouncementFixture()

	err := svc.UpdateAnnouncement(models.RoleGuest, "ann-1", &dto.UpdateAnnouncementRequest{
		Content: strPtr("nope"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateAnnouncement_EmptyFieldRejected(t *testing.T) {
	_, svc := newAnnouncementFixture()

	err := svc.UpdateAnnouncement(models.RoleMember, "ann-1", &dto.UpdateAnnouncementRequest{
		Title: strPtr("   "),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateAnnouncement_MissingIDIsNoOp(t *testing.T) {
	s, svc := newAnnouncementFixture()
	before := len(s.Notifications())

	err := svc.UpdateAnnouncement(models.RoleMember, "ann-gone", &dto.UpdateAnnouncementRequest{
		Content: strPtr("anything"),
	})
	assert.NoError(t, err)
	// Updates never emit notifications
	assert.Len(t, s.Notifications(), before)
}

func TestDeleteAnnouncement_AuthorOnly(t *testing.T) {
	s, svc := newAnnouncementFixture()

	// ann-1 was authored by user-1; unlike edits, deletion stays with
	// the author or an admin
	err := svc.DeleteAnnouncement("user-2", models.RoleMember, "ann-1", true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteAnnouncement("user-1", models.RoleAdmin, "ann-1", true)
	require.NoError(t, err)

	_, found := s.AnnouncementByID("ann-1")
	assert.False(t, found)
}

func TestDeleteAnnouncement_RequiresConfirmation(t *testing.T) {
	_, svc := newAnnouncementFixture()

	err := svc.DeleteAnnouncement("user-1", models.RoleAdmin, "ann-1", false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
}
