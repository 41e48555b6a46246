package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

func newEventFixture() (*store.Store, *eventServiceImpl) {
	s := newSeededStore()
	notifications := NewNotificationService(s, testLogger())
	svc := NewEventService(s, testAuthz(), notifications, testLogger()).(*eventServiceImpl)
	return s, svc
}

func TestGetEvents_Partition(t *testing.T) {
	_, svc := newEventFixture()

	// event-1 is two weeks out, event-2 ran a month ago
	resp := svc.GetEvents()
	require.Len(t, resp.Upcoming, 1)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "event-1", resp.Upcoming[0].ID)
	assert.Equal(t, "event-2", resp.Past[0].ID)
}

func TestGetEvents_UpcomingSoonestFirst(t *testing.T) {
	_, svc := newEventFixture()

	for _, e := range []struct {
		title string
		days  int
	}{
		{"Far Event", 20},
		{"Near Event", 1},
	} {
		_, err := svc.CreateEvent("user-2", models.RoleMember, &dto.CreateEventRequest{
			Title:            e.title,
			Description:      "details",
			Date:             time.Now().Add(time.Duration(e.days) * 24 * time.Hour),
			RegistrationLink: "https://forms.gle/example",
		})
		require.NoError(t, err)
	}

	resp := svc.GetEvents()
	require.Len(t, resp.Upcoming, 3)
	assert.Equal(t, "Near Event", resp.Upcoming[0].Title)
	assert.Equal(t, "Community Book Drive", resp.Upcoming[1].Title)
	assert.Equal(t, "Far Event", resp.Upcoming[2].Title)
}

func TestGetEvents_ClassificationShiftsWithTime(t *testing.T) {
	_, svc := newEventFixture()

	// No write happens; the same event moves groups once its date passes
	svc.now = func() time.Time { return time.Now().Add(30 * 24 * time.Hour) }

	resp := svc.GetEvents()
	assert.Empty(t, resp.Upcoming)
	require.Len(t, resp.Past, 2)
	assert.Equal(t, "event-1", resp.Past[0].ID)
}

func TestGetEvents_EmptyStore(t *testing.T) {
	s := store.New()
	svc := NewEventService(s, testAuthz(), NewNotificationService(s, testLogger()), testLogger())

	resp := svc.GetEvents()
	assert.NotNil(t, resp.Upcoming)
	assert.NotNil(t, resp.Past)
	assert.Empty(t, resp.Upcoming)
	assert.Empty(t, resp.Past)
}

func TestCreateEvent_EmitsNotification(t *testing.T) {
	s, svc := newEventFixture()

	created, err := svc.CreateEvent("user-3", models.RoleMember, &dto.CreateEventRequest{
		Title:            "Health Camp",
		Description:      "Free checkups for the community.",
		Date:             time.Now().Add(7 * 24 * time.Hour),
		RegistrationLink: "https://forms.gle/healthcamp",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-3", created.AuthorID)

	notifications := s.Notifications()
	require.NotEmpty(t, notifications)
	assert.Equal(t, fmt.Sprintf("New Event Posted: %q", "Health Camp"), notifications[0].Content)
}

func TestCreateEvent_Validation(t *testing.T) {
	_, svc := newEventFixture()

	_, err := svc.CreateEvent("user-3", models.RoleMember, &dto.CreateEventRequest{
		Title:       "No date",
		Description: "Missing a date",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateEvent_DateChangeMovesGroups(t *testing.T) {
	_, svc := newEventFixture()

	// event-1 belongs to user-2 and is currently upcoming
	err := svc.UpdateEvent("user-2", models.RoleMember, "event-1", &dto.UpdateEventRequest{
		Date: timePtr(time.Now().Add(-48 * time.Hour)),
	})
	require.NoError(t, err)

	resp := svc.GetEvents()
	assert.Empty(t, resp.Upcoming)
	assert.Len(t, resp.Past, 2)
}

func TestUpdateEvent_NonAuthorMemberDenied(t *testing.T) {
	_, svc := newEventFixture()

	err := svc.UpdateEvent("user-3", models.RoleMember, "event-1", &dto.UpdateEventRequest{
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateEvent_MissingIDIsNoOp(t *testing.T) {
	s, svc := newEventFixture()
	before := len(s.Notifications())

	err := svc.UpdateEvent("user-2", models.RoleMember, "event-gone", &dto.UpdateEventRequest{
		Title: strPtr("anything"),
	})
	assert.NoError(t, err)
	assert.Len(t, s.Notifications(), before)
}

func TestDeleteEvent(t *testing.T) {
	s, svc := newEventFixture()

	err := svc.DeleteEvent("user-3", models.RoleMember, "event-1", true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteEvent("user-1", models.RoleAdmin, "event-1", false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)

	err = svc.DeleteEvent("user-1", models.RoleAdmin, "event-1", true)
	require.NoError(t, err)

	_, found := s.EventByID("event-1")
	assert.False(t, found)
}
