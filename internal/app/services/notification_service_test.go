package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/store"
)

func TestNotifyAnnouncementAndEvent(t *testing.T) {
	s := store.New()
	svc := NewNotificationService(s, testLogger())

	svc.NotifyAnnouncement("Weekend Classes")
	svc.NotifyEvent("Book Drive")

	resp := svc.GetNotifications()
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, 2, resp.UnreadCount)

	// Newest first
	assert.Equal(t, `New Event Posted: "Book Drive"`, resp.Notifications[0].Content)
	assert.Equal(t, `New Announcement: "Weekend Classes"`, resp.Notifications[1].Content)
}

func TestMarkRead(t *testing.T) {
	s := store.New()
	svc := NewNotificationService(s, testLogger())
	svc.NotifyEvent("Book Drive")

	id := svc.GetNotifications().Notifications[0].ID

	svc.MarkRead(id)
	resp := svc.GetNotifications()
	assert.Equal(t, 0, resp.UnreadCount)
	assert.True(t, resp.Notifications[0].Read)

	// Marking again or marking a missing id is a no-op
	svc.MarkRead(id)
	svc.MarkRead("notif-gone")
	assert.Equal(t, 0, svc.GetNotifications().UnreadCount)
}
