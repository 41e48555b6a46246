package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
)

// NotificationService defines the interface for system notifications.
// Notifications are emitted by other services when announcements and
// events are created; users can only list them and mark them read.
type NotificationService interface {
	GetNotifications() dto.NotificationListResponse
	MarkRead(notificationID string)
	NotifyAnnouncement(title string)
	NotifyEvent(title string)
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(store *store.Store, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		store:  store,
		logger: logger,
	}
}

// GetNotifications returns all notifications, newest first, along with
// the unread count
func (s *notificationServiceImpl) GetNotifications() dto.NotificationListResponse {
	return dto.NotificationListResponse{
		Notifications: dto.ToNotificationResponses(s.store.Notifications()),
		UnreadCount:   s.store.UnreadNotificationCount(),
	}
}

// MarkRead marks a notification as read. Marking an already-read or
// missing notification is a no-op.
func (s *notificationServiceImpl) MarkRead(notificationID string) {
	changed, found := s.store.MarkNotificationRead(notificationID)
	if !found {
		s.logger.Debug().
			Str("notificationID", notificationID).
			Msg("Mark read skipped, notification not found")
		return
	}
	if changed {
		s.logger.Debug().
			Str("notificationID", notificationID).
			Msg("Notification marked read")
	}
}

// NotifyAnnouncement emits the notification for a new announcement
func (s *notificationServiceImpl) NotifyAnnouncement(title string) {
	s.emit(fmt.Sprintf("New Announcement: %q", title))
}

// NotifyEvent emits the notification for a new event
func (s *notificationServiceImpl) NotifyEvent(title string) {
	s.emit(fmt.Sprintf("New Event Posted: %q", title))
}

func (s *notificationServiceImpl) emit(content string) {
	n := models.Notification{
		ID:        store.NewID("notif"),
		Content:   content,
		CreatedAt: time.Now(),
		Read:      false,
	}
	s.store.InsertNotification(n)

	s.logger.Info().
		Str("notificationID", n.ID).
		Str("content", content).
		Msg("Notification emitted")
}
