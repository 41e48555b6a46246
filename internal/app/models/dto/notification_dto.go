package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// NotificationResponse represents a system notification
type NotificationResponse struct {
	ID        string    `json:"id" example:"notif-1"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// NotificationListResponse lists notifications newest first with an unread count
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// ToNotificationResponse maps a notification model to its response representation
func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	}
}

// ToNotificationResponses maps a slice of notifications
func ToNotificationResponses(items []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToNotificationResponse(&items[i]))
	}
	return responses
}
