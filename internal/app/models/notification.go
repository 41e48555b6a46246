package models

import "time"

// Notification is a system-generated notice. Only announcement and
// event creation produce notifications; users never create them directly.
type Notification struct {
	ID        string    `json:"id" example:"notif-1"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
	Read      bool      `json:"read"`
}
