package models

import "time"

// Announcement is an organization-wide notice
type Announcement struct {
	ID        string    `json:"id" example:"ann-1"`
	AuthorID  string    `json:"authorId" example:"user-1"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}
