package models

import "time"

// ChatMessage is a message in the organization-wide group chat.
// At least one of Content/ImageURL is present. Messages are append-only.
type ChatMessage struct {
	ID        string    `json:"id" example:"msg-1"`
	AuthorID  string    `json:"authorId" example:"user-2"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"`
}
