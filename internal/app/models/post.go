package models

import "time"

// Post is a feed entry authored by a member
type Post struct {
	ID        string    `json:"id" example:"post-1"`
	AuthorID  string    `json:"authorId" example:"user-2"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T10:00:00Z"` // Assigned at creation, immutable
}
