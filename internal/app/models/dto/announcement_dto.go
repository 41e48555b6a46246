package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// CreateAnnouncementRequest represents the data for a new announcement
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateAnnouncementRequest represents a partial announcement update.
// Nil fields are left untouched.
type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// AnnouncementResponse represents an announcement
type AnnouncementResponse struct {
	ID        string    `json:"id" example:"ann-1"`
	AuthorID  string    `json:"authorId" example:"user-1"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAnnouncementResponse maps an announcement model to its response representation
func ToAnnouncementResponse(a *models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		AuthorID:  a.AuthorID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

// ToAnnouncementResponses maps a slice of announcements
func ToAnnouncementResponses(items []models.Announcement) []AnnouncementResponse {
	responses := make([]AnnouncementResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToAnnouncementResponse(&items[i]))
	}
	return responses
}
