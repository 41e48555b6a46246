package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// CreateAchievementRequest represents the data for a new achievement
type CreateAchievementRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    string    `json:"imageUrl" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateAchievementRequest represents a partial achievement update.
// Nil fields are left untouched.
type UpdateAchievementRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	Date        *time.Time `json:"date"`
}

// AchievementResponse represents an achievement
type AchievementResponse struct {
	ID          string    `json:"id" example:"ach-1"`
	AuthorID    string    `json:"authorId" example:"user-1"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Date        time.Time `json:"date"`
}

// ToAchievementResponse maps an achievement model to its response representation
func ToAchievementResponse(a *models.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID,
		AuthorID:    a.AuthorID,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		Date:        a.Date,
	}
}

// ToAchievementResponses maps a slice of achievements
func ToAchievementResponses(items []models.Achievement) []AchievementResponse {
	responses := make([]AchievementResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToAchievementResponse(&items[i]))
	}
	return responses
}
