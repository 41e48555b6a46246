package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// CreatePostRequest represents the data for a new community post
type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// PostResponse represents a community post
type PostResponse struct {
	ID        string    `json:"id" example:"post-1"`
	AuthorID  string    `json:"authorId" example:"user-2"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPostResponse maps a post model to its response representation
func ToPostResponse(post *models.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
	}
}

// ToPostResponses maps a slice of posts
func ToPostResponses(posts []models.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToPostResponse(&posts[i]))
	}
	return responses
}
