package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// SendChatMessageRequest represents an outgoing group chat message.
// At least one of content/imageUrl must be present.
type SendChatMessageRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// ChatMessageResponse represents a group chat message
type ChatMessageResponse struct {
	ID        string    `json:"id" example:"msg-1"`
	AuthorID  string    `json:"authorId" example:"user-2"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToChatMessageResponse maps a chat message model to its response representation
func ToChatMessageResponse(m *models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
}

// ToChatMessageResponses maps a slice of chat messages
func ToChatMessageResponses(items []models.ChatMessage) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToChatMessageResponse(&items[i]))
	}
	return responses
}
