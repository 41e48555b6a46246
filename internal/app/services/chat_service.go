package services

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

// ChatService defines the interface for group chat operations. The chat
// room is members-only; guests can neither read nor write it. Both the
// REST endpoint and the WebSocket path persist through SendMessage so
// the chat history has a single writer.
type ChatService interface {
	GetMessages(actorRole models.Role) ([]dto.ChatMessageResponse, error)
	SendMessage(actorID string, actorRole models.Role, req *dto.SendChatMessageRequest) (*dto.ChatMessageResponse, error)

	// SaveIncoming implements websocket.MessagePersister for socket
	// clients whose role was checked at connection time
	SaveIncoming(authorID string, content, imageURL string) (dto.ChatMessageResponse, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	store   *store.Store
	authzSv *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(store *store.Store, authzSv *auth.AuthorizationService, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		store:   store,
		authzSv: authzSv,
		logger:  logger,
	}
}

// GetMessages returns the chat history, oldest first. The history is as
// private as the room itself, so reading requires the chat capability.
func (s *chatServiceImpl) GetMessages(actorRole models.Role) ([]dto.ChatMessageResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityChat); err != nil {
		return nil, err
	}
	return dto.ToChatMessageResponses(s.store.ChatMessages()), nil
}

// SendMessage appends a message to the chat history. Messages need text
// content, an image, or both.
func (s *chatServiceImpl) SendMessage(actorID string, actorRole models.Role, req *dto.SendChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityChat); err != nil {
		return nil, err
	}

	saved, err := s.SaveIncoming(actorID, req.Content, req.ImageURL)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveIncoming stamps and stores a chat message
func (s *chatServiceImpl) SaveIncoming(authorID string, content, imageURL string) (dto.ChatMessageResponse, error) {
	if strings.TrimSpace(content) == "" && strings.TrimSpace(imageURL) == "" {
		return dto.ChatMessageResponse{}, apperrors.NewValidationError("Message needs text or an image")
	}

	m := models.ChatMessage{
		ID:        store.NewID("chat"),
		AuthorID:  authorID,
		Content:   content,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}
	s.store.AppendChatMessage(m)

	s.logger.Debug().
		Str("messageID", m.ID).
		Str("authorID", authorID).
		Msg("Chat message stored")

	return dto.ToChatMessageResponse(&m), nil
}
