package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

func TestGetMessages_OldestFirst(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	messages, err := svc.GetMessages(models.RoleMember)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "chat-1", messages[0].ID)
	assert.Equal(t, "chat-3", messages[2].ID)
}

func TestGetMessages_GuestDenied(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	messages, err := svc.GetMessages(models.RoleGuest)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Nil(t, messages)
}

func TestSendMessage_AppendsToHistory(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	sent, err := svc.SendMessage("user-2", models.RoleMember, &dto.SendChatMessageRequest{
		Content: "Who is bringing the projector?",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-2", sent.AuthorID)
	assert.False(t, sent.CreatedAt.IsZero())

	messages, err := svc.GetMessages(models.RoleMember)
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, sent.ID, messages[3].ID)
}

func TestSendMessage_ImageOnly(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	sent, err := svc.SendMessage("user-3", models.RoleMember, &dto.SendChatMessageRequest{
		ImageURL: "https://example.com/photo.jpg",
	})
	require.NoError(t, err)
	assert.Empty(t, sent.Content)
	assert.Equal(t, "https://example.com/photo.jpg", sent.ImageURL)
}

func TestSendMessage_GuestDenied(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	_, err := svc.SendMessage("guest", models.RoleGuest, &dto.SendChatMessageRequest{
		Content: "hello",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestSendMessage_NeedsTextOrImage(t *testing.T) {
	svc := NewChatService(newSeededStore(), testAuthz(), testLogger())

	_, err := svc.SendMessage("user-2", models.RoleMember, &dto.SendChatMessageRequest{
		Content:  "   ",
		ImageURL: "",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSaveIncoming_PersistsSocketMessages(t *testing.T) {
	s := newSeededStore()
	svc := NewChatService(s, testAuthz(), testLogger())

	saved, err := svc.SaveIncoming("user-1", "Joining in five minutes.", "")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	messages := s.ChatMessages()
	assert.Equal(t, saved.ID, messages[len(messages)-1].ID)
}
