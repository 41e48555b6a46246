package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

func TestCreatePost_InsertsAtHead(t *testing.T) {
	svc := NewPostService(newSeededStore(), testAuthz(), testLogger())

	created, err := svc.CreatePost("user-2", models.RoleMember, &dto.CreatePostRequest{
		Content: "New teaching drive this Sunday!",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-2", created.AuthorID)

	posts := svc.GetPosts()
	require.Len(t, posts, 4)
	assert.Equal(t, created.ID, posts[0].ID)
}

func TestCreatePost_GuestDenied(t *testing.T) {
	svc := NewPostService(newSeededStore(), testAuthz(), testLogger())

	_, err := svc.CreatePost("guest", models.RoleGuest, &dto.CreatePostRequest{
		Content: "hello",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCreatePost_ContentRequired(t *testing.T) {
	svc := NewPostService(newSeededStore(), testAuthz(), testLogger())

	_, err := svc.CreatePost("user-2", models.RoleMember, &dto.CreatePostRequest{
		Content: "   ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeletePost_Owner(t *testing.T) {
	s := newSeededStore()
	svc := NewPostService(s, testAuthz(), testLogger())

	// post-1 belongs to user-2
	err := svc.DeletePost("user-2", models.RoleMember, "post-1", true)
	require.NoError(t, err)

	_, found := s.PostByID("post-1")
	assert.False(t, found)
}

func TestDeletePost_AdminDeletesAnyPost(t *testing.T) {
	s := newSeededStore()
	svc := NewPostService(s, testAuthz(), testLogger())

	err := svc.DeletePost("user-1", models.RoleAdmin, "post-2", true)
	require.NoError(t, err)

	_, found := s.PostByID("post-2")
	assert.False(t, found)
}

func TestDeletePost_NonOwnerMemberDenied(t *testing.T) {
	s := newSeededStore()
	svc := NewPostService(s, testAuthz(), testLogger())

	// post-1 belongs to user-2, not user-3
	err := svc.DeletePost("user-3", models.RoleMember, "post-1", true)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, found := s.PostByID("post-1")
	assert.True(t, found)
}

func TestDeletePost_RequiresConfirmation(t *testing.T) {
	svc := NewPostService(newSeededStore(), testAuthz(), testLogger())

	err := svc.DeletePost("user-2", models.RoleMember, "post-1", false)
	assert.ErrorIs(t, err, apperrors.ErrConfirmationRequired)
}

func TestDeletePost_MissingIDIsNoOp(t *testing.T) {
	svc := NewPostService(newSeededStore(), testAuthz(), testLogger())

	err := svc.DeletePost("user-2", models.RoleMember, "post-gone", true)
	assert.NoError(t, err)
}
