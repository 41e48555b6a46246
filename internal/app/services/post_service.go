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

// PostService defines the interface for community feed operations
type PostService interface {
	GetPosts() []dto.PostResponse
	CreatePost(actorID string, actorRole models.Role, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	DeletePost(actorID string, actorRole models.Role, postID string, confirmed bool) error
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	store   *store.Store
	authzSv *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(store *store.Store, authzSv *auth.AuthorizationService, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		store:   store,
		authzSv: authzSv,
		logger:  logger,
	}
}

// GetPosts returns the feed, newest first
func (s *postServiceImpl) GetPosts() []dto.PostResponse {
	return dto.ToPostResponses(s.store.Posts())
}

// CreatePost adds a post to the head of the feed
func (s *postServiceImpl) CreatePost(actorID string, actorRole models.Role, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityCreatePost); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("Post content is required")
	}

	post := models.Post{
		ID:        store.NewID("post"),
		AuthorID:  actorID,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}
	s.store.InsertPost(post)

	s.logger.Info().
		Str("postID", post.ID).
		Str("authorID", actorID).
		Msg("Post created")

	resp := dto.ToPostResponse(&post)
	return &resp, nil
}

// DeletePost removes a post. Authors may delete their own posts and
// admins may delete any post. Deleting an id that no longer exists is
// a silent no-op.
func (s *postServiceImpl) DeletePost(actorID string, actorRole models.Role, postID string, confirmed bool) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityCreatePost); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	post, found := s.store.PostByID(postID)
	if !found {
		s.logger.Debug().
			Str("postID", postID).
			Msg("Delete post skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, post.AuthorID); err != nil {
		return err
	}

	s.store.DeletePost(postID)

	s.logger.Info().
		Str("postID", postID).
		Str("actorID", actorID).
		Msg("Post deleted")
	return nil
}
