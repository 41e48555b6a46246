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

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	GetAnnouncements() []dto.AnnouncementResponse
	CreateAnnouncement(actorID string, actorRole models.Role, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	UpdateAnnouncement(actorRole models.Role, announcementID string, req *dto.UpdateAnnouncementRequest) error
	DeleteAnnouncement(actorID string, actorRole models.Role, announcementID string, confirmed bool) error
}

// announcementServiceImpl implements AnnouncementService
type announcementServiceImpl struct {
	store         *store.Store
	authzSv       *auth.AuthorizationService
	notifications NotificationService
	logger        zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	store *store.Store,
	authzSv *auth.AuthorizationService,
	notifications NotificationService,
	logger zerolog.Logger,
) AnnouncementService {
	return &announcementServiceImpl{
		store:         store,
		authzSv:       authzSv,
		notifications: notifications,
		logger:        logger,
	}
}

// GetAnnouncements returns announcements newest first
func (s *announcementServiceImpl) GetAnnouncements() []dto.AnnouncementResponse {
	return dto.ToAnnouncementResponses(s.store.Announcements())
}

// CreateAnnouncement adds an announcement and emits a notification
func (s *announcementServiceImpl) CreateAnnouncement(actorID string, actorRole models.Role, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAnnouncements); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("Title and content are required")
	}

	a := models.Announcement{
		ID:        store.NewID("ann"),
		AuthorID:  actorID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	s.store.InsertAnnouncement(a)
	s.notifications.NotifyAnnouncement(a.Title)

	s.logger.Info().
		Str("announcementID", a.ID).
		Str("authorID", actorID).
		Msg("Announcement created")

	resp := dto.ToAnnouncementResponse(&a)
	return &resp, nil
}

// UpdateAnnouncement merges non-nil fields into the announcement. Any
// member or admin may edit any announcement regardless of authorship.
// Updating an id that no longer exists is a silent no-op, and no new
// notification is emitted.
func (s *announcementServiceImpl) UpdateAnnouncement(actorRole models.Role, announcementID string, req *dto.UpdateAnnouncementRequest) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAnnouncements); err != nil {
		return err
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return apperrors.NewValidationError("Title cannot be empty")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return apperrors.NewValidationError("Content cannot be empty")
	}

	found := s.store.UpdateAnnouncement(announcementID, func(a *models.Announcement) {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Content != nil {
			a.Content = *req.Content
		}
	})
	if !found {
		s.logger.Debug().
			Str("announcementID", announcementID).
			Msg("Update announcement skipped, not found")
		return nil
	}

	s.logger.Info().
		Str("announcementID", announcementID).
		Msg("Announcement updated")
	return nil
}

// DeleteAnnouncement removes an announcement. Unlike edits, deletion is
// restricted to the author or an admin. Deleting an id that no longer
// exists is a silent no-op.
func (s *announcementServiceImpl) DeleteAnnouncement(actorID string, actorRole models.Role, announcementID string, confirmed bool) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAnnouncements); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	a, found := s.store.AnnouncementByID(announcementID)
	if !found {
		s.logger.Debug().
			Str("announcementID", announcementID).
			Msg("Delete announcement skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, a.AuthorID); err != nil {
		return err
	}

	s.store.DeleteAnnouncement(announcementID)

	s.logger.Info().
		Str("announcementID", announcementID).
		Str("actorID", actorID).
		Msg("Announcement deleted")
	return nil
}
