package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

// AchievementService defines the interface for achievement operations
type AchievementService interface {
	GetAchievements() []dto.AchievementResponse
	CreateAchievement(actorID string, actorRole models.Role, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error)
	UpdateAchievement(actorID string, actorRole models.Role, achievementID string, req *dto.UpdateAchievementRequest) error
	DeleteAchievement(actorID string, actorRole models.Role, achievementID string, confirmed bool) error
}

// achievementServiceImpl implements AchievementService
type achievementServiceImpl struct {
	store   *store.Store
	authzSv *auth.AuthorizationService
	logger  zerolog.Logger
}

// NewAchievementService creates a new AchievementService
func NewAchievementService(store *store.Store, authzSv *auth.AuthorizationService, logger zerolog.Logger) AchievementService {
	return &achievementServiceImpl{
		store:   store,
		authzSv: authzSv,
		logger:  logger,
	}
}

// GetAchievements returns achievements ordered by occurrence date, most
// recent first
func (s *achievementServiceImpl) GetAchievements() []dto.AchievementResponse {
	return dto.ToAchievementResponses(s.store.Achievements())
}

// CreateAchievement records a new achievement. Achievements do not emit
// notifications.
func (s *achievementServiceImpl) CreateAchievement(actorID string, actorRole models.Role, req *dto.CreateAchievementRequest) (*dto.AchievementResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAchievements); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("Title and description are required")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, apperrors.NewValidationError("Image is required")
	}
	if req.Date.IsZero() {
		return nil, apperrors.NewValidationError("Date is required")
	}

	a := models.Achievement{
		ID:          store.NewID("ach"),
		AuthorID:    actorID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
	}
	s.store.InsertAchievement(a)

	s.logger.Info().
		Str("achievementID", a.ID).
		Str("authorID", actorID).
		Msg("Achievement created")

	resp := dto.ToAchievementResponse(&a)
	return &resp, nil
}

// UpdateAchievement merges non-nil fields into the achievement. Only
// the author or an admin may edit. Updating an id that no longer exists
// is a silent no-op.
func (s *achievementServiceImpl) UpdateAchievement(actorID string, actorRole models.Role, achievementID string, req *dto.UpdateAchievementRequest) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAchievements); err != nil {
		return err
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return apperrors.NewValidationError("Title cannot be empty")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return apperrors.NewValidationError("Description cannot be empty")
	}

	a, found := s.store.AchievementByID(achievementID)
	if !found {
		s.logger.Debug().
			Str("achievementID", achievementID).
			Msg("Update achievement skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, a.AuthorID); err != nil {
		return err
	}

	s.store.UpdateAchievement(achievementID, func(a *models.Achievement) {
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Description != nil {
			a.Description = *req.Description
		}
		if req.ImageURL != nil {
			a.ImageURL = *req.ImageURL
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
	})

	s.logger.Info().
		Str("achievementID", achievementID).
		Msg("Achievement updated")
	return nil
}

// DeleteAchievement removes an achievement. Only the author or an admin
// may delete. Deleting an id that no longer exists is a silent no-op.
func (s *achievementServiceImpl) DeleteAchievement(actorID string, actorRole models.Role, achievementID string, confirmed bool) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageAchievements); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	a, found := s.store.AchievementByID(achievementID)
	if !found {
		s.logger.Debug().
			Str("achievementID", achievementID).
			Msg("Delete achievement skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, a.AuthorID); err != nil {
		return err
	}

	s.store.DeleteAchievement(achievementID)

	s.logger.Info().
		Str("achievementID", achievementID).
		Str("actorID", actorID).
		Msg("Achievement deleted")
	return nil
}
