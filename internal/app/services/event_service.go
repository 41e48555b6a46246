package services

import (
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hayat/parivartan/internal/app/auth"
	"github.com/hayat/parivartan/internal/app/models"
	"github.com/hayat/parivartan/internal/app/models/dto"
	"github.com/hayat/parivartan/internal/app/store"
	"github.com/hayat/parivartan/internal/pkg/apperrors"
)

// EventService defines the interface for event operations
type EventService interface {
	GetEvents() dto.EventListResponse
	CreateEvent(actorID string, actorRole models.Role, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	UpdateEvent(actorID string, actorRole models.Role, eventID string, req *dto.UpdateEventRequest) error
	DeleteEvent(actorID string, actorRole models.Role, eventID string, confirmed bool) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	store         *store.Store
	authzSv       *auth.AuthorizationService
	notifications NotificationService
	logger        zerolog.Logger
	now           func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(
	store *store.Store,
	authzSv *auth.AuthorizationService,
	notifications NotificationService,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		store:         store,
		authzSv:       authzSv,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// GetEvents returns events split into upcoming and past relative to the
// time of the call. An event's classification shifts automatically once
// its date passes; no write is involved. Upcoming events are ordered
// soonest first, past events most recent first.
func (s *eventServiceImpl) GetEvents() dto.EventListResponse {
	now := s.now()
	resp := dto.EventListResponse{
		Upcoming: []dto.EventResponse{},
		Past:     []dto.EventResponse{},
	}
	for _, e := range s.store.Events() {
		if e.IsPast(now) {
			resp.Past = append(resp.Past, dto.ToEventResponse(&e))
		} else {
			resp.Upcoming = append(resp.Upcoming, dto.ToEventResponse(&e))
		}
	}
	// The store keeps events most recent date first
	slices.Reverse(resp.Upcoming)
	return resp
}

// CreateEvent adds an event and emits a notification
func (s *eventServiceImpl) CreateEvent(actorID string, actorRole models.Role, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageEvents); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("Title and description are required")
	}
	if req.Date.IsZero() {
		return nil, apperrors.NewValidationError("Date is required")
	}
	if strings.TrimSpace(req.RegistrationLink) == "" {
		return nil, apperrors.NewValidationError("Registration link is required")
	}

	e := models.Event{
		ID:               store.NewID("event"),
		AuthorID:         actorID,
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		ImageURL:         req.ImageURL,
		RegistrationLink: req.RegistrationLink,
	}
	s.store.InsertEvent(e)
	s.notifications.NotifyEvent(e.Title)

	s.logger.Info().
		Str("eventID", e.ID).
		Str("authorID", actorID).
		Msg("Event created")

	resp := dto.ToEventResponse(&e)
	return &resp, nil
}

// UpdateEvent merges non-nil fields into the event. Only the author or
// an admin may edit. A date change can move the event between the
// upcoming and past groups. Updating an id that no longer exists is a
// silent no-op, and no new notification is emitted.
func (s *eventServiceImpl) UpdateEvent(actorID string, actorRole models.Role, eventID string, req *dto.UpdateEventRequest) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageEvents); err != nil {
		return err
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return apperrors.NewValidationError("Title cannot be empty")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return apperrors.NewValidationError("Description cannot be empty")
	}

	e, found := s.store.EventByID(eventID)
	if !found {
		s.logger.Debug().
			Str("eventID", eventID).
			Msg("Update event skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, e.AuthorID); err != nil {
		return err
	}

	s.store.UpdateEvent(eventID, func(e *models.Event) {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.ImageURL != nil {
			e.ImageURL = *req.ImageURL
		}
		if req.RegistrationLink != nil {
			e.RegistrationLink = *req.RegistrationLink
		}
	})

	s.logger.Info().
		Str("eventID", eventID).
		Msg("Event updated")
	return nil
}

// DeleteEvent removes an event. Only the author or an admin may delete.
// Deleting an id that no longer exists is a silent no-op.
func (s *eventServiceImpl) DeleteEvent(actorID string, actorRole models.Role, eventID string, confirmed bool) error {
	if err := s.authzSv.RequireCapability(actorRole, auth.CapabilityManageEvents); err != nil {
		return err
	}
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	e, found := s.store.EventByID(eventID)
	if !found {
		s.logger.Debug().
			Str("eventID", eventID).
			Msg("Delete event skipped, not found")
		return nil
	}

	if err := s.authzSv.RequireModify(actorID, actorRole, e.AuthorID); err != nil {
		return err
	}

	s.store.DeleteEvent(eventID)

	s.logger.Info().
		Str("eventID", eventID).
		Str("actorID", actorID).
		Msg("Event deleted")
	return nil
}
