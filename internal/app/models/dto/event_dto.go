package dto

import (
	"time"

	"github.com/hayat/parivartan/internal/app/models"
)

// CreateEventRequest represents the data for a new event
type CreateEventRequest struct {
	Title            string    `json:"title" binding:"required"`
	Description      string    `json:"description" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	ImageURL         string    `json:"imageUrl"`
	RegistrationLink string    `json:"registrationLink" binding:"required"`
}

// UpdateEventRequest represents a partial event update.
// Nil fields are left untouched.
type UpdateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	ImageURL         *string    `json:"imageUrl"`
	RegistrationLink *string    `json:"registrationLink"`
}

// EventResponse represents an event
type EventResponse struct {
	ID               string    `json:"id" example:"event-1"`
	AuthorID         string    `json:"authorId" example:"user-1"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	RegistrationLink string    `json:"registrationLink,omitempty"`
}

// EventListResponse splits events into upcoming and past relative to
// the time of the request. Upcoming events are ordered soonest first,
// past events most recent first.
type EventListResponse struct {
	Upcoming []EventResponse `json:"upcoming"`
	Past     []EventResponse `json:"past"`
}

// ToEventResponse maps an event model to its response representation
func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		AuthorID:         e.AuthorID,
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		ImageURL:         e.ImageURL,
		RegistrationLink: e.RegistrationLink,
	}
}

// ToEventResponses maps a slice of events
func ToEventResponses(items []models.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToEventResponse(&items[i]))
	}
	return responses
}
