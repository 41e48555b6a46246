package models

import "time"

// Event is a scheduled activity. Date determines the upcoming/past
// classification relative to wall-clock time at read time.
type Event struct {
	ID               string    `json:"id" example:"event-1"`
	AuthorID         string    `json:"authorId" example:"user-2"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date" example:"2024-06-15T16:00:00Z"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	RegistrationLink string    `json:"registrationLink"`
}

// IsPast reports whether the event occurred before the given instant
func (e Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}
