package models

import "time"

// Achievement records a milestone reached by the organization.
// Date is when the achievement occurred, supplied by the caller;
// it is not a creation timestamp.
type Achievement struct {
	ID          string    `json:"id" example:"ach-1"`
	AuthorID    string    `json:"authorId" example:"user-2"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Date        time.Time `json:"date" example:"2023-11-20T00:00:00Z"`
}
