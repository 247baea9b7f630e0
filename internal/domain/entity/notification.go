package entity

import "time"

// Notification is one entry of a user's notification collection, stored
// most-recent-first.
type Notification struct {
	ID        string    `json:"id" validate:"required"` // Timestamp-derived identifier.
	Type      string    `json:"type"`                   // Event type, e.g. "request_approved".
	Title     string    `json:"title"`                  // Short headline.
	Message   string    `json:"message"`                // Display text.
	RelatedID string    `json:"relatedId,omitempty"`    // Optional id of the request or inquiry involved.
	Timestamp time.Time `json:"timestamp"`              // Creation time.
	Read      bool      `json:"read"`                   // Set once opened.
}
