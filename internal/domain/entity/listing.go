package entity

import (
	"strings"
	"time"
)

// ListingStatusActive is the status assigned to every submitted listing.
const ListingStatusActive = "active"

// UnknownProduct is displayed when a request points at a deleted listing.
const UnknownProduct = "Unknown Product"

// Listing is a sellable product offering owned by a farmer or seller.
type Listing struct {
	ID             string    `json:"id" validate:"required"` // Timestamp-derived identifier.
	Title          string    `json:"title"`                  // Product title.
	Category       string    `json:"category"`               // Category key, see CategoryDisplayName.
	Price          float64   `json:"price"`                  // Price per PriceUnit, > 0 when validated.
	PriceUnit      string    `json:"priceUnit"`              // Pricing unit token, e.g. "kg" or "$ per kg".
	Unit           string    `json:"unit"`                   // Unit of the available quantity.
	Quantity       float64   `json:"quantity"`               // Available quantity, > 0 when validated.
	MinOrder       *float64  `json:"minOrder,omitempty"`     // Optional minimum order quantity.
	Location       string    `json:"location"`               // Free-text pickup location.
	Description    string    `json:"description"`            // Product description.
	Certifications []string  `json:"certifications"`         // Selected certification labels.
	Owner          string    `json:"owner"`                  // Owner email (User.Email).
	CreatedAt      time.Time `json:"createdAt"`              // Creation timestamp, kept on edit.
	Status         string    `json:"status"`                 // "active" once submitted.
}

// OwnedBy reports whether email owns the listing.
func (l *Listing) OwnedBy(email string) bool {
	return l.Owner == email
}

// HasCertifications reports whether the listing carries every certification in required.
func (l *Listing) HasCertifications(required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range l.Certifications {
			if strings.EqualFold(have, want) {
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// ListingTitle returns the listing's title, or fallback for a nil listing.
func ListingTitle(l *Listing, fallback string) string {
	if l == nil {
		return fallback
	}

	return l.Title
}
