package entity

import "time"

const (
	// UnknownFacility is displayed when an inquiry points at a deleted facility.
	UnknownFacility = "Unknown Facility"
	// UnknownService is displayed when an inquiry points at a deleted service.
	UnknownService = "Unknown Service"
)

// Facility is a storage offering owned by a storage provider.
type Facility struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"` // per day
	Location    string    `json:"location"`
	Capacity    *float64  `json:"capacity,omitempty"` // tons
	Temperature string    `json:"temperature,omitempty"`
	Description string    `json:"description,omitempty"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Service is a logistics offering owned by a logistics provider.
type Service struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Capacity    *float64  `json:"capacity,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}
