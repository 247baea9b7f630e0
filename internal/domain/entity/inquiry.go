package entity

import "time"

// InquiryKind selects the collection an inquiry belongs to.
type InquiryKind string

const (
	// InquiryLogistics targets a Service.
	InquiryLogistics InquiryKind = "logistics"
	// InquiryStorage targets a Facility.
	InquiryStorage InquiryKind = "storage"
)

// IsValid checks if the kind is known.
func (k InquiryKind) IsValid() bool {
	return k == InquiryLogistics || k == InquiryStorage
}

// Inquiry is a customer ask directed at a facility or service. It has no
// approval workflow.
type Inquiry struct {
	ID         string    `json:"id" validate:"required"`
	Customer   string    `json:"customer"`
	Provider   string    `json:"provider"`
	FacilityID string    `json:"facilityId,omitempty"`
	ServiceID  string    `json:"serviceId,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Requester returns the customer.
func (i *Inquiry) Requester() string { return i.Customer }

// ProviderEmail returns the offering owner.
func (i *Inquiry) ProviderEmail() string { return i.Provider }

// Kind derives the inquiry kind from the populated target id.
func (i *Inquiry) Kind() InquiryKind {
	if i.FacilityID != "" {
		return InquiryStorage
	}

	return InquiryLogistics
}
