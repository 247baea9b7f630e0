package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// InquiryDetails is an inquiry with its target and customer resolved.
type InquiryDetails struct {
	Inquiry      *entity.Inquiry    `json:"inquiry"`
	Kind         entity.InquiryKind `json:"kind"`
	TargetTitle  string             `json:"targetTitle"`
	Customer     *entity.User       `json:"customer"`
	CustomerName string             `json:"customerName"`
}

// InquiryUsecase sends inquiries to logistics services and storage facilities.
type InquiryUsecase interface {
	InquireService(ctx context.Context, sess *entity.Session, serviceID, message string) (*entity.Inquiry, error)
	InquireFacility(ctx context.Context, sess *entity.Session, facilityID, message string) (*entity.Inquiry, error)

	// ListIncoming returns inquiries addressed to the session user, newest first.
	ListIncoming(ctx context.Context, sess *entity.Session) ([]*InquiryDetails, error)
}
