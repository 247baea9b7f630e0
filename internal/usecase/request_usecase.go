package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// CreateRequestInput is a buyer's purchase request.
type CreateRequestInput struct {
	ListingID string `json:"listingId"`
	Quantity  int    `json:"quantity"`
	Message   string `json:"message"`
}

// RequestDetails is a request with its references resolved for display.
type RequestDetails struct {
	Request          *entity.Request `json:"request"`
	Listing          *entity.Listing `json:"listing"`
	ListingTitle     string          `json:"listingTitle"`
	Counterparty     *entity.User    `json:"counterparty"`
	CounterpartyName string          `json:"counterpartyName"`
}

// RequestUsecase defines the purchase request workflow.
type RequestUsecase interface {
	// Create stores a Pending request and notifies the listing owner.
	Create(ctx context.Context, sess *entity.Session, input *CreateRequestInput) (*entity.Request, error)

	// ListIncoming returns requests on the session user's listings.
	ListIncoming(ctx context.Context, sess *entity.Session) ([]*RequestDetails, error)

	// ListOutgoing returns requests the session user sent.
	ListOutgoing(ctx context.Context, sess *entity.Session) ([]*RequestDetails, error)

	Details(ctx context.Context, sess *entity.Session, id string) (*RequestDetails, error)

	// Approve and Decline are provider-only and move a Pending request to its
	// final status, notifying the buyer.
	Approve(ctx context.Context, sess *entity.Session, id string) (*entity.Request, error)
	Decline(ctx context.Context, sess *entity.Session, id string) (*entity.Request, error)

	// SendMessage appends to the chat of an Approved request.
	SendMessage(ctx context.Context, sess *entity.Session, id, text string) (*entity.Request, error)
}
