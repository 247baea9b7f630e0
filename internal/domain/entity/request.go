package entity

import "time"

// RequestStatus is the approval state of a purchase request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestDeclined RequestStatus = "Declined"
)

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestApproved || s == RequestDeclined
}

// CanTransitionTo allows Pending -> Approved | Declined only.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return s == RequestPending && next.IsTerminal()
}

// ChatMessage is one line of the chat attached to a request.
type ChatMessage struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Request is a buyer's ask to purchase from a listing.
type Request struct {
	ID            string        `json:"id" validate:"required"`
	Buyer         string        `json:"buyer"`
	Provider      string        `json:"provider"` // listing.Owner at creation
	ListingID     string        `json:"listingId"`
	Quantity      int           `json:"quantity"`
	Message       string        `json:"message,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	Messages      []ChatMessage `json:"messages"`
	LastMessageAt *time.Time    `json:"lastMessageAt,omitempty"`
}

// Requester returns the buyer.
func (r *Request) Requester() string { return r.Buyer }

// ProviderEmail returns the listing owner.
func (r *Request) ProviderEmail() string { return r.Provider }

// Involves reports whether email is the buyer or the provider.
func (r *Request) Involves(email string) bool {
	return r.Buyer == email || r.Provider == email
}
