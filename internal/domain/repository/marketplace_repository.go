package repository

import (
	"context"

	"agrox/internal/domain/entity"
)

// ListingRepository persists the listings collection.
type ListingRepository interface {
	// List returns every listing in stored order.
	List(ctx context.Context) ([]*entity.Listing, error)

	// ListByOwner returns the listings owned by email.
	ListByOwner(ctx context.Context, owner string) ([]*entity.Listing, error)

	// FindByID returns the listing or domainerrors.ErrListingNotFound.
	FindByID(ctx context.Context, id string) (*entity.Listing, error)

	// Save replaces the listing with the same id, or appends it.
	Save(ctx context.Context, listing *entity.Listing) error

	// Delete removes the listing. Requests referencing it are left untouched.
	Delete(ctx context.Context, id string) error

	// SeedIfEmpty stores listings only when the collection is empty.
	SeedIfEmpty(ctx context.Context, listings []*entity.Listing) (bool, error)
}

// RequestRepository persists the requests collection.
type RequestRepository interface {
	List(ctx context.Context) ([]*entity.Request, error)
	ListByProvider(ctx context.Context, provider string) ([]*entity.Request, error)
	ListByBuyer(ctx context.Context, buyer string) ([]*entity.Request, error)

	// FindByID returns the request or domainerrors.ErrRequestNotFound.
	FindByID(ctx context.Context, id string) (*entity.Request, error)

	Create(ctx context.Context, request *entity.Request) error

	// Update applies fn to the stored request and persists the result atomically.
	// Nothing is written when fn returns an error.
	Update(ctx context.Context, id string, fn func(*entity.Request) error) (*entity.Request, error)
}

// FacilityRepository persists the facilities collection.
type FacilityRepository interface {
	List(ctx context.Context) ([]*entity.Facility, error)
	ListByOwner(ctx context.Context, owner string) ([]*entity.Facility, error)
	FindByID(ctx context.Context, id string) (*entity.Facility, error)
	Save(ctx context.Context, facility *entity.Facility) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository persists the services collection.
type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	ListByOwner(ctx context.Context, owner string) ([]*entity.Service, error)
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	Save(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}

// InquiryRepository persists the inquiries (logistics) and storageInquiries collections.
type InquiryRepository interface {
	Create(ctx context.Context, kind entity.InquiryKind, inquiry *entity.Inquiry) error
	ListByProvider(ctx context.Context, kind entity.InquiryKind, provider string) ([]*entity.Inquiry, error)
}
