package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// SortOrder orders marketplace results.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
)

// BrowseFilter narrows the marketplace. Zero values do not filter; "all" is
// accepted for Category and Location.
type BrowseFilter struct {
	Category       string    `query:"category"`
	Location       string    `query:"location"`
	MinPrice       *float64  `query:"minPrice"`
	MaxPrice       *float64  `query:"maxPrice"`
	MinQuantity    *float64  `query:"minQuantity"`
	Certifications []string  `query:"certifications"`
	Query          string    `query:"q"`
	Sort           SortOrder `query:"sort"`
}

// ListingStats summarizes an owner's listings and the requests made on them.
type ListingStats struct {
	TotalListings    int     `json:"totalListings"`
	ActiveListings   int     `json:"activeListings"`
	TotalRequests    int     `json:"totalRequests"`
	PendingRequests  int     `json:"pendingRequests"`
	ApprovedRequests int     `json:"approvedRequests"`
	TotalEarnings    float64 `json:"totalEarnings"`
}

// ListingUsecase defines the marketplace and listing management operations.
type ListingUsecase interface {
	Browse(ctx context.Context, filter *BrowseFilter) ([]*entity.Listing, error)
	ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Listing, error)
	Get(ctx context.Context, id string) (*entity.Listing, error)

	// Delete removes an owned listing. Requests pointing at it are kept.
	Delete(ctx context.Context, sess *entity.Session, id string) error

	Stats(ctx context.Context, sess *entity.Session) (*ListingStats, error)

	// MarkForEdit records the listing the next wizard session edits.
	MarkForEdit(ctx context.Context, sess *entity.Session, id string) error

	// SeedSamples stores the sample listings when the marketplace is empty.
	SeedSamples(ctx context.Context) (bool, error)
}
