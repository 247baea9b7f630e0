package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// ResolverUsecase follows stored references between records. A reference to
// a record that no longer exists resolves to nil without an error.
type ResolverUsecase interface {
	ResolveCounterparty(ctx context.Context, viewer string, party entity.Party) (*entity.User, error)
	ResolveListing(ctx context.Context, request *entity.Request) (*entity.Listing, error)
	ResolveFacility(ctx context.Context, inquiry *entity.Inquiry) (*entity.Facility, error)
	ResolveService(ctx context.Context, inquiry *entity.Inquiry) (*entity.Service, error)
}
