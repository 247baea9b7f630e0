package impl

import (
	"context"

	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/entity"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

type resolverService struct {
	userRepo     repository.UserRepository
	listingRepo  repository.ListingRepository
	facilityRepo repository.FacilityRepository
	serviceRepo  repository.ServiceRepository
}

// ResolverServiceParams holds dependencies for ResolverService, injected by Fx.
type ResolverServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ListingRepo  repository.ListingRepository
	FacilityRepo repository.FacilityRepository
	ServiceRepo  repository.ServiceRepository
}

// NewResolverService is the constructor for resolverService.
func NewResolverService(params ResolverServiceParams) usecase.ResolverUsecase {
	return &resolverService{
		userRepo:     params.UserRepo,
		listingRepo:  params.ListingRepo,
		facilityRepo: params.FacilityRepo,
		serviceRepo:  params.ServiceRepo,
	}
}

func (srv *resolverService) ResolveCounterparty(ctx context.Context, viewer string, party entity.Party) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.Counterparty(party, viewer))

	return dangling(user, err, domainerrors.ErrUserNotFound)
}

func (srv *resolverService) ResolveListing(ctx context.Context, request *entity.Request) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, request.ListingID)

	return dangling(listing, err, domainerrors.ErrListingNotFound)
}

func (srv *resolverService) ResolveFacility(ctx context.Context, inquiry *entity.Inquiry) (*entity.Facility, error) {
	if inquiry.FacilityID == "" {
		return nil, nil
	}
	facility, err := srv.facilityRepo.FindByID(ctx, inquiry.FacilityID)

	return dangling(facility, err, domainerrors.ErrFacilityNotFound)
}

func (srv *resolverService) ResolveService(ctx context.Context, inquiry *entity.Inquiry) (*entity.Service, error) {
	if inquiry.ServiceID == "" {
		return nil, nil
	}
	svc, err := srv.serviceRepo.FindByID(ctx, inquiry.ServiceID)

	return dangling(svc, err, domainerrors.ErrServiceNotFound)
}

// dangling turns a not-found lookup into a nil record.
func dangling[T any](record *T, err, notFound error) (*T, error) {
	if errors.Is(err, notFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve reference")
	}

	return record, nil
}
