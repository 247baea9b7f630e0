package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"agrox/config"
	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

const filterAll = "all"

type listingService struct {
	listingRepo repository.ListingRepository
	requestRepo repository.RequestRepository
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	clock       service.Clock
	seed        *config.SeedConfig
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	RequestRepo repository.RequestRepository
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	srv := &listingService{
		listingRepo: params.ListingRepo,
		requestRepo: params.RequestRepo,
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Seed != nil && params.Config.Seed.Enabled {
		srv.seed = params.Config.Seed
	}

	return srv
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse filters and sorts the marketplace.
func (srv *listingService) Browse(ctx context.Context, filter *usecase.BrowseFilter) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}
	if filter == nil {
		filter = &usecase.BrowseFilter{}
	}

	matched := make([]*entity.Listing, 0, len(listings))
	for _, l := range listings {
		if matchesFilter(l, filter) {
			matched = append(matched, l)
		}
	}
	sortListings(matched, filter.Sort)

	return matched, nil
}

func matchesFilter(l *entity.Listing, f *usecase.BrowseFilter) bool {
	if f.Category != "" && f.Category != filterAll && l.Category != f.Category {
		return false
	}
	if f.Location != "" && f.Location != filterAll && !containsFold(l.Location, f.Location) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.MinQuantity != nil && l.Quantity < *f.MinQuantity {
		return false
	}
	if !l.HasCertifications(f.Certifications) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		return containsFold(l.Title, q) || containsFold(l.Description, q) || containsFold(l.Owner, q)
	}

	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortListings(listings []*entity.Listing, order usecase.SortOrder) {
	switch order {
	case usecase.SortPriceLow:
		slices.SortStableFunc(listings, func(a, b *entity.Listing) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case usecase.SortPriceHigh:
		slices.SortStableFunc(listings, func(a, b *entity.Listing) int {
			return cmp.Compare(b.Price, a.Price)
		})
	default:
		slices.SortStableFunc(listings, func(a, b *entity.Listing) int {
			return compareIDs(b.ID, a.ID)
		})
	}
}

// compareIDs orders timestamp ids numerically, falling back to text order.
func compareIDs(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(x, y)
	}

	return strings.Compare(a, b)
}

func (srv *listingService) ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Listing, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	listings, err := srv.listingRepo.ListByOwner(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own listings")
	}

	return listings, nil
}

func (srv *listingService) Get(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// owned loads a listing and checks the session user owns it.
func (srv *listingService) owned(ctx context.Context, sess *entity.Session, id string) (*entity.Listing, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}
	if !listing.OwnedBy(sess.Email()) {
		return nil, domainerrors.ErrForbidden
	}

	return listing, nil
}

func (srv *listingService) Delete(ctx context.Context, sess *entity.Session, id string) error {
	if _, err := srv.owned(ctx, sess, id); err != nil {
		return err
	}

	if err := srv.listingRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete listing")
	}
	srv.log(ctx).Info("Listing deleted", slog.String("listing_id", id))

	return nil
}

// Stats counts the owner's listings and the requests on them. Earnings sum
// price x quantity over approved requests whose listing still exists.
func (srv *listingService) Stats(ctx context.Context, sess *entity.Session) (*usecase.ListingStats, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	listings, err := srv.listingRepo.ListByOwner(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own listings")
	}
	requests, err := srv.requestRepo.ListByProvider(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming requests")
	}

	byID := make(map[string]*entity.Listing, len(listings))
	stats := &usecase.ListingStats{TotalListings: len(listings)}
	for _, l := range listings {
		byID[l.ID] = l
		if l.Status == entity.ListingStatusActive {
			stats.ActiveListings++
		}
	}

	stats.TotalRequests = len(requests)
	for _, r := range requests {
		switch r.Status {
		case entity.RequestPending:
			stats.PendingRequests++
		case entity.RequestApproved:
			stats.ApprovedRequests++
			if l, ok := byID[r.ListingID]; ok {
				stats.TotalEarnings += l.Price * float64(r.Quantity)
			}
		}
	}

	return stats, nil
}

func (srv *listingService) MarkForEdit(ctx context.Context, sess *entity.Session, id string) error {
	if _, err := srv.owned(ctx, sess, id); err != nil {
		return err
	}

	if err := srv.sessionRepo.SetEditListingID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark listing for edit")
	}

	return nil
}

// SeedSamples stores the sample listings when seeding is enabled and the
// marketplace is empty. The farmer accounts owning them are created when
// missing so the samples can be requested.
func (srv *listingService) SeedSamples(ctx context.Context) (bool, error) {
	if srv.seed == nil {
		return false, nil
	}

	samples := sampleListings(srv.clock)
	seeded, err := srv.listingRepo.SeedIfEmpty(ctx, samples)
	if err != nil {
		return false, errors.Wrap(err, "failed to seed listings")
	}
	if seeded {
		srv.log(ctx).Info("Seeded sample listings")
	}

	for _, owner := range sampleOwners(samples, srv.seed.OwnerPassword, srv.clock) {
		err := srv.userRepo.Create(ctx, owner)
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			continue
		}
		if err != nil {
			return false, errors.Wrap(err, "failed to seed listing owner")
		}
		srv.log(ctx).Info("Seeded sample owner", slog.String("email", owner.Email))
	}

	return seeded, nil
}

func sampleOwners(samples []*entity.Listing, password string, clock service.Clock) []*entity.User {
	owners := make([]*entity.User, 0, len(samples))
	for i, listing := range samples {
		if slices.ContainsFunc(owners, func(u *entity.User) bool { return u.Email == listing.Owner }) {
			continue
		}
		owners = append(owners, &entity.User{
			Email:     listing.Owner,
			Password:  password,
			Role:      entity.RoleFarmer,
			Name:      "Sample Farmer " + strconv.Itoa(i+1),
			CreatedAt: clock.Now(),
		})
	}

	return owners
}

func sampleListings(clock service.Clock) []*entity.Listing {
	now := clock.Now()

	return []*entity.Listing{
		{
			ID:             "1",
			Title:          "Fresh Organic Tomatoes",
			Category:       "vegetables",
			Price:          2.5,
			PriceUnit:      "kg",
			Unit:           "kg",
			Quantity:       500,
			Location:       "Northern Region",
			Description:    "Freshly harvested organic tomatoes, grown without pesticides.",
			Certifications: []string{},
			Owner:          "farmer@example.com",
			CreatedAt:      now,
			Status:         entity.ListingStatusActive,
		},
		{
			ID:             "2",
			Title:          "Premium Wheat",
			Category:       "grains",
			Price:          245,
			PriceUnit:      "ton",
			Unit:           "ton",
			Quantity:       50,
			Location:       "Western Region",
			Description:    "High-quality wheat suitable for flour production.",
			Certifications: []string{},
			Owner:          "farmer2@example.com",
			CreatedAt:      now,
			Status:         entity.ListingStatusActive,
		},
	}
}
