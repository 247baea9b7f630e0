package impl

import (
	"context"
	"fmt"
	"slices"
	"time"

	"agrox/internal/domain/entity"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"
	"agrox/internal/util"

	"go.uber.org/fx"
)

const recentActivityLimit = 10

type analyticsService struct {
	listingRepo repository.ListingRepository
	requestRepo repository.RequestRepository
	resolver    usecase.ResolverUsecase
	clock       service.Clock
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	RequestRepo repository.RequestRepository
	Resolver    usecase.ResolverUsecase
	Clock       service.Clock
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		listingRepo: params.ListingRepo,
		requestRepo: params.RequestRepo,
		resolver:    params.Resolver,
		clock:       params.Clock,
	}
}

// Provider summarizes the requests the session user received.
func (srv *analyticsService) Provider(ctx context.Context, sess *entity.Session) (*usecase.ProviderAnalytics, error) {
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

	result := &usecase.ProviderAnalytics{
		TotalListings: len(listings),
		TotalRequests: len(requests),
		Recent:        []*usecase.Activity{},
	}
	for _, r := range requests {
		switch r.Status {
		case entity.RequestPending:
			result.Pending++
		case entity.RequestApproved:
			result.Approved++
		case entity.RequestDeclined:
			result.Declined++
		}
	}
	result.ActiveChats = result.Approved
	result.PendingPercent = percent(result.Pending, result.TotalRequests)
	result.ApprovedPercent = percent(result.Approved, result.TotalRequests)
	result.DeclinedPercent = percent(result.Declined, result.TotalRequests)

	recent := slices.Clone(requests)
	slices.SortStableFunc(recent, func(a, b *entity.Request) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	now := srv.clock.Now()
	for _, r := range recent {
		activity, err := srv.activity(ctx, sess.Email(), r, now)
		if err != nil {
			return nil, err
		}
		result.Recent = append(result.Recent, activity)
	}

	return result, nil
}

func (srv *analyticsService) activity(ctx context.Context, viewer string, r *entity.Request, now time.Time) (*usecase.Activity, error) {
	listing, err := srv.resolver.ResolveListing(ctx, r)
	if err != nil {
		return nil, err
	}
	title := entity.ListingTitle(listing, productFallback)

	a := &usecase.Activity{
		RequestID: r.ID,
		Status:    r.Status,
		At:        r.CreatedAt,
		TimeAgo:   util.FormatTimeAgo(r.CreatedAt, now),
	}
	switch r.Status {
	case entity.RequestApproved:
		a.Title = "Request approved"
		a.Description = "Approved request for " + title
	case entity.RequestDeclined:
		a.Title = "Request declined"
		a.Description = "Declined request for " + title
	default:
		buyer, err := srv.resolver.ResolveCounterparty(ctx, viewer, r)
		if err != nil {
			return nil, err
		}
		from := r.Buyer
		if buyer != nil {
			from = buyer.DisplayName()
		}
		a.Title = "New request"
		a.Description = fmt.Sprintf("Request for %s from %s", title, from)
	}

	return a, nil
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}
