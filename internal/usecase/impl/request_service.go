package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/constants"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgInvalidQuantity = "Valid quantity is required"
	msgEmptyMessage    = "Message cannot be empty"

	// productFallback names a deleted listing inside notification text
	productFallback = "product"
)

type requestService struct {
	requestRepo     repository.RequestRepository
	listingRepo     repository.ListingRepository
	userRepo        repository.UserRepository
	resolver        usecase.ResolverUsecase
	notificationSvc usecase.NotificationUsecase
	idGen           service.IDGenerator
	clock           service.Clock
	logger          *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo     repository.RequestRepository
	ListingRepo     repository.ListingRepository
	UserRepo        repository.UserRepository
	Resolver        usecase.ResolverUsecase
	NotificationSvc usecase.NotificationUsecase
	IDGen           service.IDGenerator
	Clock           service.Clock
	Logger          *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo:     params.RequestRepo,
		listingRepo:     params.ListingRepo,
		userRepo:        params.UserRepo,
		resolver:        params.Resolver,
		notificationSvc: params.NotificationSvc,
		idGen:           params.IDGen,
		clock:           params.Clock,
		logger:          params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create notifies the listing owner and stores a Pending request. The owner
// must hold a farmer or seller account.
func (srv *requestService) Create(ctx context.Context, sess *entity.Session, input *usecase.CreateRequestInput) (*entity.Request, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, domainerrors.NewValidationError([]string{msgInvalidQuantity})
	}

	listing, err := srv.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listing")
	}
	if _, err := findProvider(ctx, srv.userRepo, listing.Owner, entity.RoleFarmer, entity.RoleSeller); err != nil {
		return nil, err
	}

	request := &entity.Request{
		ID:        srv.idGen.NewID(),
		Buyer:     sess.Email(),
		Provider:  listing.Owner,
		ListingID: listing.ID,
		Quantity:  input.Quantity,
		Message:   strings.TrimSpace(input.Message),
		Status:    entity.RequestPending,
		CreatedAt: srv.clock.Now(),
		Messages:  []entity.ChatMessage{},
	}

	notification, err := srv.notificationSvc.Notify(ctx, listing.Owner, &usecase.NotifyInput{
		Type:      constants.NotificationNewRequest,
		Title:     "New Purchase Request",
		Message:   fmt.Sprintf("%s sent a request for %d %s of %s", sess.User.DisplayName(), input.Quantity, listing.Unit, listing.Title),
		RelatedID: request.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to notify provider")
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		retract(ctx, srv.log(ctx), srv.notificationSvc, listing.Owner, notification)
		return nil, errors.Wrap(err, "failed to create request")
	}

	srv.log(ctx).Info("Request created",
		slog.String("request_id", request.ID),
		slog.String("listing_id", listing.ID),
	)

	return request, nil
}

func (srv *requestService) ListIncoming(ctx context.Context, sess *entity.Session) ([]*usecase.RequestDetails, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.ListByProvider(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming requests")
	}

	return srv.detailsOf(ctx, sess.Email(), requests)
}

func (srv *requestService) ListOutgoing(ctx context.Context, sess *entity.Session) ([]*usecase.RequestDetails, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	requests, err := srv.requestRepo.ListByBuyer(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outgoing requests")
	}

	return srv.detailsOf(ctx, sess.Email(), requests)
}

// Details is only available to the buyer and the provider.
func (srv *requestService) Details(ctx context.Context, sess *entity.Session, id string) (*usecase.RequestDetails, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find request")
	}
	if !request.Involves(sess.Email()) {
		return nil, domainerrors.ErrForbidden
	}

	return srv.details(ctx, sess.Email(), request)
}

func (srv *requestService) detailsOf(ctx context.Context, viewer string, requests []*entity.Request) ([]*usecase.RequestDetails, error) {
	result := make([]*usecase.RequestDetails, 0, len(requests))
	for _, r := range requests {
		d, err := srv.details(ctx, viewer, r)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}

	return result, nil
}

func (srv *requestService) details(ctx context.Context, viewer string, request *entity.Request) (*usecase.RequestDetails, error) {
	listing, err := srv.resolver.ResolveListing(ctx, request)
	if err != nil {
		return nil, err
	}
	counterparty, err := srv.resolver.ResolveCounterparty(ctx, viewer, request)
	if err != nil {
		return nil, err
	}

	d := &usecase.RequestDetails{
		Request:          request,
		Listing:          listing,
		ListingTitle:     entity.ListingTitle(listing, entity.UnknownProduct),
		CounterpartyName: entity.Counterparty(request, viewer),
	}
	if counterparty != nil {
		d.Counterparty = counterparty.Sanitized()
		d.CounterpartyName = counterparty.DisplayName()
	}

	return d, nil
}

func (srv *requestService) Approve(ctx context.Context, sess *entity.Session, id string) (*entity.Request, error) {
	return srv.answer(ctx, sess, id, entity.RequestApproved)
}

func (srv *requestService) Decline(ctx context.Context, sess *entity.Session, id string) (*entity.Request, error) {
	return srv.answer(ctx, sess, id, entity.RequestDeclined)
}

// answer moves a Pending request to status and notifies the buyer once. The
// status is only saved when the notification went out.
func (srv *requestService) answer(ctx context.Context, sess *entity.Session, id string, status entity.RequestStatus) (*entity.Request, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	current, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set request %s", status)
	}
	listing, err := srv.resolver.ResolveListing(ctx, current)
	if err != nil {
		return nil, err
	}
	input := answerNotification(status, entity.ListingTitle(listing, productFallback))
	input.RelatedID = current.ID

	var notification *entity.Notification
	request, err := srv.requestRepo.Update(ctx, id, func(r *entity.Request) error {
		if r.Provider != sess.Email() {
			return domainerrors.ErrForbidden
		}
		if !r.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition
		}
		r.Status = status

		n, err := srv.notificationSvc.Notify(ctx, r.Buyer, input)
		if err != nil {
			return errors.Wrap(err, "failed to notify buyer")
		}
		notification = n

		return nil
	})
	if err != nil {
		retract(ctx, srv.log(ctx), srv.notificationSvc, current.Buyer, notification)
		return nil, errors.Wrapf(err, "failed to set request %s", status)
	}

	srv.log(ctx).Info("Request answered",
		slog.String("request_id", request.ID),
		slog.String("status", string(status)),
	)

	return request, nil
}

func answerNotification(status entity.RequestStatus, title string) *usecase.NotifyInput {
	if status == entity.RequestApproved {
		return &usecase.NotifyInput{
			Type:    constants.NotificationRequestApproved,
			Title:   "Request Approved",
			Message: fmt.Sprintf("Your request for %s has been approved. You can now chat with the seller.", title),
		}
	}

	return &usecase.NotifyInput{
		Type:    constants.NotificationRequestDeclined,
		Title:   "Request Declined",
		Message: fmt.Sprintf("Your request for %s has been declined.", title),
	}
}

// SendMessage appends to the chat of an Approved request.
func (srv *requestService) SendMessage(ctx context.Context, sess *entity.Session, id, text string) (*entity.Request, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.NewValidationError([]string{msgEmptyMessage})
	}

	now := srv.clock.Now()
	request, err := srv.requestRepo.Update(ctx, id, func(r *entity.Request) error {
		if !r.Involves(sess.Email()) {
			return domainerrors.ErrForbidden
		}
		if r.Status != entity.RequestApproved {
			return domainerrors.ErrChatUnavailable
		}
		r.Messages = append(r.Messages, entity.ChatMessage{
			Sender:    sess.Email(),
			Text:      text,
			Timestamp: now,
		})
		r.LastMessageAt = &now

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send chat message")
	}

	return request, nil
}
