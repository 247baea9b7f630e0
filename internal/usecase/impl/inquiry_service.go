package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/constants"
	"agrox/internal/domain/entity"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

type inquiryService struct {
	inquiryRepo     repository.InquiryRepository
	facilityRepo    repository.FacilityRepository
	serviceRepo     repository.ServiceRepository
	userRepo        repository.UserRepository
	resolver        usecase.ResolverUsecase
	notificationSvc usecase.NotificationUsecase
	idGen           service.IDGenerator
	clock           service.Clock
	logger          *slog.Logger
}

// InquiryServiceParams holds dependencies for InquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	InquiryRepo     repository.InquiryRepository
	FacilityRepo    repository.FacilityRepository
	ServiceRepo     repository.ServiceRepository
	UserRepo        repository.UserRepository
	Resolver        usecase.ResolverUsecase
	NotificationSvc usecase.NotificationUsecase
	IDGen           service.IDGenerator
	Clock           service.Clock
	Logger          *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		inquiryRepo:     params.InquiryRepo,
		facilityRepo:    params.FacilityRepo,
		serviceRepo:     params.ServiceRepo,
		userRepo:        params.UserRepo,
		resolver:        params.Resolver,
		notificationSvc: params.NotificationSvc,
		idGen:           params.IDGen,
		clock:           params.Clock,
		logger:          params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *inquiryService) InquireService(ctx context.Context, sess *entity.Session, serviceID, message string) (*entity.Inquiry, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	svc, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}

	inquiry := srv.newInquiry(sess, svc.Owner, message)
	inquiry.ServiceID = svc.ID

	return srv.send(ctx, sess, entity.InquiryLogistics, inquiry, svc.Title)
}

func (srv *inquiryService) InquireFacility(ctx context.Context, sess *entity.Session, facilityID, message string) (*entity.Inquiry, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	facility, err := srv.facilityRepo.FindByID(ctx, facilityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find facility")
	}

	inquiry := srv.newInquiry(sess, facility.Owner, message)
	inquiry.FacilityID = facility.ID

	return srv.send(ctx, sess, entity.InquiryStorage, inquiry, facility.Name)
}

func (srv *inquiryService) newInquiry(sess *entity.Session, provider, message string) *entity.Inquiry {
	return &entity.Inquiry{
		ID:        srv.idGen.NewID(),
		Customer:  sess.Email(),
		Provider:  provider,
		Message:   strings.TrimSpace(message),
		CreatedAt: srv.clock.Now(),
	}
}

// send notifies the provider and stores the inquiry. The provider must hold
// an account with the role that offers this kind of inquiry.
func (srv *inquiryService) send(ctx context.Context, sess *entity.Session, kind entity.InquiryKind, inquiry *entity.Inquiry, target string) (*entity.Inquiry, error) {
	role := entity.RoleLogistics
	if kind == entity.InquiryStorage {
		role = entity.RoleStorage
	}
	if _, err := findProvider(ctx, srv.userRepo, inquiry.Provider, role); err != nil {
		return nil, err
	}

	notification, err := srv.notificationSvc.Notify(ctx, inquiry.Provider, &usecase.NotifyInput{
		Type:      constants.NotificationNewInquiry,
		Title:     "New Inquiry",
		Message:   fmt.Sprintf("%s sent an inquiry about %s", sess.User.DisplayName(), target),
		RelatedID: inquiry.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to notify provider")
	}

	if err := srv.inquiryRepo.Create(ctx, kind, inquiry); err != nil {
		retract(ctx, srv.log(ctx), srv.notificationSvc, inquiry.Provider, notification)
		return nil, errors.Wrap(err, "failed to create inquiry")
	}

	srv.log(ctx).Info("Inquiry sent",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("kind", string(kind)),
	)

	return inquiry, nil
}

// ListIncoming merges logistics and storage inquiries addressed to the session user.
func (srv *inquiryService) ListIncoming(ctx context.Context, sess *entity.Session) ([]*usecase.InquiryDetails, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	var result []*usecase.InquiryDetails
	for _, kind := range []entity.InquiryKind{entity.InquiryLogistics, entity.InquiryStorage} {
		inquiries, err := srv.inquiryRepo.ListByProvider(ctx, kind, sess.Email())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list %s inquiries", kind)
		}
		for _, inquiry := range inquiries {
			d, err := srv.details(ctx, sess.Email(), kind, inquiry)
			if err != nil {
				return nil, err
			}
			result = append(result, d)
		}
	}

	slices.SortStableFunc(result, func(a, b *usecase.InquiryDetails) int {
		return cmp.Compare(b.Inquiry.CreatedAt.UnixNano(), a.Inquiry.CreatedAt.UnixNano())
	})

	return result, nil
}

func (srv *inquiryService) details(ctx context.Context, viewer string, kind entity.InquiryKind, inquiry *entity.Inquiry) (*usecase.InquiryDetails, error) {
	d := &usecase.InquiryDetails{
		Inquiry:      inquiry,
		Kind:         kind,
		CustomerName: inquiry.Customer,
	}

	if kind == entity.InquiryStorage {
		facility, err := srv.resolver.ResolveFacility(ctx, inquiry)
		if err != nil {
			return nil, err
		}
		d.TargetTitle = entity.UnknownFacility
		if facility != nil {
			d.TargetTitle = facility.Name
		}
	} else {
		svc, err := srv.resolver.ResolveService(ctx, inquiry)
		if err != nil {
			return nil, err
		}
		d.TargetTitle = entity.UnknownService
		if svc != nil {
			d.TargetTitle = svc.Title
		}
	}

	customer, err := srv.resolver.ResolveCounterparty(ctx, viewer, inquiry)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		d.Customer = customer.Sanitized()
		d.CustomerName = customer.DisplayName()
	}

	return d, nil
}
