package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var facilityMessages = formMessages{
	"Name":     "Facility name is required",
	"Type":     "Facility type is required",
	"Price":    "Valid price is required",
	"Location": "Location is required",
	"Capacity": "Capacity must be positive",
}

var serviceMessages = formMessages{
	"Title":    "Service title is required",
	"Type":     "Service type is required",
	"Price":    "Valid price is required",
	"Capacity": "Capacity must be positive",
	"From":     "Origin is required",
	"To":       "Destination is required",
}

type facilityService struct {
	facilityRepo repository.FacilityRepository
	idGen        service.IDGenerator
	clock        service.Clock
	validate     *validator.Validate
	logger       *slog.Logger
}

// OfferingServiceParams holds dependencies for the facility and service
// usecases, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	FacilityRepo repository.FacilityRepository
	ServiceRepo  repository.ServiceRepository
	IDGen        service.IDGenerator
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewFacilityService is the constructor for facilityService.
func NewFacilityService(params OfferingServiceParams) usecase.FacilityUsecase {
	return &facilityService{
		facilityRepo: params.FacilityRepo,
		idGen:        params.IDGen,
		clock:        params.Clock,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

func (srv *facilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *facilityService) List(ctx context.Context) ([]*entity.Facility, error) {
	facilities, err := srv.facilityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list facilities")
	}

	return facilities, nil
}

func (srv *facilityService) ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Facility, error) {
	if err := requireRole(sess, entity.RoleStorage); err != nil {
		return nil, err
	}

	facilities, err := srv.facilityRepo.ListByOwner(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own facilities")
	}

	return facilities, nil
}

func (srv *facilityService) Get(ctx context.Context, id string) (*entity.Facility, error) {
	facility, err := srv.facilityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find facility")
	}

	return facility, nil
}

func (srv *facilityService) Create(ctx context.Context, sess *entity.Session, input *usecase.FacilityInput) (*entity.Facility, error) {
	if err := requireRole(sess, entity.RoleStorage); err != nil {
		return nil, err
	}
	if err := srv.check(input); err != nil {
		return nil, err
	}

	facility := &entity.Facility{
		ID:        srv.idGen.NewID(),
		Owner:     sess.Email(),
		CreatedAt: srv.clock.Now(),
	}
	applyFacilityInput(facility, input)

	if err := srv.facilityRepo.Save(ctx, facility); err != nil {
		return nil, errors.Wrap(err, "failed to save facility")
	}
	srv.log(ctx).Info("Facility created", slog.String("facility_id", facility.ID))

	return facility, nil
}

func (srv *facilityService) Update(ctx context.Context, sess *entity.Session, id string, input *usecase.FacilityInput) (*entity.Facility, error) {
	facility, err := srv.owned(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if err := srv.check(input); err != nil {
		return nil, err
	}

	applyFacilityInput(facility, input)
	if err := srv.facilityRepo.Save(ctx, facility); err != nil {
		return nil, errors.Wrap(err, "failed to save facility")
	}

	return facility, nil
}

func (srv *facilityService) Delete(ctx context.Context, sess *entity.Session, id string) error {
	if _, err := srv.owned(ctx, sess, id); err != nil {
		return err
	}

	if err := srv.facilityRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete facility")
	}
	srv.log(ctx).Info("Facility deleted", slog.String("facility_id", id))

	return nil
}

func (srv *facilityService) owned(ctx context.Context, sess *entity.Session, id string) (*entity.Facility, error) {
	if err := requireRole(sess, entity.RoleStorage); err != nil {
		return nil, err
	}

	facility, err := srv.facilityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find facility")
	}
	if facility.Owner != sess.Email() {
		return nil, domainerrors.ErrForbidden
	}

	return facility, nil
}

func (srv *facilityService) check(input *usecase.FacilityInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)
	input.Location = strings.TrimSpace(input.Location)

	return validateForm(srv.validate, input, facilityMessages)
}

func applyFacilityInput(f *entity.Facility, input *usecase.FacilityInput) {
	f.Name = input.Name
	f.Type = input.Type
	f.Price = input.Price
	f.Location = input.Location
	f.Capacity = input.Capacity
	f.Temperature = strings.TrimSpace(input.Temperature)
	f.Description = strings.TrimSpace(input.Description)
}

type serviceService struct {
	serviceRepo repository.ServiceRepository
	idGen       service.IDGenerator
	clock       service.Clock
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(params OfferingServiceParams) usecase.ServiceUsecase {
	return &serviceService{
		serviceRepo: params.ServiceRepo,
		idGen:       params.IDGen,
		clock:       params.Clock,
		validate:    validator.New(),
		logger:      params.Logger,
	}
}

func (srv *serviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *serviceService) List(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *serviceService) ListMine(ctx context.Context, sess *entity.Session) ([]*entity.Service, error) {
	if err := requireRole(sess, entity.RoleLogistics); err != nil {
		return nil, err
	}

	services, err := srv.serviceRepo.ListByOwner(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own services")
	}

	return services, nil
}

func (srv *serviceService) Get(ctx context.Context, id string) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

func (srv *serviceService) Create(ctx context.Context, sess *entity.Session, input *usecase.ServiceInput) (*entity.Service, error) {
	if err := requireRole(sess, entity.RoleLogistics); err != nil {
		return nil, err
	}
	if err := srv.check(input); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		ID:        srv.idGen.NewID(),
		Owner:     sess.Email(),
		CreatedAt: srv.clock.Now(),
	}
	applyServiceInput(svc, input)

	if err := srv.serviceRepo.Save(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to save service")
	}
	srv.log(ctx).Info("Service created", slog.String("service_id", svc.ID))

	return svc, nil
}

func (srv *serviceService) Update(ctx context.Context, sess *entity.Session, id string, input *usecase.ServiceInput) (*entity.Service, error) {
	svc, err := srv.owned(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if err := srv.check(input); err != nil {
		return nil, err
	}

	applyServiceInput(svc, input)
	if err := srv.serviceRepo.Save(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to save service")
	}

	return svc, nil
}

func (srv *serviceService) Delete(ctx context.Context, sess *entity.Session, id string) error {
	if _, err := srv.owned(ctx, sess, id); err != nil {
		return err
	}

	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete service")
	}
	srv.log(ctx).Info("Service deleted", slog.String("service_id", id))

	return nil
}

func (srv *serviceService) owned(ctx context.Context, sess *entity.Session, id string) (*entity.Service, error) {
	if err := requireRole(sess, entity.RoleLogistics); err != nil {
		return nil, err
	}

	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service")
	}
	if svc.Owner != sess.Email() {
		return nil, domainerrors.ErrForbidden
	}

	return svc, nil
}

func (srv *serviceService) check(input *usecase.ServiceInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Type = strings.TrimSpace(input.Type)
	input.From = strings.TrimSpace(input.From)
	input.To = strings.TrimSpace(input.To)

	return validateForm(srv.validate, input, serviceMessages)
}

func applyServiceInput(s *entity.Service, input *usecase.ServiceInput) {
	s.Title = input.Title
	s.Type = input.Type
	s.Price = input.Price
	s.Capacity = input.Capacity
	s.From = input.From
	s.To = input.To
	s.Description = strings.TrimSpace(input.Description)
}
