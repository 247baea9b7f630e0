package store

import (
	"context"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/infra/persistence/collection"
)

// facilityRepository implements the repository.FacilityRepository interface.
type facilityRepository struct {
	keyed[*entity.Facility]
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(store *collection.Store) repository.FacilityRepository {
	return &facilityRepository{
		keyed: newKeyed(store, repository.KeyFacilities,
			func(f *entity.Facility) string { return f.ID },
			domainerrors.ErrFacilityNotFound),
	}
}

func (repo *facilityRepository) List(ctx context.Context) ([]*entity.Facility, error) {
	return repo.list(ctx)
}

func (repo *facilityRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Facility, error) {
	return repo.filter(ctx, func(f *entity.Facility) bool { return f.Owner == owner })
}

func (repo *facilityRepository) FindByID(ctx context.Context, id string) (*entity.Facility, error) {
	return repo.find(ctx, id)
}

func (repo *facilityRepository) Save(ctx context.Context, facility *entity.Facility) error {
	return repo.save(ctx, facility)
}

func (repo *facilityRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	keyed[*entity.Service]
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(store *collection.Store) repository.ServiceRepository {
	return &serviceRepository{
		keyed: newKeyed(store, repository.KeyServices,
			func(s *entity.Service) string { return s.ID },
			domainerrors.ErrServiceNotFound),
	}
}

func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	return repo.list(ctx)
}

func (repo *serviceRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Service, error) {
	return repo.filter(ctx, func(s *entity.Service) bool { return s.Owner == owner })
}

func (repo *serviceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	return repo.find(ctx, id)
}

func (repo *serviceRepository) Save(ctx context.Context, service *entity.Service) error {
	return repo.save(ctx, service)
}

func (repo *serviceRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

// inquiryRepository implements the repository.InquiryRepository interface.
type inquiryRepository struct {
	inquiries *collection.Collection[*entity.Inquiry]
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(store *collection.Store) repository.InquiryRepository {
	return &inquiryRepository{
		inquiries: collection.New[*entity.Inquiry](store),
	}
}

func inquiryKey(kind entity.InquiryKind) string {
	if kind == entity.InquiryStorage {
		return repository.KeyStorageInquiries
	}

	return repository.KeyInquiries
}

func (repo *inquiryRepository) Create(ctx context.Context, kind entity.InquiryKind, inquiry *entity.Inquiry) error {
	return mutate(ctx, repo.inquiries, inquiryKey(kind), func(items []*entity.Inquiry) ([]*entity.Inquiry, error) {
		return append(items, inquiry), nil
	})
}

func (repo *inquiryRepository) ListByProvider(ctx context.Context, kind entity.InquiryKind, provider string) ([]*entity.Inquiry, error) {
	result, err := repo.inquiries.LoadScoped(ctx, inquiryKey(kind), func(i *entity.Inquiry) bool {
		return i.Provider == provider
	})

	return result.Items, err
}
