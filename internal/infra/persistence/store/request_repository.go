package store

import (
	"context"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/infra/persistence/collection"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	keyed[*entity.Request]
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(store *collection.Store) repository.RequestRepository {
	return &requestRepository{
		keyed: newKeyed(store, repository.KeyRequests,
			func(r *entity.Request) string { return r.ID },
			domainerrors.ErrRequestNotFound),
	}
}

func (repo *requestRepository) List(ctx context.Context) ([]*entity.Request, error) {
	return repo.list(ctx)
}

func (repo *requestRepository) ListByProvider(ctx context.Context, provider string) ([]*entity.Request, error) {
	return repo.filter(ctx, func(r *entity.Request) bool { return r.Provider == provider })
}

func (repo *requestRepository) ListByBuyer(ctx context.Context, buyer string) ([]*entity.Request, error) {
	return repo.filter(ctx, func(r *entity.Request) bool { return r.Buyer == buyer })
}

func (repo *requestRepository) FindByID(ctx context.Context, id string) (*entity.Request, error) {
	return repo.find(ctx, id)
}

func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	return mutate(ctx, repo.items, repo.key, func(items []*entity.Request) ([]*entity.Request, error) {
		return append(items, request), nil
	})
}

func (repo *requestRepository) Update(ctx context.Context, id string, fn func(*entity.Request) error) (*entity.Request, error) {
	return repo.update(ctx, id, fn)
}
