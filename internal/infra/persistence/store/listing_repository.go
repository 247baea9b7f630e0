package store

import (
	"context"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/infra/persistence/collection"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	keyed[*entity.Listing]
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(store *collection.Store) repository.ListingRepository {
	return &listingRepository{
		keyed: newKeyed(store, repository.KeyListings,
			func(l *entity.Listing) string { return l.ID },
			domainerrors.ErrListingNotFound),
	}
}

func (repo *listingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	return repo.list(ctx)
}

func (repo *listingRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Listing, error) {
	return repo.filter(ctx, func(l *entity.Listing) bool { return l.OwnedBy(owner) })
}

func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.Listing, error) {
	return repo.find(ctx, id)
}

func (repo *listingRepository) Save(ctx context.Context, listing *entity.Listing) error {
	return repo.save(ctx, listing)
}

func (repo *listingRepository) Delete(ctx context.Context, id string) error {
	return repo.delete(ctx, id)
}

func (repo *listingRepository) SeedIfEmpty(ctx context.Context, listings []*entity.Listing) (bool, error) {
	err := repo.items.With(ctx, repo.key, func(items []*entity.Listing) ([]*entity.Listing, error) {
		if len(items) > 0 {
			return nil, errUnchanged
		}

		return listings, nil
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
