package store

import (
	"context"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/infra/persistence/collection"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	keyed[*entity.User]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *collection.Store) repository.UserRepository {
	return &userRepository{
		keyed: newKeyed(store, repository.KeyUsers,
			func(u *entity.User) string { return u.Email },
			domainerrors.ErrUserNotFound),
	}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.find(ctx, email)
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return mutate(ctx, repo.items, repo.key, func(items []*entity.User) ([]*entity.User, error) {
		for _, existing := range items {
			if existing.Email == user.Email {
				return nil, domainerrors.ErrUserAlreadyExists
			}
		}

		return append(items, user), nil
	})
}

func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return repo.list(ctx)
}

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	currentUser   *collection.Value[*entity.User]
	isLoggedIn    *collection.Value[bool]
	editListingID *collection.Value[string]
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store *collection.Store) repository.SessionRepository {
	return &sessionRepository{
		currentUser:   collection.NewValue[*entity.User](store, repository.KeyCurrentUser),
		isLoggedIn:    collection.NewValue[bool](store, repository.KeyIsLoggedIn),
		editListingID: collection.NewValue[string](store, repository.KeyEditListingID),
	}
}

// CurrentUser requires both isLoggedIn and a well formed currentUser.
func (repo *sessionRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	loggedIn, _, err := repo.isLoggedIn.Get(ctx)
	if err != nil || !loggedIn {
		return nil, err
	}

	user, ok, err := repo.currentUser.Get(ctx)
	if err != nil || !ok || user == nil || user.Email == "" {
		return nil, err
	}

	return user, nil
}

func (repo *sessionRepository) SetCurrentUser(ctx context.Context, user *entity.User) error {
	if err := repo.currentUser.Set(ctx, user); err != nil {
		return err
	}

	return repo.isLoggedIn.Set(ctx, true)
}

func (repo *sessionRepository) Clear(ctx context.Context) error {
	if err := repo.currentUser.Remove(ctx); err != nil {
		return err
	}

	return repo.isLoggedIn.Remove(ctx)
}

func (repo *sessionRepository) SetEditListingID(ctx context.Context, id string) error {
	return repo.editListingID.Set(ctx, id)
}

func (repo *sessionRepository) ConsumeEditListingID(ctx context.Context) (string, error) {
	id, _, err := repo.editListingID.Take(ctx)

	return id, err
}
