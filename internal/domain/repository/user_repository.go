package repository

import (
	"context"

	"agrox/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// Users are created at registration and never updated or deleted.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user, or returns domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// List returns every registered user.
	List(ctx context.Context) ([]*entity.User, error)
}

// SessionRepository persists the single-value session keys
// (currentUser, isLoggedIn, editListingId).
type SessionRepository interface {
	// CurrentUser returns the logged in user, or nil when nobody is.
	CurrentUser(ctx context.Context) (*entity.User, error)
	SetCurrentUser(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context) error

	SetEditListingID(ctx context.Context, id string) error

	// ConsumeEditListingID returns and removes the pending edit id ("" when none).
	ConsumeEditListingID(ctx context.Context) (string, error)
}
