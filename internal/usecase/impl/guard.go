// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"slices"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
)

// requireSession rejects requests made without a logged in user.
func requireSession(sess *entity.Session) error {
	if sess.Email() == "" {
		return domainerrors.ErrNotLoggedIn
	}

	return nil
}

// requireRole additionally checks the session user's role.
func requireRole(sess *entity.Session, roles ...entity.Role) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.HasRole(roles...) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// findProvider loads the owner of an offering. Owners without an account or
// with a role that cannot hold the offering are reported as ErrProviderNotFound.
func findProvider(ctx context.Context, users repository.UserRepository, email string, roles ...entity.Role) (*entity.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}
	if !slices.Contains(roles, user.Role) {
		return nil, domainerrors.ErrProviderNotFound
	}

	return user, nil
}
