package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// BookmarkUsecase manages the session user's bookmarked listings.
type BookmarkUsecase interface {
	List(ctx context.Context, sess *entity.Session) ([]string, error)
	Toggle(ctx context.Context, sess *entity.Session, listingID string) (bool, error)
}
