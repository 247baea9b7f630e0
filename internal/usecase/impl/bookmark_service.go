package impl

import (
	"context"
	"slices"

	"agrox/internal/domain/entity"
	"agrox/internal/domain/repository"
	"agrox/internal/errors"
	"agrox/internal/usecase"
)

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	listingRepo  repository.ListingRepository
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, listingRepo repository.ListingRepository) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		listingRepo:  listingRepo,
	}
}

func (srv *bookmarkService) List(ctx context.Context, sess *entity.Session) ([]string, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	ids, err := srv.bookmarkRepo.List(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return ids, nil
}

// Toggle only bookmarks existing listings; removing a stale bookmark is always allowed.
func (srv *bookmarkService) Toggle(ctx context.Context, sess *entity.Session, listingID string) (bool, error) {
	if err := requireSession(sess); err != nil {
		return false, err
	}

	ids, err := srv.bookmarkRepo.List(ctx, sess.Email())
	if err != nil {
		return false, errors.Wrap(err, "failed to list bookmarks")
	}
	if !slices.Contains(ids, listingID) {
		if _, err := srv.listingRepo.FindByID(ctx, listingID); err != nil {
			return false, errors.Wrap(err, "failed to find listing")
		}
	}

	bookmarked, err := srv.bookmarkRepo.Toggle(ctx, sess.Email(), listingID)
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle bookmark")
	}

	return bookmarked, nil
}
