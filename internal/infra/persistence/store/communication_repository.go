package store

import (
	"context"
	"slices"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/infra/persistence/collection"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	messages *collection.Collection[*entity.Message]
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(store *collection.Store) repository.MessageRepository {
	return &messageRepository{messages: collection.New[*entity.Message](store)}
}

func (repo *messageRepository) List(ctx context.Context) ([]*entity.Message, error) {
	result, err := repo.messages.Load(ctx, repository.KeyMessages)

	return result.Items, err
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	return mutate(ctx, repo.messages, repository.KeyMessages, func(items []*entity.Message) ([]*entity.Message, error) {
		return append(items, message), nil
	})
}

func (repo *messageRepository) MarkRead(ctx context.Context, sender, recipient string) (int, error) {
	var changed int
	err := mutate(ctx, repo.messages, repository.KeyMessages, func(items []*entity.Message) ([]*entity.Message, error) {
		for _, m := range items {
			if m.Sender == sender && m.Recipient == recipient && !m.Read {
				m.Read = true
				changed++
			}
		}
		if changed == 0 {
			return nil, errUnchanged
		}

		return items, nil
	})

	return changed, err
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	notifications *collection.Collection[*entity.Notification]
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(store *collection.Store) repository.NotificationRepository {
	return &notificationRepository{notifications: collection.New[*entity.Notification](store)}
}

func (repo *notificationRepository) List(ctx context.Context, email string) ([]*entity.Notification, error) {
	result, err := repo.notifications.Load(ctx, repository.NotificationsKey(email))

	return result.Items, err
}

func (repo *notificationRepository) Prepend(ctx context.Context, email string, notification *entity.Notification) error {
	return mutate(ctx, repo.notifications, repository.NotificationsKey(email), func(items []*entity.Notification) ([]*entity.Notification, error) {
		return slices.Insert(items, 0, notification), nil
	})
}

func (repo *notificationRepository) MarkRead(ctx context.Context, email, id string) error {
	return mutate(ctx, repo.notifications, repository.NotificationsKey(email), func(items []*entity.Notification) ([]*entity.Notification, error) {
		for _, n := range items {
			if n.ID != id {
				continue
			}
			if n.Read {
				return nil, errUnchanged
			}
			n.Read = true

			return items, nil
		}

		return nil, domainerrors.ErrNotificationNotFound
	})
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, email string) (int, error) {
	var changed int
	err := mutate(ctx, repo.notifications, repository.NotificationsKey(email), func(items []*entity.Notification) ([]*entity.Notification, error) {
		for _, n := range items {
			if !n.Read {
				n.Read = true
				changed++
			}
		}
		if changed == 0 {
			return nil, errUnchanged
		}

		return items, nil
	})

	return changed, err
}

func (repo *notificationRepository) Remove(ctx context.Context, email, id string) error {
	return mutate(ctx, repo.notifications, repository.NotificationsKey(email), func(items []*entity.Notification) ([]*entity.Notification, error) {
		i := slices.IndexFunc(items, func(n *entity.Notification) bool { return n.ID == id })
		if i < 0 {
			return nil, errUnchanged
		}

		return slices.Delete(items, i, i+1), nil
	})
}

// bookmarkRepository implements the repository.BookmarkRepository interface.
type bookmarkRepository struct {
	bookmarks *collection.Collection[string]
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(store *collection.Store) repository.BookmarkRepository {
	return &bookmarkRepository{bookmarks: collection.New[string](store)}
}

func (repo *bookmarkRepository) List(ctx context.Context, email string) ([]string, error) {
	result, err := repo.bookmarks.Load(ctx, repository.BookmarksKey(email))

	return result.Items, err
}

func (repo *bookmarkRepository) Toggle(ctx context.Context, email, listingID string) (bool, error) {
	var bookmarked bool
	err := mutate(ctx, repo.bookmarks, repository.BookmarksKey(email), func(ids []string) ([]string, error) {
		if i := slices.Index(ids, listingID); i >= 0 {
			return slices.Delete(ids, i, i+1), nil
		}
		bookmarked = true

		return append(ids, listingID), nil
	})

	return bookmarked, err
}
