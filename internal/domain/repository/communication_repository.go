package repository

import (
	"context"

	"agrox/internal/domain/entity"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	List(ctx context.Context) ([]*entity.Message, error)
	Create(ctx context.Context, message *entity.Message) error

	// MarkRead flags every unread message from sender to recipient and returns
	// how many changed.
	MarkRead(ctx context.Context, sender, recipient string) (int, error)
}

// NotificationRepository persists notifications_<email> collections, most recent first.
type NotificationRepository interface {
	List(ctx context.Context, email string) ([]*entity.Notification, error)

	// Prepend inserts notification at the head of the recipient's collection.
	Prepend(ctx context.Context, email string, notification *entity.Notification) error

	// MarkRead flags one notification. Marking an already read one is a no-op.
	MarkRead(ctx context.Context, email, id string) error

	// MarkAllRead flags every notification in a single write and returns how many changed.
	MarkAllRead(ctx context.Context, email string) (int, error)

	// Remove deletes one notification. Removing an absent one is a no-op.
	Remove(ctx context.Context, email, id string) error
}

// BookmarkRepository persists bookmarks_<email> ordered sets of listing ids.
type BookmarkRepository interface {
	List(ctx context.Context, email string) ([]string, error)

	// Toggle adds listingID when absent, removes it otherwise, and reports
	// whether it is bookmarked afterwards.
	Toggle(ctx context.Context, email, listingID string) (bool, error)
}
