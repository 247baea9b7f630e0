package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// NotifyInput describes a notification to deliver.
type NotifyInput struct {
	Type      string
	Title     string
	Message   string
	RelatedID string
}

// NotificationBadge is the unread counter of the notification bell.
type NotificationBadge struct {
	Unread int    `json:"unread"`
	Label  string `json:"label"`
}

// NotificationUsecase defines the interface for notification fan-out and the
// per-user notification list.
type NotificationUsecase interface {
	// Notify prepends a notification to the recipient's collection.
	Notify(ctx context.Context, recipient string, input *NotifyInput) (*entity.Notification, error)

	// Retract removes a notification delivered by Notify whose triggering
	// change could not be saved.
	Retract(ctx context.Context, recipient, id string) error

	// List returns at most limit notifications, most recent first. A
	// non-positive limit uses the configured dropdown limit.
	List(ctx context.Context, sess *entity.Session, limit int) ([]*entity.Notification, error)

	UnreadCount(ctx context.Context, sess *entity.Session) (int, error)
	Badge(ctx context.Context, sess *entity.Session) (*NotificationBadge, error)
	MarkRead(ctx context.Context, sess *entity.Session, id string) error
	MarkAllRead(ctx context.Context, sess *entity.Session) (int, error)
}
