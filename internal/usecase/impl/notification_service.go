package impl

import (
	"context"
	"log/slog"

	"agrox/config"
	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/infra/metrics"
	"agrox/internal/usecase"
	"agrox/internal/util"

	"go.uber.org/fx"
)

// ErrNoRecipient is returned by Notify without a recipient.
var ErrNoRecipient = errors.New("notification recipient is required")

type notificationService struct {
	notificationRepo repository.NotificationRepository
	idGen            service.IDGenerator
	clock            service.Clock
	metrics          *metrics.Metrics
	badgeCap         int
	dropdownLimit    int
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	IDGen            service.IDGenerator
	Clock            service.Clock
	Metrics          *metrics.Metrics
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	srv := &notificationService{
		notificationRepo: params.NotificationRepo,
		idGen:            params.IDGen,
		clock:            params.Clock,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Notification != nil {
		srv.badgeCap = cfg.Notification.BadgeCap
		srv.dropdownLimit = cfg.Notification.DropdownLimit
	}

	return srv
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify prepends a notification to the recipient's collection
func (srv *notificationService) Notify(ctx context.Context, recipient string, input *usecase.NotifyInput) (*entity.Notification, error) {
	if recipient == "" {
		return nil, ErrNoRecipient
	}

	notification := &entity.Notification{
		ID:        srv.idGen.NewID(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		RelatedID: input.RelatedID,
		Timestamp: srv.clock.Now(),
		Read:      false,
	}

	if err := srv.notificationRepo.Prepend(ctx, recipient, notification); err != nil {
		return nil, errors.Wrap(err, "failed to store notification")
	}
	srv.metrics.NotificationDelivered(input.Type)

	srv.log(ctx).Info("Notification delivered",
		slog.String("recipient", recipient),
		slog.String("type", input.Type),
		slog.String("related_id", input.RelatedID),
	)

	return notification, nil
}

// Retract removes a delivered notification again.
func (srv *notificationService) Retract(ctx context.Context, recipient, id string) error {
	if err := srv.notificationRepo.Remove(ctx, recipient, id); err != nil {
		return errors.Wrap(err, "failed to retract notification")
	}
	srv.log(ctx).Warn("Notification retracted",
		slog.String("recipient", recipient),
		slog.String("notification_id", id),
	)

	return nil
}

// retract undoes a delivered notification after the change it announced failed
// to save. Failures are logged since the caller already has an error to return.
func retract(ctx context.Context, logger *slog.Logger, notifier usecase.NotificationUsecase, recipient string, notification *entity.Notification) {
	if notification == nil {
		return
	}
	if err := notifier.Retract(ctx, recipient, notification.ID); err != nil {
		logger.Error("Failed to retract notification",
			slog.String("notification_id", notification.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *notificationService) List(ctx context.Context, sess *entity.Session, limit int) ([]*entity.Notification, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.List(ctx, sess.Email())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	if limit <= 0 {
		limit = srv.dropdownLimit
	}
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}

	return notifications, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, sess *entity.Session) (int, error) {
	if err := requireSession(sess); err != nil {
		return 0, err
	}

	notifications, err := srv.notificationRepo.List(ctx, sess.Email())
	if err != nil {
		return 0, errors.Wrap(err, "failed to list notifications")
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return unread, nil
}

func (srv *notificationService) Badge(ctx context.Context, sess *entity.Session) (*usecase.NotificationBadge, error) {
	unread, err := srv.UnreadCount(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &usecase.NotificationBadge{
		Unread: unread,
		Label:  util.FormatBadge(unread, srv.badgeCap),
	}, nil
}

// MarkRead flags one notification. Already read notifications are left as is.
func (srv *notificationService) MarkRead(ctx context.Context, sess *entity.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkRead(ctx, sess.Email(), id); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags every notification of the session user in one write.
func (srv *notificationService) MarkAllRead(ctx context.Context, sess *entity.Session) (int, error) {
	if err := requireSession(sess); err != nil {
		return 0, err
	}

	changed, err := srv.notificationRepo.MarkAllRead(ctx, sess.Email())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}
	srv.log(ctx).Debug("Marked notifications read", slog.Int("changed", changed))

	return changed, nil
}
