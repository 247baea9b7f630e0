package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

type messageService struct {
	messageRepo repository.MessageRepository
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	resolver    usecase.ResolverUsecase
	idGen       service.IDGenerator
	clock       service.Clock
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	RequestRepo repository.RequestRepository
	UserRepo    repository.UserRepository
	Resolver    usecase.ResolverUsecase
	IDGen       service.IDGenerator
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		requestRepo: params.RequestRepo,
		userRepo:    params.UserRepo,
		resolver:    params.Resolver,
		idGen:       params.IDGen,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Conversations lists one entry per counterparty, from approved requests
// first and direct messages second, most recently active first.
func (srv *messageService) Conversations(ctx context.Context, sess *entity.Session) ([]*usecase.Conversation, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	me := sess.Email()

	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}
	messages, err := srv.messageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	byKey := make(map[string]*usecase.Conversation)
	var conversations []*usecase.Conversation
	add := func(other string) *usecase.Conversation {
		key := entity.ConversationKey(me, other)
		if c, ok := byKey[key]; ok {
			return c
		}
		c := &usecase.Conversation{ID: key, OtherUser: other, OtherName: other}
		byKey[key] = c
		conversations = append(conversations, c)

		return c
	}

	for _, r := range requests {
		if r.Status != entity.RequestApproved || !r.Involves(me) {
			continue
		}
		c := add(entity.Counterparty(r, me))
		if c.Listing == nil {
			listing, err := srv.resolver.ResolveListing(ctx, r)
			if err != nil {
				return nil, err
			}
			c.Listing = listing
		}
	}

	for _, m := range messages {
		if m.Sender != me && m.Recipient != me {
			continue
		}
		other := m.Recipient
		if other == me {
			other = m.Sender
		}
		c := add(other)
		if c.LastMessage == nil || m.Timestamp.After(c.LastMessage.Timestamp) {
			c.LastMessage = m
		}
		if m.Recipient == me && !m.Read {
			c.UnreadCount++
		}
	}

	for _, c := range conversations {
		if user, err := srv.userRepo.FindByEmail(ctx, c.OtherUser); err == nil {
			c.OtherName = user.DisplayName()
		} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user")
		}
	}

	slices.SortStableFunc(conversations, func(a, b *usecase.Conversation) int {
		return cmp.Compare(lastActivity(b), lastActivity(a))
	})

	return conversations, nil
}

func lastActivity(c *usecase.Conversation) int64 {
	if c.LastMessage == nil {
		return 0
	}

	return c.LastMessage.Timestamp.UnixNano()
}

// Open returns the conversation with other in timestamp order and marks the
// messages other sent as read.
func (srv *messageService) Open(ctx context.Context, sess *entity.Session, other string) ([]*entity.Message, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	me := sess.Email()

	all, err := srv.messageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	thread := make([]*entity.Message, 0)
	for _, m := range all {
		if m.Between(me, other) {
			thread = append(thread, m)
		}
	}
	slices.SortStableFunc(thread, func(a, b *entity.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	changed, err := srv.messageRepo.MarkRead(ctx, other, me)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark messages read")
	}
	if changed > 0 {
		for _, m := range thread {
			if m.Sender == other {
				m.Read = true
			}
		}
		srv.log(ctx).Debug("Marked messages read", slog.Int("changed", changed))
	}

	return thread, nil
}

func (srv *messageService) Send(ctx context.Context, sess *entity.Session, recipient, content string) (*entity.Message, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.NewValidationError([]string{msgEmptyMessage})
	}

	if _, err := srv.userRepo.FindByEmail(ctx, recipient); err != nil {
		return nil, errors.Wrap(err, "failed to find recipient")
	}

	message := &entity.Message{
		ID:        srv.idGen.NewID(),
		Sender:    sess.Email(),
		Recipient: recipient,
		Content:   content,
		Timestamp: srv.clock.Now(),
		Read:      false,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	return message, nil
}

func (srv *messageService) UnreadCount(ctx context.Context, sess *entity.Session) (int, error) {
	if err := requireSession(sess); err != nil {
		return 0, err
	}

	messages, err := srv.messageRepo.List(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list messages")
	}

	unread := 0
	for _, m := range messages {
		if m.Recipient == sess.Email() && !m.Read {
			unread++
		}
	}

	return unread, nil
}
