package usecase

import (
	"context"

	"agrox/internal/domain/entity"
)

// Conversation is one entry of the conversation list.
type Conversation struct {
	ID          string          `json:"id"`
	OtherUser   string          `json:"otherUser"`
	OtherName   string          `json:"otherName"`
	Listing     *entity.Listing `json:"listing,omitempty"`
	LastMessage *entity.Message `json:"lastMessage,omitempty"`
	UnreadCount int             `json:"unreadCount"`
}

// MessageUsecase defines direct messaging between users.
type MessageUsecase interface {
	// Conversations assembles conversations from approved requests and messages.
	Conversations(ctx context.Context, sess *entity.Session) ([]*Conversation, error)

	// Open returns the messages with other in timestamp order and marks the
	// incoming ones read.
	Open(ctx context.Context, sess *entity.Session, other string) ([]*entity.Message, error)

	Send(ctx context.Context, sess *entity.Session, recipient, content string) (*entity.Message, error)

	// UnreadCount counts unread messages addressed to the session user.
	UnreadCount(ctx context.Context, sess *entity.Session) (int, error)
}
