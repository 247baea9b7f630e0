package entity

import (
	"sort"
	"strings"
	"time"
)

// Message is a direct message between two users, independent of requests.
type Message struct {
	ID        string    `json:"id" validate:"required"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// ConversationKey returns the order-independent identity of the conversation
// between a and b: both emails sorted and joined with "_".
func ConversationKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)

	return strings.Join(pair, "_")
}

// ConversationKey returns the key of the conversation the message belongs to.
func (m *Message) ConversationKey() string {
	return ConversationKey(m.Sender, m.Recipient)
}

// Between reports whether the message was exchanged between a and b.
func (m *Message) Between(a, b string) bool {
	return (m.Sender == a && m.Recipient == b) || (m.Sender == b && m.Recipient == a)
}
