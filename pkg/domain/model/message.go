package model

import (
	"time"

	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// Message is one entry of a conversation history. Messages are immutable
// once appended.
type Message struct {
	ID        types.MessageID `json:"id"`
	Role      types.Role      `json:"role"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"timestamp"`
}

// NewMessage creates a message stamped with the current UTC time
func NewMessage(role types.Role, content string) *Message {
	return &Message{
		ID:        types.NewMessageID(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a copy of the message
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	copied := *m
	return &copied
}
