package model

import (
	"time"

	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// Conversation is a named, append-only sequence of user/assistant messages.
// Conversations are created lazily on first reference and are never deleted
// while the process lives.
type Conversation struct {
	ID        types.ConversationID
	Messages  []*Message
	CreatedAt time.Time
}

// NewConversation creates an empty conversation with the given ID
func NewConversation(id types.ConversationID) *Conversation {
	return &Conversation{
		ID:        id,
		Messages:  []*Message{},
		CreatedAt: time.Now().UTC(),
	}
}
