package interfaces

import (
	"context"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// Repository defines the interface for conversation persistence
type Repository interface {
	Conversation() ConversationRepository
	Close() error
}

// ConversationRepository owns the conversation ID to message history mapping.
// Implementations must be safe for concurrent use.
type ConversationRepository interface {
	// GetOrCreate resolves a conversation. An empty ID allocates a fresh
	// conversation with a generated ID; an unknown ID creates an empty
	// conversation under that ID. The returned history reflects the state
	// at call time.
	GetOrCreate(ctx context.Context, id types.ConversationID) (types.ConversationID, []*model.Message, error)

	// Append adds one message to an existing conversation. Returns an error
	// wrapping the repository's not-found sentinel if the ID is unknown.
	Append(ctx context.Context, id types.ConversationID, msg *model.Message) error

	// Get returns the history of a conversation in append order. An unknown
	// ID yields an empty history, not an error.
	Get(ctx context.Context, id types.ConversationID) ([]*model.Message, error)

	// Count returns the number of conversations ever created
	Count(ctx context.Context) (int, error)
}
