package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[types.ConversationID]*model.Conversation
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		conversations: make(map[types.ConversationID]*model.Conversation),
	}
}

func copyMessages(msgs []*model.Message) []*model.Message {
	copied := make([]*model.Message, len(msgs))
	for i, m := range msgs {
		copied[i] = m.Clone()
	}
	return copied
}

// getOrCreateLocked resolves or lazily creates the record. Caller must hold
// the write lock.
func (r *conversationRepository) getOrCreateLocked(id types.ConversationID) *model.Conversation {
	if conv, exists := r.conversations[id]; exists {
		return conv
	}
	conv := model.NewConversation(id)
	r.conversations[id] = conv
	return conv
}

func (r *conversationRepository) GetOrCreate(ctx context.Context, id types.ConversationID) (types.ConversationID, []*model.Message, error) {
	if id == "" {
		id = types.NewConversationID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conv := r.getOrCreateLocked(id)
	return conv.ID, copyMessages(conv.Messages), nil
}

func (r *conversationRepository) Append(ctx context.Context, id types.ConversationID, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, exists := r.conversations[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "conversation not found", goerr.V("id", id))
	}

	conv.Messages = append(conv.Messages, msg.Clone())
	return nil
}

func (r *conversationRepository) Get(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, exists := r.conversations[id]
	if !exists {
		return []*model.Message{}, nil
	}

	return copyMessages(conv.Messages), nil
}

func (r *conversationRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conversations), nil
}
