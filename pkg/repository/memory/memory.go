package memory

import (
	"errors"

	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
)

// ErrNotFound is returned when a referenced entity does not exist
var ErrNotFound = errors.New("not found")

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the volatile repository backend. All state is lost on process
// restart.
type Memory struct {
	conversation *conversationRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		conversation: newConversationRepository(),
	}
}

func (m *Memory) Conversation() interfaces.ConversationRepository {
	return m.conversation
}

func (m *Memory) Close() error {
	return nil
}
