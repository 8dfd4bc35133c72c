package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/oklog/ulid/v2"
)

// ConversationID identifies one conversation. Client-visible IDs carry the
// "conv_" prefix so that server-generated and client-supplied IDs look alike.
type ConversationID string

const conversationIDPrefix = "conv_"

// NewConversationID generates a new random conversation ID
func NewConversationID() ConversationID {
	return ConversationID(conversationIDPrefix + uuid.NewString())
}

// String returns the string representation of the conversation ID
func (id ConversationID) String() string {
	return string(id)
}

// Validate checks if the conversation ID is non-empty and well-formed
func (id ConversationID) Validate() error {
	if id == "" {
		return goerr.New("conversation ID is empty")
	}
	if strings.ContainsAny(string(id), " \t\n/") {
		return goerr.New("conversation ID contains invalid characters", goerr.V("id", id))
	}
	return nil
}

// MessageID identifies one message within a conversation. ULIDs keep IDs
// sortable in append order within a single process.
type MessageID string

// NewMessageID generates a new message ID
func NewMessageID() MessageID {
	return MessageID("msg_" + ulid.Make().String())
}

// String returns the string representation of the message ID
func (id MessageID) String() string {
	return string(id)
}

// ClientID identifies one live duplex connection. It is caller-supplied and
// only required to be unique among simultaneously open connections.
type ClientID string

// String returns the string representation of the client ID
func (id ClientID) String() string {
	return string(id)
}

// Validate checks if the client ID is usable as a registry key
func (id ClientID) Validate() error {
	if id == "" {
		return goerr.New("client ID is empty")
	}
	return nil
}

// ModelID identifies an entry of the model catalog
type ModelID string

// String returns the string representation of the model ID
func (id ModelID) String() string {
	return string(id)
}
