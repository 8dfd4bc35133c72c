package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// ChatUseCase coordinates one session: it resolves the conversation, appends
// the inbound message, invokes the response generator, and appends the
// outbound message.
type ChatUseCase struct {
	uc *UseCases
}

func newChatUseCase(uc *UseCases) *ChatUseCase {
	return &ChatUseCase{uc: uc}
}

// ChatInput is one request of the one-shot protocol
type ChatInput struct {
	Message        string
	ConversationID string
	Model          string
}

// Chat runs the request/response protocol. The user message stays in history
// even when generation subsequently fails: history preserves the user's
// attempt.
func (x *ChatUseCase) Chat(ctx context.Context, input ChatInput) (*model.ChatResponse, error) {
	if err := x.validateMessage(input.Message); err != nil {
		return nil, err
	}
	modelID := x.resolveModel(input.Model)

	convs := x.uc.repo.Conversation()

	convID, _, err := convs.GetOrCreate(ctx, types.ConversationID(input.ConversationID))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve conversation")
	}

	userMsg := model.NewMessage(types.RoleUser, input.Message)
	if err := convs.Append(ctx, convID, userMsg); err != nil {
		return nil, goerr.Wrap(err, "failed to append user message", goerr.V("conversation_id", convID))
	}

	// History snapshot includes the message just appended
	history, err := convs.Get(ctx, convID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load history", goerr.V("conversation_id", convID))
	}

	reply, err := x.generate(ctx, input.Message, modelID, history)
	if err != nil {
		return nil, err
	}

	assistantMsg := model.NewMessage(types.RoleAssistant, reply)
	if err := convs.Append(ctx, convID, assistantMsg); err != nil {
		return nil, goerr.Wrap(err, "failed to append assistant message", goerr.V("conversation_id", convID))
	}

	return &model.ChatResponse{
		Response:       reply,
		ConversationID: convID.String(),
		Model:          modelID.String(),
		Timestamp:      time.Now().UTC(),
		TokensUsed:     countTokens(input.Message) + countTokens(reply),
	}, nil
}

// Respond runs one turn of the duplex protocol. Unlike Chat, the exchange is
// not persisted: WebSocket turns are stateless and each frame stands alone.
func (x *ChatUseCase) Respond(ctx context.Context, message, modelName string) (string, types.ModelID, error) {
	if err := x.validateMessage(message); err != nil {
		return "", "", err
	}
	modelID := x.resolveModel(modelName)

	reply, err := x.generate(ctx, message, modelID, nil)
	if err != nil {
		return "", "", err
	}
	return reply, modelID, nil
}

// History returns the message history of a conversation. Unknown IDs yield
// an empty history, matching an idempotent "no history yet" contract.
func (x *ChatUseCase) History(ctx context.Context, id types.ConversationID) ([]*model.Message, error) {
	msgs, err := x.uc.repo.Conversation().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load history", goerr.V("conversation_id", id))
	}
	return msgs, nil
}

func (x *ChatUseCase) validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return goerr.Wrap(ErrEmptyMessage, "message is required")
	}
	if max := x.uc.maxMessageLength; max > 0 && len(message) > max {
		return goerr.Wrap(ErrMessageTooLong, "message too long",
			goerr.V("length", len(message)), goerr.V("max", max))
	}
	return nil
}

// resolveModel falls back to the default model on an empty name. Unknown
// model names pass through unchanged so the response echoes whatever the
// client asked for.
func (x *ChatUseCase) resolveModel(name string) types.ModelID {
	if name == "" {
		return types.ModelID(x.uc.defaultModel)
	}
	return types.ModelID(name)
}

func (x *ChatUseCase) generate(ctx context.Context, message string, modelID types.ModelID, history []*model.Message) (string, error) {
	if x.uc.generationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.uc.generationTimeout)
		defer cancel()
	}

	reply, err := x.uc.generator.Generate(ctx, message, modelID, history)
	if err != nil {
		return "", goerr.Wrap(ErrGenerationFailed, "generator returned error",
			goerr.V("model", modelID), goerr.V("cause", err.Error()))
	}
	return reply, nil
}

// countTokens is a cheap proxy metric: the whitespace-token count. It is an
// approximation, not a real tokenizer.
func countTokens(s string) int {
	return len(strings.Fields(s))
}
