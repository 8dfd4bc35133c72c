package interfaces

import (
	"context"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// ResponseGenerator produces a reply for one inbound message. Implementations
// may block (e.g. to simulate inference latency) and must honor ctx
// cancellation. The history snapshot is read-only context; implementations
// must not mutate it.
type ResponseGenerator interface {
	Generate(ctx context.Context, message string, modelID types.ModelID, history []*model.Message) (string, error)
}
