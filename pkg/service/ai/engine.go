package ai

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
)

// Engine is the canned response generator. It classifies the inbound message
// into a keyword bucket and returns that bucket's fixed text, so the output
// is deterministic for a given input. A configurable delay simulates
// inference latency; Generate is the only suspension point of a session.
type Engine struct {
	delay time.Duration
}

var _ interfaces.ResponseGenerator = &Engine{}

type Option func(*Engine)

// WithDelay sets the simulated inference latency. Zero disables the delay.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		delay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Generate(ctx context.Context, message string, modelID types.ModelID, history []*model.Message) (string, error) {
	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return "", goerr.Wrap(ctx.Err(), "generation canceled")
		}
	}

	return classify(message), nil
}

func classify(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "hello", "hi", "hey", "greetings"):
		return greetingResponse
	case containsAny(lower, "code", "program", "function", "python", "javascript"):
		return codeResponse
	case containsAny(lower, "calculate", "math", "equation", "solve"):
		return mathResponse
	case containsAny(lower, "what", "how", "why", "explain"):
		return explainResponse(message)
	case containsAny(lower, "features", "capabilities", "can you", "abilities"):
		return capabilitiesResponse
	default:
		return defaultResponse(message)
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
