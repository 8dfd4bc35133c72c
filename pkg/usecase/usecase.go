package usecase

import (
	"time"

	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
	"github.com/quantum-travel/quantumchat/pkg/service/catalog"
	"github.com/quantum-travel/quantumchat/pkg/service/hub"
)

// ServiceName appears in health responses
const ServiceName = "Quantum Travel AI"

type UseCases struct {
	repo      interfaces.Repository
	generator interfaces.ResponseGenerator
	catalog   *catalog.Catalog
	registry  *hub.Registry

	defaultModel      string
	maxMessageLength  int
	generationTimeout time.Duration
	version           string
	startedAt         time.Time

	Chat   *ChatUseCase
	System *SystemUseCase
}

type Option func(*UseCases)

// WithDefaultModel sets the model used when a request names none
func WithDefaultModel(id string) Option {
	return func(uc *UseCases) {
		uc.defaultModel = id
	}
}

// WithMaxMessageLength caps inbound message size; zero disables the check
func WithMaxMessageLength(n int) Option {
	return func(uc *UseCases) {
		uc.maxMessageLength = n
	}
}

// WithGenerationTimeout caps how long one generation may take; zero disables
// the cap
func WithGenerationTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.generationTimeout = d
	}
}

// WithVersion sets the version string reported by health and stats
func WithVersion(v string) Option {
	return func(uc *UseCases) {
		uc.version = v
	}
}

func New(repo interfaces.Repository, generator interfaces.ResponseGenerator, cat *catalog.Catalog, registry *hub.Registry, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:              repo,
		generator:         generator,
		catalog:           cat,
		registry:          registry,
		defaultModel:      catalog.DefaultModelID.String(),
		maxMessageLength:  4000,
		generationTimeout: 30 * time.Second,
		version:           "dev",
		startedAt:         time.Now().UTC(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Chat = newChatUseCase(uc)
	uc.System = newSystemUseCase(uc)

	return uc
}

// Registry exposes the connection registry for transport handlers
func (uc *UseCases) Registry() *hub.Registry {
	return uc.registry
}

// Catalog exposes the model catalog
func (uc *UseCases) Catalog() *catalog.Catalog {
	return uc.catalog
}
