package hub

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
	"github.com/quantum-travel/quantumchat/pkg/utils/async"
	"github.com/quantum-travel/quantumchat/pkg/utils/logging"
)

// Registry maps client IDs to live channels. It centralizes directed sends
// and broadcasting so transport handlers stay small.
//
// Connecting an ID that is already registered supersedes the previous
// channel; the superseded channel is closed so it does not linger as an
// orphaned resource.
type Registry struct {
	mu    sync.RWMutex
	conns map[types.ClientID]interfaces.Channel
}

func New() *Registry {
	return &Registry{
		conns: make(map[types.ClientID]interfaces.Channel),
	}
}

// Connect registers a channel under the given client ID
func (r *Registry) Connect(ctx context.Context, clientID types.ClientID, ch interfaces.Channel) error {
	if err := clientID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid client ID")
	}

	r.mu.Lock()
	old, superseded := r.conns[clientID]
	r.conns[clientID] = ch
	total := len(r.conns)
	r.mu.Unlock()

	if superseded {
		logging.From(ctx).Warn("superseding existing connection", "client_id", clientID)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return old.Close()
		})
	}

	logging.From(ctx).Info("client connected", "client_id", clientID, "total_connections", total)
	return nil
}

// Disconnect removes the client's channel. It is idempotent: it is invoked
// from multiple failure paths that may race with each other.
func (r *Registry) Disconnect(ctx context.Context, clientID types.ClientID) {
	r.mu.Lock()
	_, exists := r.conns[clientID]
	delete(r.conns, clientID)
	total := len(r.conns)
	r.mu.Unlock()

	if exists {
		logging.From(ctx).Info("client disconnected", "client_id", clientID, "total_connections", total)
	}
}

// SendTo delivers a payload to one client. An absent client ID is a no-op:
// connect/disconnect races make "send after disconnect" a normal occurrence.
func (r *Registry) SendTo(ctx context.Context, clientID types.ClientID, payload []byte) {
	r.mu.RLock()
	ch, exists := r.conns[clientID]
	r.mu.RUnlock()

	if !exists {
		return
	}

	if err := ch.Send(payload); err != nil {
		logging.From(ctx).Warn("send failed, dropping connection", "client_id", clientID, "error", err.Error())
		r.drop(clientID, ch)
	}
}

// Broadcast delivers a payload to every client registered at call time.
// Per-channel errors are isolated and do not abort the remaining sends.
func (r *Registry) Broadcast(ctx context.Context, payload []byte) {
	r.mu.RLock()
	snapshot := make(map[types.ClientID]interfaces.Channel, len(r.conns))
	for id, ch := range r.conns {
		snapshot[id] = ch
	}
	r.mu.RUnlock()

	for id, ch := range snapshot {
		if err := ch.Send(payload); err != nil {
			logging.From(ctx).Warn("broadcast send failed, dropping connection", "client_id", id, "error", err.Error())
			r.drop(id, ch)
		}
	}
}

// Release removes the mapping only when it still refers to ch, then closes
// the channel. Transport handlers use this on teardown so that a handler
// whose channel was superseded does not evict its replacement.
func (r *Registry) Release(ctx context.Context, clientID types.ClientID, ch interfaces.Channel) {
	r.mu.Lock()
	current, exists := r.conns[clientID]
	owned := exists && current == ch
	if owned {
		delete(r.conns, clientID)
	}
	total := len(r.conns)
	r.mu.Unlock()

	_ = ch.Close()
	if owned {
		logging.From(ctx).Info("client disconnected", "client_id", clientID, "total_connections", total)
	}
}

// Count returns the number of live connections
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// drop removes the mapping only if it still points at the failed channel,
// then closes it. A newer channel registered under the same ID is kept.
func (r *Registry) drop(clientID types.ClientID, ch interfaces.Channel) {
	r.mu.Lock()
	if current, exists := r.conns[clientID]; exists && current == ch {
		delete(r.conns, clientID)
	}
	r.mu.Unlock()
	_ = ch.Close()
}
