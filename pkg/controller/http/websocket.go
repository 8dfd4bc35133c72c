package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/quantum-travel/quantumchat/pkg/domain/interfaces"
	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
	"github.com/quantum-travel/quantumchat/pkg/usecase"
	"github.com/quantum-travel/quantumchat/pkg/utils/logging"
)

var upgrader = websocket.Upgrader{
	// Demo backend: accept any origin
	CheckOrigin: func(*http.Request) bool { return true },
}

// wsChannel adapts a gorilla connection to the registry's Channel interface.
// Gorilla connections do not allow concurrent writes, so Send serializes
// them with a mutex.
type wsChannel struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

var _ interfaces.Channel = &wsChannel{}

func (c *wsChannel) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (c *wsChannel) Close() error {
	return c.conn.Close()
}

// handleWebSocket runs one duplex session: register, acknowledge, then loop
// receive/generate/send until the transport disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientID := types.ClientID(chi.URLParam(r, "client_id"))
	logger := logging.From(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		logger.Warn("websocket upgrade failed", "client_id", clientID, "error", err.Error())
		return
	}

	ctx := logging.With(context.Background(), logger.With("client_id", clientID))
	ch := &wsChannel{conn: conn}

	registry := s.uc.Registry()
	if err := registry.Connect(ctx, clientID, ch); err != nil {
		logger.Warn("websocket connect rejected", "client_id", clientID, "error", err.Error())
		_ = conn.Close()
		return
	}
	// Release checks channel identity so that a handler whose connection was
	// superseded by a reconnect does not evict the replacement.
	defer registry.Release(ctx, clientID, ch)

	s.sendEvent(ctx, clientID, &model.WSEvent{
		Type:      model.WSEventConnection,
		Message:   "Connected to Quantum Travel AI",
		ClientID:  clientID.String(),
		Timestamp: time.Now().UTC(),
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// Normal terminal transition, not an error
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.From(ctx).Warn("websocket read failed", "error", err.Error())
			}
			return
		}

		// One malformed frame must not terminate the session
		var inbound model.WSInbound
		if err := json.Unmarshal(data, &inbound); err != nil {
			logging.From(ctx).Warn("dropping malformed frame", "error", err.Error())
			continue
		}

		reply, modelID, err := s.uc.Chat.Respond(ctx, inbound.Message, inbound.Model)
		if err != nil {
			if errors.Is(err, usecase.ErrEmptyMessage) || errors.Is(err, usecase.ErrMessageTooLong) {
				logging.From(ctx).Warn("dropping invalid frame", "error", err.Error())
				continue
			}
			logging.From(ctx).Error("generation failed, closing session", "error", err.Error())
			return
		}

		s.sendEvent(ctx, clientID, &model.WSEvent{
			Type:      model.WSEventMessage,
			Message:   reply,
			Model:     modelID.String(),
			Timestamp: time.Now().UTC(),
		})
	}
}

func (s *Server) sendEvent(ctx context.Context, clientID types.ClientID, event *model.WSEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logging.From(ctx).Error("failed to marshal event", "error", err.Error())
		return
	}
	s.uc.Registry().SendTo(ctx, clientID, data)
}
