package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/quantum-travel/quantumchat/pkg/domain/model"
	"github.com/quantum-travel/quantumchat/pkg/domain/types"
	"github.com/quantum-travel/quantumchat/pkg/usecase"
	"github.com/quantum-travel/quantumchat/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	resp, err := s.uc.Chat.Chat(r.Context(), usecase.ChatInput{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		Model:          req.Model,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
		return
	}

	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	convID := types.ConversationID(chi.URLParam(r, "conversation_id"))

	msgs, err := s.uc.Chat.History(r.Context(), convID)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, &model.HistoryResponse{
		ConversationID: convID.String(),
		Messages:       msgs,
	})
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.uc.Catalog().List())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.uc.System.Health(r.Context()))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.System.Stats(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}

// statusFor maps use case errors to HTTP status codes: validation failures
// are the client's fault, everything else is a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrMessageTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
