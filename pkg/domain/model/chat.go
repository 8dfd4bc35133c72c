package model

import "time"

// ChatRequest is the inbound body of POST /api/chat
type ChatRequest struct {
	Message        string   `json:"message"`
	ConversationID string   `json:"conversation_id,omitempty"`
	Model          string   `json:"model,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
	MaxTokens      *int     `json:"max_tokens,omitempty"`
}

// ChatResponse is the outbound envelope of POST /api/chat
type ChatResponse struct {
	Response       string    `json:"response"`
	ConversationID string    `json:"conversation_id"`
	Model          string    `json:"model"`
	Timestamp      time.Time `json:"timestamp"`
	TokensUsed     int       `json:"tokens_used"`
}

// HistoryResponse is the outbound envelope of GET /api/history/{conversation_id}
type HistoryResponse struct {
	ConversationID string     `json:"conversation_id"`
	Messages       []*Message `json:"messages"`
}

// HealthResponse is the outbound envelope of GET /api/health
type HealthResponse struct {
	Status            string    `json:"status"`
	Service           string    `json:"service"`
	Version           string    `json:"version"`
	Timestamp         time.Time `json:"timestamp"`
	ActiveConnections int       `json:"active_connections"`
}

// StatsResponse is the outbound envelope of GET /api/stats
type StatsResponse struct {
	TotalConversations int    `json:"total_conversations"`
	ActiveConnections  int    `json:"active_connections"`
	SupportedModels    int    `json:"supported_models"`
	Uptime             string `json:"uptime"`
	Version            string `json:"version"`
}

// UploadResponse is the outbound envelope of POST /api/upload
type UploadResponse struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
