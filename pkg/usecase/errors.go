package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors (map to 4xx on HTTP, frame drop on WebSocket)
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")

	// Internal errors
	ErrGenerationFailed = errors.New("response generation failed")
)
