package interfaces

// Channel is one live duplex connection as seen by the connection registry.
// The registry owns the channel from Connect until it is removed; Send must be
// safe to call from multiple goroutines.
type Channel interface {
	Send(payload []byte) error
	Close() error
}
