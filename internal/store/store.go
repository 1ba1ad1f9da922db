package store

import (
	"context"
	"time"
)

// Message is a persisted chat message.
type Message struct {
	ID        int64
	Room      string
	Username  string
	Body      string
	CreatedAt time.Time
}

// Store persists room message history. Implementations must be safe
// for concurrent use.
type Store interface {
	// SaveMessage persists a message and returns its assigned id.
	SaveMessage(ctx context.Context, msg Message) (int64, error)

	// RecentMessages returns up to limit most recent messages of a
	// room in chronological order. An unknown room yields an empty
	// slice, not an error.
	RecentMessages(ctx context.Context, room string, limit int) ([]Message, error)

	// LastMessageID returns the highest assigned message id, or zero
	// when no messages exist.
	LastMessageID(ctx context.Context) (int64, error)

	// Close releases underlying resources.
	Close() error
}
