package store

import (
	"context"
	"time"
)

// KV is a durable key-value store. Values are opaque bytes (JSON documents
// in practice).
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Run is one finished game.
type Run struct {
	ID        int
	RunID     string
	Player    string
	Points    int
	Best      int
	Level     int
	Case      int
	Lives     int
	StartedAt time.Time // zero when unknown
	EndedAt   time.Time
}

// Duration returns the run length, or zero when the start is unknown.
func (r Run) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// RunRepo records finished games.
type RunRepo interface {
	// Append stores a finished run. An empty RunID is generated.
	Append(ctx context.Context, run *Run) error

	// Recent returns up to limit runs, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]Run, error)
}
