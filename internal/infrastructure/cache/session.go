package cache

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a mapping session does not exist or expired
var ErrSessionNotFound = errors.New("mapping session not found")

// MappingSession holds the sampled content of an uploaded file so the column
// mapping can be recomputed without re-uploading.
type MappingSession struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	FileName  string     `json:"file_name"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	CreatedAt time.Time  `json:"created_at"`
}

// SessionStore persists mapping sessions with a TTL
type SessionStore interface {
	// Put stores a session, overwriting any existing one with the same ID
	Put(ctx context.Context, session *MappingSession, ttl time.Duration) error

	// Get retrieves a session by ID, returns ErrSessionNotFound if absent or expired
	Get(ctx context.Context, id string) (*MappingSession, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// Close releases store resources
	Close() error
}
