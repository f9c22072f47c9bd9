package cache

import (
	"context"
	"sync"
	"time"
)

// sessionEntry represents a stored session with expiration
type sessionEntry struct {
	session   *MappingSession
	expiresAt time.Time
}

// InMemorySessionStore implements SessionStore using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemorySessionStore struct {
	mu        sync.RWMutex
	entries   map[string]sessionEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemorySessionStore creates a new in-memory session store
// It starts a background goroutine to clean up expired sessions
func NewInMemorySessionStore() *InMemorySessionStore {
	store := &InMemorySessionStore{
		entries:  make(map[string]sessionEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Put stores a session with a TTL
func (s *InMemorySessionStore) Put(ctx context.Context, session *MappingSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[session.ID] = sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get retrieves a session by ID
func (s *InMemorySessionStore) Get(ctx context.Context, id string) (*MappingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(e.expiresAt) {
		// Expired but not yet swept
		return nil, ErrSessionNotFound
	}
	return e.session, nil
}

// Delete removes a session
func (s *InMemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (s *InMemorySessionStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired sessions
func (s *InMemorySessionStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired sessions from the store
func (s *InMemorySessionStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// Size returns the number of stored sessions (for testing/monitoring)
func (s *InMemorySessionStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemorySessionStore implements SessionStore
var _ SessionStore = (*InMemorySessionStore)(nil)
