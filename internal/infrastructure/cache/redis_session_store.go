package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore implements SessionStore using Redis
// This is suitable for distributed deployments where multiple instances
// need to share mapping sessions
type RedisSessionStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisOptions holds Redis connection configuration
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisSessionStore creates a new Redis-based session store
func NewRedisSessionStore(opts RedisOptions) (*RedisSessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSessionStore{
		client:    client,
		keyPrefix: "mapping:session:",
	}, nil
}

// NewRedisSessionStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisSessionStoreWithClient(client *redis.Client, keyPrefix string) *RedisSessionStore {
	if keyPrefix == "" {
		keyPrefix = "mapping:session:"
	}
	return &RedisSessionStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Put stores a session with a TTL
func (s *RedisSessionStore) Put(ctx context.Context, session *MappingSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*MappingSession, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session MappingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)
