// Package flash carries one-shot page messages across a redirect.
package flash

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
)

// Kind selects how a message is styled.
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Message is a single flash entry.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// IsError reports whether the message describes a failure.
func (m Message) IsError() bool { return m.Kind == KindError }

// Store keeps messages until they are read once or expire.
type Store interface {
	Put(ctx context.Context, id string, msg Message, ttl time.Duration) error
	// Pop returns and deletes the message; (nil, nil) when there is none.
	Pop(ctx context.Context, id string) (*Message, error)
	Ping(ctx context.Context) error
}

const defaultRedisKeyPrefix = "storefront:flash:"

// RedisStore keeps messages in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing client. Keys are prefix+id; an empty
// prefix falls back to "storefront:flash:".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Put(ctx context.Context, id string, msg Message, ttl time.Duration) error {
	data, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+id, data, ttl).Err()
}

func (s *RedisStore) Pop(ctx context.Context, id string) (*Message, error) {
	data, err := s.client.GetDel(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var msg Message
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// MemoryStore is the single-process fallback used when no Redis is configured.
type MemoryStore struct {
	cache *ttlcache.Cache[string, Message]
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: ttlcache.New[string, Message](
		ttlcache.WithDisableTouchOnHit[string, Message](),
	)}
}

func (s *MemoryStore) Put(_ context.Context, id string, msg Message, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("flash: ttl must be positive")
	}
	s.cache.DeleteExpired()
	s.cache.Set(id, msg, ttl)
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, id string) (*Message, error) {
	item, ok := s.cache.GetAndDelete(id)
	if !ok || item == nil {
		return nil, nil
	}
	msg := item.Value()
	return &msg, nil
}

// Len reports how many unexpired messages are held.
func (s *MemoryStore) Len() int { return s.cache.Len() }

func (s *MemoryStore) Ping(context.Context) error { return nil }
