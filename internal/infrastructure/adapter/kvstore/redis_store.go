package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	errs "github.com/amirhossein-jamali/payledger/internal/domain/error"
)

// RedisOptions configures the redis-backed store
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore is a KeyValueStore backed by redis strings
type RedisStore struct {
	client redis.Cmdable
	closer func() error
	prefix string
}

// OpenRedisStore connects to redis and verifies the connection
func OpenRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	store := NewRedisStore(client, opts.KeyPrefix)
	store.closer = client.Close
	return store, nil
}

// NewRedisStore wraps an existing client; keys are namespaced with prefix
func NewRedisStore(client redis.Cmdable, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		closer: func() error { return nil },
		prefix: prefix,
	}
}

// Get returns the stored value and whether the key exists
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.NewPersistenceError("read", key, err)
	}
	return value, true, nil
}

// Put writes all entries with a single MSET, which redis applies atomically
func (s *RedisStore) Put(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]interface{}, 0, len(entries)*2)
	for _, key := range sortedKeys(entries) {
		pairs = append(pairs, s.prefix+key, entries[key])
	}

	if err := s.client.MSet(ctx, pairs...).Err(); err != nil {
		return errs.NewPersistenceError("write", "", err)
	}
	return nil
}

// Close releases the client if the store owns it
func (s *RedisStore) Close() error {
	return s.closer()
}
