package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists each document as a plain Redis string. Update buffers
// all writes and flushes them through a single MULTI/EXEC pipeline, so a
// mid-transaction failure leaves Redis untouched.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore parses the URL, validates connectivity at startup, and
// returns the backend.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return v, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

type redisTx struct {
	ctx    context.Context
	s      *RedisStore
	staged map[string][]byte
	order  []string
}

func (t *redisTx) Get(key string) ([]byte, error) {
	if v, ok := t.staged[key]; ok {
		return append([]byte(nil), v...), nil
	}
	return t.s.Get(t.ctx, key)
}

func (t *redisTx) Set(key string, value []byte) {
	if _, ok := t.staged[key]; !ok {
		t.order = append(t.order, key)
	}
	t.staged[key] = append([]byte(nil), value...)
}

func (s *RedisStore) Update(ctx context.Context, fn func(tx Tx) error) error {
	tx := &redisTx{ctx: ctx, s: s, staged: make(map[string][]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	if len(tx.order) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range tx.order {
			pipe.Set(ctx, key, tx.staged[key], 0)
		}
		return nil
	})
	return err
}

func (s *RedisStore) Close() error { return s.rdb.Close() }

var _ Store = (*RedisStore)(nil)
