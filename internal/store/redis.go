package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/lovespark/internal/config"
)

// RedisStore keeps every record as a plain string value without TTL.
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisStore{Client: redis.NewClient(opts)}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil // miss
	} else if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return true, decode(key, data, dst)
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, key, data, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}

// Update watches keys, runs fn against the watched connection and applies
// the staged writes in a single MULTI/EXEC. A concurrent write to a watched
// key aborts EXEC and the whole attempt is replayed.
func (s *RedisStore) Update(ctx context.Context, keys []string, fn func(tx Tx) error) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := s.Client.Watch(ctx, func(rtx *redis.Tx) error {
			tx := &redisTx{ctx: ctx, rtx: rtx, writes: map[string][]byte{}}
			if err := fn(tx); err != nil {
				return err
			}
			return tx.commit()
		}, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

type redisTx struct {
	ctx    context.Context
	rtx    *redis.Tx
	writes map[string][]byte // nil marks a delete
	order  []string
}

func (t *redisTx) Get(key string, dst any) (bool, error) {
	if data, staged := t.writes[key]; staged {
		if data == nil {
			return false, nil
		}
		return true, decode(key, data, dst)
	}
	data, err := t.rtx.Get(t.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return true, decode(key, data, dst)
}

func (t *redisTx) Set(key string, value any) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	t.stage(key, data)
	return nil
}

func (t *redisTx) Remove(keys ...string) error {
	for _, k := range keys {
		t.stage(k, nil)
	}
	return nil
}

func (t *redisTx) stage(key string, data []byte) {
	if _, seen := t.writes[key]; !seen {
		t.order = append(t.order, key)
	}
	t.writes[key] = data
}

func (t *redisTx) commit() error {
	if len(t.order) == 0 {
		return nil
	}
	_, err := t.rtx.TxPipelined(t.ctx, func(p redis.Pipeliner) error {
		for _, k := range t.order {
			if data := t.writes[k]; data == nil {
				p.Del(t.ctx, k)
			} else {
				p.Set(t.ctx, k, data, 0)
			}
		}
		return nil
	})
	return err
}
