package metadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisRepository keeps every key as a plain Redis string named
// prefix + key. Clear and List only touch keys under the prefix.
type RedisRepository struct {
	client redis.UniversalClient
	cmd    redis.Cmdable
	prefix string
	queued bool
}

func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	return &RedisRepository{client: client, cmd: client, prefix: prefix}
}

func (r *RedisRepository) key(k string) string {
	return r.prefix + k
}

func (r *RedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if r.queued {
		return nil, ErrReadInTx
	}
	v, err := r.cmd.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return v, nil
}

func (r *RedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.cmd.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.cmd.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	it := r.client.Scan(ctx, 0, r.prefix+"*", scanBatch).Iterator()
	for it.Next(ctx) {
		keys = append(keys, it.Val())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *RedisRepository) List(ctx context.Context) (map[string][]byte, error) {
	if r.queued {
		return nil, ErrReadInTx
	}

	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}

	result := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	for i, k := range keys {
		s, ok := values[i].(string)
		if !ok {
			// expired or deleted between SCAN and MGET
			continue
		}
		result[k[len(r.prefix):]] = []byte(s)
	}
	return result, nil
}

// Clear deletes every key under the prefix. Inside InTx the key scan runs
// immediately and the delete is queued with the rest of the transaction.
func (r *RedisRepository) Clear(ctx context.Context) error {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.cmd.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

// InTx queues fn's writes in a MULTI/EXEC pipeline. Reads through the
// repository given to fn return ErrReadInTx.
func (r *RedisRepository) InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(ctx, &RedisRepository{client: r.client, cmd: pipe, prefix: r.prefix, queued: true})
	})
	if err != nil {
		return fmt.Errorf("metadata transaction: %w", err)
	}
	return nil
}
