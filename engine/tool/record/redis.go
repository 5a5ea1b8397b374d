package record

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis API the repository needs.
type RedisClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HKeys(ctx context.Context, key string) *redis.StringSliceCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisRepository reads records from one Redis hash per table. Each hash
// field holds a record encoded as an ordered YAML mapping.
type RedisRepository struct {
	client RedisClient
	key    string
}

func NewRedisRepository(client RedisClient, prefix, table string) *RedisRepository {
	return &RedisRepository{client: client, key: prefix + "records:" + table}
}

func (r *RedisRepository) Lookup(ctx context.Context, key string) (Record, error) {
	raw, err := r.client.HGet(ctx, r.key, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s from %s: %w", key, r.key, err)
	}
	return ParseRecord(raw)
}

// Keys returns the table keys in sorted order; hashes carry no ordering.
func (r *RedisRepository) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.client.HKeys(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys of %s: %w", r.key, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Seed replaces the table contents with entries.
func (r *RedisRepository) Seed(ctx context.Context, entries []Entry) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.key, err)
	}
	if len(entries) == 0 {
		return nil
	}
	values := make([]any, 0, len(entries)*2)
	for _, e := range entries {
		data, err := e.Record.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode record %s: %w", e.Key, err)
		}
		values = append(values, e.Key, string(data))
	}
	if err := r.client.HSet(ctx, r.key, values...).Err(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", r.key, err)
	}
	return nil
}
