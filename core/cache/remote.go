package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Remote is a JSON cache over Redis shared between processes.
// A nil *Remote or nil client turns every call into a miss/no-op.
type Remote struct {
	client *redis.Client
	prefix string
}

func NewRemote(client *redis.Client, prefix string) *Remote {
	return &Remote{client: client, prefix: prefix}
}

func (r *Remote) enabled() bool {
	return r != nil && r.client != nil
}

// GetJSON decodes the value under key into dst. Returns false on miss or any error.
func (r *Remote) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if !r.enabled() {
		return false
	}
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dst) == nil
}

// SetJSON stores v as JSON with ttl.
func (r *Remote) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	if !r.enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, b, ttl).Err()
}

// DeletePrefix removes every key starting with prefix+match.
func (r *Remote) DeletePrefix(ctx context.Context, match string) error {
	if !r.enabled() {
		return nil
	}
	iter := r.client.Scan(ctx, 0, r.prefix+match+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
