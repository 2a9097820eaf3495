package readcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Redis keeps one hash per scope so a single DEL invalidates every cached
// read of the scope. The hash expires ttl after its last write.
type Redis struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedis connects to addr and pings it.
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, scope Scope, field string, dest any) (bool, error) {
	data, err := r.rdb.HGet(ctx, scope.key(), field).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (r *Redis) Set(ctx context.Context, scope Scope, field string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, scope.key(), field, data)
	pipe.Expire(ctx, scope.key(), r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) Invalidate(ctx context.Context, scope Scope) error {
	return r.rdb.Del(ctx, scope.key()).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
