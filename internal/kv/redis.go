package kv

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "leetcodebot:"

// RedisStore namespaces every key under prefix so the bot can share a
// database with other apps.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(ctx context.Context, addr, password string, db int, prefix string) (*RedisStore, error) {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	log.Printf("NewRedisStore: connected to %s (db %d, prefix %q)", addr, db, prefix)
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisStore) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
