// Package kv is the raw key/value layer behind the streak repository.
// Values are opaque strings (JSON documents); a missing key is reported
// through the found flag, never as an error.
package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	BackendMemory    = "memory"
	BackendRedis     = "redis"
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

var (
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrMissingConfig  = errors.New("store backend is missing configuration")
)

// Store is a string key/value namespace with read-after-write consistency
// for a single key.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
	// List returns every key in the namespace, sorted.
	List(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

type Options struct {
	Backend string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	DatabaseURL string

	FirestoreProjectID      string
	FirestoreCollection     string
	FirebaseCredentialsFile string
}

// New opens the backend named by opts.Backend.
func New(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, fmt.Errorf("%w: REDIS_ADDR", ErrMissingConfig)
		}
		return NewRedisStore(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix)
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingConfig)
		}
		return NewPostgresStore(ctx, opts.DatabaseURL)
	case BackendFirestore:
		if opts.FirestoreProjectID == "" {
			return nil, fmt.Errorf("%w: FIRESTORE_PROJECT_ID", ErrMissingConfig)
		}
		return NewFirestoreStore(ctx, opts.FirestoreProjectID, opts.FirestoreCollection, opts.FirebaseCredentialsFile)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
