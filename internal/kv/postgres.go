package kv

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps the key space in a single kv_store table.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dbURL string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	log.Println("NewPostgresStore: connected, kv_store ready")
	return &PostgresStore{db: pool}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresStore) Put(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("postgres put %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := p.db.Query(ctx, `SELECT key FROM kv_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("postgres list: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres list: %w", err)
	}
	return keys, nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *PostgresStore) Close() error {
	p.db.Close()
	return nil
}
