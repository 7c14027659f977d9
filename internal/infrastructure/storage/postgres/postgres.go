package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage хранит пары ключ-значение в таблице kv_entries. Схему создают миграции.
type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURI string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Storage{pool: pool}, nil
}

const upsertQuery = `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`

func (s *Storage) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	rows, err := s.pool.Query(ctx, `SELECT key, value FROM kv_entries WHERE key = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("select values: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan value: %w", err)
		}
		result[k] = v
	}
	return result, rows.Err()
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// SetMany записывает все значения в одной транзакции.
func (s *Storage) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for k, v := range values {
		if _, err := tx.Exec(ctx, upsertQuery, k, v); err != nil {
			return fmt.Errorf("upsert %s: %w", k, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete values: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
