package storage

import (
	"context"
	"fmt"

	"pocketapp/internal/infrastructure/migration"
	"pocketapp/internal/infrastructure/storage/memory"
	"pocketapp/internal/infrastructure/storage/postgres"
	"pocketapp/internal/infrastructure/storage/redis"
	"pocketapp/internal/infrastructure/storage/sqlite"
)

// Store - локальное хранилище строк по ключам, без схемы.
type Store interface {
	// GetMany возвращает только существующие ключи
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany пишет все значения атомарно, если драйвер поддерживает транзакции
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

const (
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Options struct {
	Driver         string
	Path           string
	RedisAddr      string
	RedisPrefix    string
	DatabaseURI    string
	MigrationsPath string
}

// Open открывает хранилище выбранного драйвера. Для postgres перед открытием применяются миграции.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		return sqlite.New(opts.Path)
	case DriverRedis:
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = redis.DefaultPrefix
		}
		return redis.New(ctx, opts.RedisAddr, prefix)
	case DriverPostgres:
		if opts.MigrationsPath != "" {
			mg := migration.NewMigration(migration.Config{
				SourcePath:  opts.MigrationsPath,
				DatabaseURI: opts.DatabaseURI,
			}, migration.DefaultEngine)
			if err := mg.Up(); err != nil {
				return nil, fmt.Errorf("migration error: %w", err)
			}
		}
		return postgres.New(ctx, opts.DatabaseURI)
	case DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("неизвестный драйвер хранилища: %q", opts.Driver)
}
