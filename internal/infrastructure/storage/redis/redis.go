package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix отделяет ключи приложения от прочих данных в общей базе.
const DefaultPrefix = "pocketapp:"

type Storage struct {
	client *redis.Client
	prefix string
}

// New подключается к Redis и проверяет соединение.
func New(ctx context.Context, addr, prefix string) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis недоступен: %w", err)
	}

	return NewFromClient(client, prefix), nil
}

func NewFromClient(client *redis.Client, prefix string) *Storage {
	return &Storage{
		client: client,
		prefix: prefix,
	}
}

func (s *Storage) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	values, err := s.client.MGet(ctx, s.keys(keys)...).Result()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения значений: %w", err)
	}

	for i, v := range values {
		if str, ok := v.(string); ok {
			result[keys[i]] = str
		}
	}
	return result, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("ошибка сохранения значения %s: %w", key, err)
	}
	return nil
}

// SetMany выполняет запись в MULTI/EXEC.
func (s *Storage) SetMany(ctx context.Context, values map[string]string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения значений: %w", err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, s.keys(keys)...).Err(); err != nil {
		return fmt.Errorf("ошибка удаления значений: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) keys(keys []string) []string {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = s.prefix + k
	}
	return prefixed
}
