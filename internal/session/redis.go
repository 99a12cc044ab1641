package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/inventory-console/internal/config"
	"github.com/magabrotheeeer/inventory-console/internal/models"
)

// sessionKey единственный ключ, под которым лежит сериализованная сессия.
const sessionKey = "inventory-console:session"

// RedisStorage реализация Storage поверх redis.
type RedisStorage struct {
	db *redis.Client
}

// NewRedisStorage подключается к redis и проверяет соединение.
func NewRedisStorage(ctx context.Context, cfg config.RedisConnection) (*RedisStorage, error) {
	const op = "session.NewRedisStorage"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStorage{db: db}, nil
}

// Load читает сессию из redis. Отсутствие ключа — не ошибка.
func (r *RedisStorage) Load(ctx context.Context) (*models.Session, error) {
	const op = "session.RedisStorage.Load"

	val, err := r.db.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var s models.Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Save перезаписывает сессию без срока жизни: токен живёт столько,
// сколько решил внешний API.
func (r *RedisStorage) Save(ctx context.Context, s *models.Session) error {
	const op = "session.RedisStorage.Save"

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.db.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear удаляет ключ сессии.
func (r *RedisStorage) Clear(ctx context.Context) error {
	const op = "session.RedisStorage.Clear"

	if err := r.db.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
