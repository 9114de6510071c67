package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"goblog/internal/config"
)

// Cache — обёртка над Redis для кеширования выдачи поиска постов.
// Nil-Cache безопасен: все методы становятся no-op, БД остаётся источником истины.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return &Cache{rdb: rdb, ttl: cfg.Redis.TTL}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) Close() {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Close(); err != nil {
		log.Printf("Redis: ошибка при закрытии: %v", err)
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Redis: GET %q: %v", key, err)
		return nil, false
	}

	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if c == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		log.Printf("Redis: SET %q: %v", key, err)
	}
}

// Incr увеличивает счётчик версии пространства ключей: любое изменение
// постов делает старые ключи поиска недостижимыми.
func (c *Cache) Incr(ctx context.Context, key string) int64 {
	if c == nil {
		return 0
	}

	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("Redis: INCR %q: %v", key, err)
		return 0
	}

	return n
}

func (c *Cache) GetInt(ctx context.Context, key string) int64 {
	if c == nil {
		return 0
	}

	n, err := c.rdb.Get(ctx, key).Int64()
	if err != nil && err != redis.Nil {
		log.Printf("Redis: GET %q: %v", key, err)
	}

	return n
}
