package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore caches answers in Redis with per-key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          0,
		DialTimeout: 5 * time.Second,
	})
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, fingerprint string) (string, bool) {
	value, err := s.client.Get(ctx, fingerprint).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("redis error getting value for key %s: %v", fingerprint, err)
		return "", false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, fingerprint, answer string, ttl time.Duration) {
	if err := s.client.Set(ctx, fingerprint, answer, ttl).Err(); err != nil {
		log.Printf("redis error setting value for key %s: %v", fingerprint, err)
	}
}

func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
