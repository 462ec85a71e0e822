// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-gym-keeper/internal/config"
	"github.com/MKhiriev/go-gym-keeper/internal/logger"
)

// redisSessionStore is the Redis-backed [SessionStore]. Expiry is delegated
// to Redis key TTLs.
type redisSessionStore struct {
	client *redis.Client
}

// NewConnectRedis creates a client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Sessions, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionStore wraps an existing client.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Get").Msg("failed to get session from redis")
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	return value, nil
}

func (s *redisSessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Set").Msg("failed to set session in redis")
		return fmt.Errorf("failed to set session in redis: %w", err)
	}

	return nil
}

func (s *redisSessionStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.Remove").Msg("failed to delete session from redis")
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}

	return nil
}
