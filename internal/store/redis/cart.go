// Package redis persists carts in a scoped key/value store so a session's
// cart survives reconnects. Every failure here is recoverable: callers keep
// the in-memory cart and only log the miss.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "cart:"

type Config struct {
	URL string
	TTL time.Duration
}

type CartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCartStore(cfg Config) (*CartStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &CartStore{rdb: rdb, ttl: cfg.TTL}, nil
}

func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := s.rdb.Set(ctx, cartKeyPrefix+cart.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Load returns an empty cart when nothing is stored under the session key.
func (s *CartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	val, err := s.rdb.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return &domain.Cart{SessionID: sessionID}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return &cart, nil
}

func (s *CartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *CartStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *CartStore) Close() error {
	return s.rdb.Close()
}
