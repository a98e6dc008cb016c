package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "instafetch:resolve:"

	connectTimeout = 2 * time.Second
)

// RedisStore is a Redis-backed resolution cache for multi-instance
// deployments. Values are JSON documents with a server-side TTL, so expiry
// needs no read-time check of our own.
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int, log logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	if log == nil {
		log = logger.NewNop()
	}
	return &RedisStore{client: client, logger: log}, nil
}

// Get returns the cached content for shortcode, or false when absent.
// Redis errors are treated as misses; a broken cache degrades to extra
// upstream calls rather than failed requests.
func (s *RedisStore) Get(ctx context.Context, shortcode string) (*domain.ResolvedContent, bool) {
	data, err := s.client.Get(ctx, keyPrefix+shortcode).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Redis cache read failed",
				logger.String("shortcode", shortcode),
				logger.Error(err),
			)
		}
		return nil, false
	}

	var content domain.ResolvedContent
	if err := json.Unmarshal(data, &content); err != nil {
		s.logger.Warn("Redis cache entry corrupt, dropping",
			logger.String("shortcode", shortcode),
			logger.Error(err),
		)
		_ = s.client.Del(ctx, keyPrefix+shortcode).Err()
		return nil, false
	}

	return &content, true
}

// Put stores content under shortcode with ttl, replacing any previous value.
func (s *RedisStore) Put(ctx context.Context, shortcode string, content *domain.ResolvedContent, ttl time.Duration) {
	data, err := json.Marshal(content)
	if err != nil {
		s.logger.Warn("Marshal cache entry failed",
			logger.String("shortcode", shortcode),
			logger.Error(err),
		)
		return
	}

	if err := s.client.Set(ctx, keyPrefix+shortcode, data, ttl).Err(); err != nil {
		s.logger.Warn("Redis cache write failed",
			logger.String("shortcode", shortcode),
			logger.Error(err),
		)
	}
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
