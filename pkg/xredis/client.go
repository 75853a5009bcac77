package xredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
)

type Client interface {
	// Sorted set. Minted token ids are stored with a monotonic score so the
	// insertion order survives a round trip.
	ZAddNX(ctx context.Context, key string, z redis.Z) error
	ZRangeWithScores(ctx context.Context, key string) ([]redis.Z, error)

	// Single object
	SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObj(ctx context.Context, key string, v any) error
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            xcontext.Configs(ctx).Redis.Addr,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

func (c *client) ZAddNX(ctx context.Context, key string, z redis.Z) error {
	return c.redisClient.ZAddNX(ctx, key, z).Err()
}

func (c *client) ZRangeWithScores(ctx context.Context, key string) ([]redis.Z, error) {
	return c.redisClient.ZRangeWithScores(ctx, key, 0, -1).Result()
}

func (c *client) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	return c.redisClient.Set(ctx, key, b, ttl).Err()
}

func (c *client) GetObj(ctx context.Context, key string, v any) error {
	s, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(s), v)
}
