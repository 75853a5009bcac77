package testutil

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// MockRedisClient implements xredis.Client with overridable functions. The
// zero value behaves like an empty redis: reads miss, writes succeed.
type MockRedisClient struct {
	ZAddNXFunc           func(ctx context.Context, key string, z redis.Z) error
	ZRangeWithScoresFunc func(ctx context.Context, key string) ([]redis.Z, error)
	SetObjFunc           func(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObjFunc           func(ctx context.Context, key string, v any) error
}

func (m *MockRedisClient) ZAddNX(ctx context.Context, key string, z redis.Z) error {
	if m.ZAddNXFunc != nil {
		return m.ZAddNXFunc(ctx, key, z)
	}

	return nil
}

func (m *MockRedisClient) ZRangeWithScores(ctx context.Context, key string) ([]redis.Z, error) {
	if m.ZRangeWithScoresFunc != nil {
		return m.ZRangeWithScoresFunc(ctx, key)
	}

	return nil, nil
}

func (m *MockRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	if m.SetObjFunc != nil {
		return m.SetObjFunc(ctx, key, obj, ttl)
	}

	return nil
}

func (m *MockRedisClient) GetObj(ctx context.Context, key string, v any) error {
	if m.GetObjFunc != nil {
		return m.GetObjFunc(ctx, key, v)
	}

	return redis.Nil
}
