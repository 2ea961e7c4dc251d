package ticket

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSequencer issues daily ticket numbers with INCR, so codes stay
// unique across restarts and across multiple server instances.
type RedisSequencer struct {
	rdb *redis.Client
}

func NewRedisSequencer(rdb *redis.Client) *RedisSequencer {
	return &RedisSequencer{rdb: rdb}
}

func (s *RedisSequencer) Next(ctx context.Context, day string) (int64, error) {
	key := fmt.Sprintf("tickets:counter:%s", day)
	return s.rdb.Incr(ctx, key).Result()
}
