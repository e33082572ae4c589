package counter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Horizon is the longest window any caller counts over.
const Horizon = 24 * time.Hour

type Opts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
}

// RedisCounter keeps one sorted set per IP scored by request time in unix
// milliseconds, trimmed to Horizon on every write.
type RedisCounter struct {
	redis        *redis.Client
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

func NewRedisCounter(redisClient *redis.Client, opts *Opts) *RedisCounter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	uuidProvider := uuid.New
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &RedisCounter{
		redis:        redisClient,
		timeProvider: timeProvider,
		uuidProvider: uuidProvider,
	}
}

func Key(ip string) string {
	return fmt.Sprintf(cache.IPWindowKeyPattern, ip)
}

// Record adds one request for ip at the given time.
func (c *RedisCounter) Record(ctx context.Context, ip string, at time.Time) error {
	key := Key(ip)
	ts := at.UnixMilli()
	cutoff := c.timeProvider().Add(-Horizon).UnixMilli()

	pipe := c.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", "("+strconv.FormatInt(cutoff, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(ts),
		Member: strconv.FormatInt(ts, 10) + ":" + c.uuidProvider().String(),
	})
	pipe.Expire(ctx, key, Horizon)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record request for %s: %w", ip, err)
	}
	return nil
}

// CountByIP counts hits with since <= at <= now, matching the database
// counter's bounds.
func (c *RedisCounter) CountByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	count, err := c.redis.ZCount(ctx, Key(ip),
		strconv.FormatInt(since.UnixMilli(), 10),
		strconv.FormatInt(c.timeProvider().UnixMilli(), 10),
	).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count requests for %s: %w", ip, err)
	}
	return count, nil
}
