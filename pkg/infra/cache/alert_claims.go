package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AlertClaims hands out one alert per user per window. The claim is a single
// SET NX EX, so concurrent requests on any replica agree on one winner.
type AlertClaims struct {
	redis *redis.Client
}

func NewAlertClaims(redisClient *redis.Client) *AlertClaims {
	return &AlertClaims{redis: redisClient}
}

func AlertClaimKey(userID string) string {
	return fmt.Sprintf(AlertClaimKeyPattern, userID)
}

// Claim reports whether the caller now owns the alert for userID. A false
// result with a nil error means another request already holds it.
func (a *AlertClaims) Claim(ctx context.Context, userID string, window time.Duration) (bool, error) {
	ok, err := a.redis.SetNX(ctx, AlertClaimKey(userID), 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim alert for user %s: %w", userID, err)
	}
	return ok, nil
}

// Release gives the claim back, e.g. when the alert could not be stored.
func (a *AlertClaims) Release(ctx context.Context, userID string) error {
	if err := a.redis.Del(ctx, AlertClaimKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to release alert claim for user %s: %w", userID, err)
	}
	return nil
}
