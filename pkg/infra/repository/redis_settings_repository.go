package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain/settings"
	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
)

type redisSettingsRepository struct {
	client cache.Client
}

func NewRedisSettingsRepository(client cache.Client) settings.Repository {
	return &redisSettingsRepository{client: client}
}

// Load returns nil, nil when nothing has been stored yet.
func (r *redisSettingsRepository) Load(ctx context.Context) (map[string]interface{}, error) {
	raw, err := r.client.Get(ctx, cache.SettingsKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("stored settings are malformed: %w", err)
	}
	return out, nil
}

func (r *redisSettingsRepository) Store(ctx context.Context, raw map[string]interface{}) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := r.client.Set(ctx, cache.SettingsKey, string(payload), 0); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	return nil
}
