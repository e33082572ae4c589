package repository

import (
	"context"
	"testing"

	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSettingsRepository_LoadMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisSettingsRepository(cache.NewClientFromRedis(db))
	mock.ExpectGet(cache.SettingsKey).RedisNil()

	raw, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSettingsRepository_LoadMalformed(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisSettingsRepository(cache.NewClientFromRedis(db))
	mock.ExpectGet(cache.SettingsKey).SetVal("{not json")

	_, err := repo.Load(context.Background())

	assert.ErrorContains(t, err, "malformed")
}

func TestRedisSettingsRepository_StoreAndLoad(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRedisSettingsRepository(cache.NewClientFromRedis(db))

	mock.ExpectSet(cache.SettingsKey, `{"alert_threshold":65}`, 0).SetVal("OK")
	require.NoError(t, repo.Store(context.Background(), map[string]interface{}{"alert_threshold": 65}))

	mock.ExpectGet(cache.SettingsKey).SetVal(`{"alert_threshold":65}`)
	raw, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(65), raw["alert_threshold"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
