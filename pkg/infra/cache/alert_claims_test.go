package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/RiskGate/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertClaims_FirstClaimWins(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectSetNX("riskgate:alert:u7", 1, 24*time.Hour).SetVal(true)
	mock.ExpectSetNX("riskgate:alert:u7", 1, 24*time.Hour).SetVal(false)

	claims := cache.NewAlertClaims(redisMock)

	won, err := claims.Claim(context.Background(), "u7", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = claims.Claim(context.Background(), "u7", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertClaims_ClaimError(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectSetNX("riskgate:alert:u7", 1, 24*time.Hour).SetErr(errors.New("connection refused"))

	won, err := cache.NewAlertClaims(redisMock).Claim(context.Background(), "u7", 24*time.Hour)
	assert.Error(t, err)
	assert.False(t, won)
}

func TestAlertClaims_Release(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectDel("riskgate:alert:u7").SetVal(1)

	require.NoError(t, cache.NewAlertClaims(redisMock).Release(context.Background(), "u7"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
