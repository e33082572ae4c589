package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
)

func TestTTLMap_Expiry(t *testing.T) {
	now := time.Unix(1740730536, 0)
	m := NewTTLMap(time.Minute).WithClock(func() time.Time { return now })

	m.Set("k", 1)
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(2 * time.Minute)
	_, ok = m.Get("k")
	assert.False(t, ok)

	m.Set("a", "x")
	m.Clear()
	_, ok = m.Get("a")
	assert.False(t, ok)
}

func TestClient_TTLMapsAreShared(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	c := NewClientFromRedis(rdb)

	assert.Nil(t, c.GetTTLMap(SettingsTTLName))
	created := c.CreateTTLMap(SettingsTTLName, time.Second)
	assert.Same(t, created, c.GetTTLMap(SettingsTTLName))
	assert.Same(t, created, c.CreateTTLMap(SettingsTTLName, time.Hour))
}

func TestClient_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewClientFromRedis(rdb)

	mock.ExpectPublish("chan", []byte("payload")).SetVal(1)
	assert.NoError(t, c.Publish(context.Background(), "chan", []byte("payload")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
