package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestQueueBoardKeys(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "queue:tokens:doc-1:2026-09-07", tokenKey("doc-1", date))
	assert.Equal(t, "queue:serving:doc-1:2026-09-07", servingKey("doc-1", date))
}

func TestCalculateTTL(t *testing.T) {
	s := &QueueBoardService{}

	// A future date expires 24h after the appointment day
	tomorrow := time.Now().AddDate(0, 0, 1)
	ttl := s.calculateTTL(tomorrow)
	assert.Greater(t, ttl, 24*time.Hour)
	assert.LessOrEqual(t, ttl, 49*time.Hour)

	// Past dates get a short cleanup TTL
	lastWeek := time.Now().AddDate(0, 0, -7)
	assert.Equal(t, time.Minute, s.calculateTTL(lastWeek))
}

func TestSyncOnStartupFailsWhenRedisUnreachable(t *testing.T) {
	// The board is load-bearing at startup; an unreachable Redis must
	// surface as an error, not a silent skip.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s := NewQueueBoardService(nil, client, log)

	err := s.SyncOnStartup(context.Background())
	assert.Error(t, err)
	assert.ErrorContains(t, err, "redis ping failed")
}
