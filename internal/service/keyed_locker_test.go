package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLocker(t *testing.T) *KeyedLocker {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	l := NewKeyedLocker(log)
	t.Cleanup(l.Stop)
	return l
}

func TestBookingKey(t *testing.T) {
	doctorID := uuid.MustParse("0b27a16e-9a5c-4f9a-8c5e-0d7f3c2d1a00")
	date := time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)

	key := BookingKey(doctorID, date)
	assert.Equal(t, "0b27a16e-9a5c-4f9a-8c5e-0d7f3c2d1a00|2026-09-07", key)

	// Time of day does not change the key
	sameDay := BookingKey(doctorID, date.Add(3*time.Hour))
	assert.Equal(t, key, sameDay)

	nextDay := BookingKey(doctorID, date.AddDate(0, 0, 1))
	assert.NotEqual(t, key, nextDay)
}

func TestLockSerializesSameKey(t *testing.T) {
	l := newTestLocker(t)

	const workers = 20
	var counter int
	var wg sync.WaitGroup

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := l.Lock("doctor-a|2026-09-07")
			defer unlock()
			// Unsynchronized increment; the race detector flags this if
			// the lock does not serialize
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	l := newTestLocker(t)

	unlockA := l.Lock("doctor-a|2026-09-07")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := l.Lock("doctor-b|2026-09-07")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	l := NewKeyedLocker(log)

	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestCleanupKeepsHeldLocks(t *testing.T) {
	l := newTestLocker(t)

	unlock := l.Lock("held")
	defer unlock()

	l.Lock("idle")()

	// Backdate both timestamps past the stale threshold
	l.locks.Range(func(key, value any) bool {
		value.(*lockWithTimestamp).lastUsed.Store(time.Now().Add(-time.Hour).Unix())
		return true
	})

	l.cleanupStaleLocks()

	_, heldExists := l.locks.Load("held")
	_, idleExists := l.locks.Load("idle")
	assert.True(t, heldExists, "a held lock must survive cleanup")
	assert.False(t, idleExists, "an idle lock should be reaped")
}
