package service

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	lockerCleanupInterval = 10 * time.Minute
	lockerStaleThreshold  = 10 * time.Minute
)

// KeyedLocker serializes booking requests per (doctor, date). The slot
// re-check, token assignment and insert must run as one unit for a given
// doctor's day; requests for different days proceed in parallel.
//
// Mutexes are created lazily and reaped by a background goroutine once idle,
// so the map does not grow with every day ever booked.
type KeyedLocker struct {
	log   *logrus.Logger
	locks sync.Map // map[string]*lockWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

type lockWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewKeyedLocker creates a KeyedLocker and starts its cleanup goroutine.
// Call Stop() during graceful shutdown.
func NewKeyedLocker(log *logrus.Logger) *KeyedLocker {
	l := &KeyedLocker{
		log:      log,
		stopChan: make(chan struct{}),
	}

	l.wg.Add(1)
	go l.cleanupLoop()

	return l
}

// Stop shuts the cleanup goroutine down. Safe to call multiple times.
func (l *KeyedLocker) Stop() {
	if l.stopped.CompareAndSwap(false, true) {
		close(l.stopChan)
		l.wg.Wait()
	}
}

// BookingKey builds the lock key for a doctor's day
func BookingKey(doctorID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s|%s", doctorID, date.Format("2006-01-02"))
}

// Lock acquires the mutex for key and returns the unlock function
func (l *KeyedLocker) Lock(key string) func() {
	lt := l.getLock(key)
	lt.mu.Lock()
	return lt.mu.Unlock
}

func (l *KeyedLocker) getLock(key string) *lockWithTimestamp {
	value, _ := l.locks.LoadOrStore(key, &lockWithTimestamp{})
	lt := value.(*lockWithTimestamp)
	lt.lastUsed.Store(time.Now().Unix())
	return lt
}

func (l *KeyedLocker) cleanupLoop() {
	defer l.wg.Done()

	ticker := time.NewTicker(lockerCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.cleanupStaleLocks()
		}
	}
}

// cleanupStaleLocks removes idle mutexes. TryLock first; the lastUsed check
// happens inside the lock so a concurrent Lock cannot be reaped.
func (l *KeyedLocker) cleanupStaleLocks() {
	cutoff := time.Now().Add(-lockerStaleThreshold).Unix()
	var cleaned int

	l.locks.Range(func(key, value any) bool {
		lt, ok := value.(*lockWithTimestamp)
		if !ok {
			return true
		}

		if lt.mu.TryLock() {
			if lt.lastUsed.Load() < cutoff {
				l.locks.Delete(key)
				cleaned++
			}
			lt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		l.log.Debugf("Cleaned up %d stale booking locks", cleaned)
	}
}
