package service

import (
	"context"
	"fmt"
	"time"

	"hospital-management-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefixes for the patient-facing queue board
	RedisTokenKeyPrefix   = "queue:tokens:"
	RedisServingKeyPrefix = "queue:serving:"

	// Batch size for startup sync; the pipeline is created and executed
	// inside the batch loop so memory stays bounded.
	queueSyncBatchSize = 500
)

// QueueBoardService keeps the per-doctor-per-day queue counters in Redis:
// the highest token issued so far and the token currently being served.
// Postgres is the source of truth; Redis is a display cache that is rebuilt
// from the appointments table on startup and updated post-commit on the
// booking and status paths. A write failure here never fails a booking.
type QueueBoardService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
}

// TokenResult holds queue sync data from the database
type TokenResult struct {
	DoctorID   string
	Date       time.Time
	MaxTokenNo int
}

func NewQueueBoardService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *QueueBoardService {
	return &QueueBoardService{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

// SyncOnStartup rebuilds the token counters for today and future dates from
// the appointments table. Should be called before accepting traffic.
func (s *QueueBoardService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting queue board re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Errorf("Redis is not available, queue board sync aborted: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	offset := 0
	totalSynced := 0

	for {
		var results []TokenResult

		err := s.db.Model(&entity.Appointment{}).
			Select("doctor_id, date, MAX(token_no) as max_token_no").
			Where("date >= ?", today.Format("2006-01-02")).
			Group("doctor_id, date").
			Order("doctor_id, date").
			Limit(queueSyncBatchSize).
			Offset(offset).
			Scan(&results).Error

		if err != nil {
			s.log.Errorf("Failed to query token counters at offset %d: %+v", offset, err)
			return fmt.Errorf("query token counters at offset %d: %w", offset, err)
		}

		if len(results) == 0 {
			if offset == 0 {
				s.log.Info("No upcoming appointments found for queue board sync")
			}
			break
		}

		// New pipeline per batch
		pipe := s.redisClient.TxPipeline()

		for _, result := range results {
			tokenKey := tokenKey(result.DoctorID, result.Date)
			ttl := s.calculateTTL(result.Date)
			pipe.Set(ctx, tokenKey, result.MaxTokenNo, ttl)
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(results)

		if len(results) < queueSyncBatchSize {
			break
		}

		offset += queueSyncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	elapsed := time.Since(startTime)
	s.log.Infof("Queue board re-sync completed: %d doctor-days synced in %v", totalSynced, elapsed)

	return nil
}

// PublishToken records a newly issued token on the board.
// Tokens are monotonically increasing and never reused, so the counter only
// ever moves forward; a lower concurrent value is discarded.
func (s *QueueBoardService) PublishToken(ctx context.Context, doctorID string, date time.Time, tokenNo int) error {
	key := tokenKey(doctorID, date)
	ttl := s.calculateTTL(date)

	current, err := s.redisClient.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("get token counter %s: %w", key, err)
	}
	if tokenNo <= current {
		return nil
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, key, tokenNo, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish token %s: %w", key, err)
	}

	s.log.Debugf("Queue board: doctor=%s date=%s token=%d", doctorID, date.Format("2006-01-02"), tokenNo)
	return nil
}

// SetNowServing records the token of the appointment currently in progress
func (s *QueueBoardService) SetNowServing(ctx context.Context, doctorID string, date time.Time, tokenNo int) error {
	key := servingKey(doctorID, date)
	ttl := s.calculateTTL(date)

	if err := s.redisClient.Set(ctx, key, tokenNo, ttl).Err(); err != nil {
		return fmt.Errorf("set now-serving %s: %w", key, err)
	}
	return nil
}

// Snapshot returns (tokens issued, token now serving) for a doctor's day.
// Missing keys read as zero.
func (s *QueueBoardService) Snapshot(ctx context.Context, doctorID string, date time.Time) (int, int, error) {
	issued, err := s.redisClient.Get(ctx, tokenKey(doctorID, date)).Int()
	if err != nil && err != redis.Nil {
		return 0, 0, fmt.Errorf("get token counter: %w", err)
	}

	serving, err := s.redisClient.Get(ctx, servingKey(doctorID, date)).Int()
	if err != nil && err != redis.Nil {
		return 0, 0, fmt.Errorf("get now-serving: %w", err)
	}

	return issued, serving, nil
}

func tokenKey(doctorID string, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", RedisTokenKeyPrefix, doctorID, date.Format("2006-01-02"))
}

func servingKey(doctorID string, date time.Time) string {
	return fmt.Sprintf("%s%s:%s", RedisServingKeyPrefix, doctorID, date.Format("2006-01-02"))
}

// calculateTTL returns TTL: 24 hours after the appointment date
func (s *QueueBoardService) calculateTTL(date time.Time) time.Duration {
	expireAt := date.AddDate(0, 0, 1)
	ttl := time.Until(expireAt)

	if ttl <= 0 {
		// Past date - short TTL for cleanup
		return 1 * time.Minute
	}

	return ttl
}
