package repository

import (
	"time"

	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindBlockingByDoctorAndDate returns appointments that still occupy a
	// slot on the given day (status not CANCELLED / NO_SHOW).
	FindBlockingByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// MaxTokenNo returns the highest token number ever assigned for the
	// doctor/date pair, 0 if none. Cancelled appointments count; tokens are
	// never reused.
	MaxTokenNo(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int, error)
	// UpdateStatusFrom applies a status transition only if the row is still
	// in the expected current status. Returns affected rows: 1 = applied,
	// 0 = lost the race or invalid edge.
	UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	FindPage(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	CountByDate(db *gorm.DB, date time.Time) (int64, error)
	CountByDateAndStatus(db *gorm.DB, date time.Time, status entity.AppointmentStatus) (int64, error)
}
