package repository

import (
	"errors"
	"time"

	"hospital-management-service/internal/domain/entity"
	domainRepo "hospital-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor.User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindBlockingByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("doctor_id = ? AND date = ? AND status NOT IN ?",
			doctorID, date.Format("2006-01-02"),
			[]entity.AppointmentStatus{entity.AppointmentStatusCancelled, entity.AppointmentStatusNoShow}).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MaxTokenNo(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int, error) {
	var maxToken int
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(MAX(token_no), 0)").
		Where("doctor_id = ? AND date = ?", doctorID, date.Format("2006-01-02")).
		Scan(&maxToken).Error
	if err != nil {
		return 0, err
	}
	return maxToken, nil
}

// UpdateStatusFrom is the single enforcement point for workflow transitions:
// the WHERE clause on the current status makes concurrent transitions on the
// same appointment mutually exclusive.
func (r *appointmentRepository) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindPage(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.DoctorID != uuid.Nil {
			query = query.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Patient").Preload("Doctor.User").
		Order("date ASC, start_time ASC").
		Limit(limit).Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByDateAndStatus(db *gorm.DB, date time.Time, status entity.AppointmentStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date = ? AND status = ?", date.Format("2006-01-02"), status).
		Count(&count).Error
	return count, err
}
