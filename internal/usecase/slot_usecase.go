package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time format, use HH:MM")
)

type SlotUsecase interface {
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) SlotUsecase {
	return &slotUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// GetAvailableSlots returns the open booking slots for a doctor's day.
// A day outside the doctor's working days yields an empty list, not an
// error. The result is computed fresh on every call; bookings made after
// this returns are caught again on the create path.
func (u *slotUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, dateStr string) (*dto.SlotListResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.AcceptsAppointments() {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindBlockingByDoctorAndDate(u.db.WithContext(ctx), doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctorID, dateStr, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		DoctorID: doctorID,
		Date:     date.Format("2006-01-02"),
		Slots:    availableSlots(doctor, date, appointments),
	}, nil
}

// availableSlots computes the doctor's candidate slots for the date minus
// the start times held by blocking appointments. Cancelled and no-show
// appointments do not block, so their slots come back into availability.
func availableSlots(doctor *entity.DoctorProfile, date time.Time, appointments []entity.Appointment) []string {
	if !doctor.WorksOn(date.Weekday()) {
		return []string{}
	}

	taken := make(map[string]bool, len(appointments))
	for i := range appointments {
		if appointments[i].Status.BlocksSlot() {
			taken[normalizeClock(appointments[i].StartTime)] = true
		}
	}

	candidates := doctor.CandidateSlots()
	free := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free
}

// normalizeClock trims "HH:MM:SS" values read back from time columns to "HH:MM"
func normalizeClock(value string) string {
	if len(value) > 5 {
		return value[:5]
	}
	return value
}
