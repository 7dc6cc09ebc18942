package usecase

import (
	"regexp"
	"testing"
	"time"

	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
	"hospital-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeAppointmentStore is an in-memory AppointmentRepository. It mirrors the
// SQL semantics the booking path relies on: the blocking query filters on
// slot-blocking statuses, the max-token query does not.
type fakeAppointmentStore struct {
	rows []*entity.Appointment
}

var _ repository.AppointmentRepository = (*fakeAppointmentStore)(nil)

func (s *fakeAppointmentStore) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	copied := *appointment
	s.rows = append(s.rows, &copied)
	return nil
}

func (s *fakeAppointmentStore) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	for _, row := range s.rows {
		if row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeAppointmentStore) FindBlockingByDoctorAndDate(_ *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	for _, row := range s.rows {
		if row.DoctorID == doctorID && sameDay(row.Date, date) && row.Status.BlocksSlot() {
			appointments = append(appointments, *row)
		}
	}
	return appointments, nil
}

func (s *fakeAppointmentStore) MaxTokenNo(_ *gorm.DB, doctorID uuid.UUID, date time.Time) (int, error) {
	maxToken := 0
	for _, row := range s.rows {
		if row.DoctorID == doctorID && sameDay(row.Date, date) && row.TokenNo > maxToken {
			maxToken = row.TokenNo
		}
	}
	return maxToken, nil
}

func (s *fakeAppointmentStore) UpdateStatusFrom(_ *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error) {
	var affected int64
	for _, row := range s.rows {
		if row.ID == id && row.Status == from {
			row.Status = to
			affected++
		}
	}
	return affected, nil
}

func (s *fakeAppointmentStore) FindPage(_ *gorm.DB, _ *entity.AppointmentFilter, _, _ int) ([]entity.Appointment, int64, error) {
	appointments := make([]entity.Appointment, 0, len(s.rows))
	for _, row := range s.rows {
		appointments = append(appointments, *row)
	}
	return appointments, int64(len(appointments)), nil
}

func (s *fakeAppointmentStore) CountByDate(_ *gorm.DB, date time.Time) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if sameDay(row.Date, date) {
			count++
		}
	}
	return count, nil
}

func (s *fakeAppointmentStore) CountByDateAndStatus(_ *gorm.DB, date time.Time, status entity.AppointmentStatus) (int64, error) {
	var count int64
	for _, row := range s.rows {
		if sameDay(row.Date, date) && row.Status == status {
			count++
		}
	}
	return count, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestGenerateAppointmentNo(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	no := generateAppointmentNo(date)
	assert.Regexp(t, regexp.MustCompile(`^APT-20260907-[0-9A-F]{6}$`), no)

	// Two numbers for the same date should differ
	other := generateAppointmentNo(date)
	assert.NotEqual(t, no, other)
}

func TestSlotIsFree(t *testing.T) {
	doctor := testDoctor()

	assert.True(t, slotIsFree(doctor, testMonday, nil, "09:00"))
	assert.False(t, slotIsFree(doctor, testMonday, nil, "10:00"), "slot at closing time is outside the window")
	assert.False(t, slotIsFree(doctor, testMonday, nil, "09:10"), "off-grid time is not a slot")

	booked := []entity.Appointment{
		{StartTime: "09:00", Status: entity.AppointmentStatusScheduled},
	}
	assert.False(t, slotIsFree(doctor, testMonday, booked, "09:00"))
	assert.True(t, slotIsFree(doctor, testMonday, booked, "09:15"))
}

func TestTypeAllowed(t *testing.T) {
	assert.True(t, typeAllowed(entity.AppointmentTypeNew, "visit"))
	assert.True(t, typeAllowed(entity.AppointmentTypeEmergency, "visit"))
	assert.False(t, typeAllowed(entity.AppointmentTypeConsultation, "visit"))

	assert.True(t, typeAllowed(entity.AppointmentTypeConsultation, "clinical"))
	assert.False(t, typeAllowed(entity.AppointmentTypeNew, "clinical"))

	assert.False(t, typeAllowed(entity.AppointmentType("WALK_IN"), "visit"))
	assert.False(t, typeAllowed(entity.AppointmentType(""), "visit"))
}

func TestParseStartTime(t *testing.T) {
	// Unpadded hours normalize to the slot grid format
	got, err := parseStartTime("9:00")
	assert.NoError(t, err)
	assert.Equal(t, "09:00", got)

	got, err = parseStartTime("09:15")
	assert.NoError(t, err)
	assert.Equal(t, "09:15", got)

	_, err = parseStartTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = parseStartTime("nine")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = parseStartTime("")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestBookSlotTokensNeverReused(t *testing.T) {
	store := &fakeAppointmentStore{}
	u := &appointmentUsecase{log: quietLogger(), appointmentRepo: store}

	doctor := testDoctor()
	doctorID := uuid.New()
	request := func(start string) *dto.CreateAppointmentRequest {
		return &dto.CreateAppointmentRequest{
			PatientID: uuid.New(),
			DoctorID:  doctorID,
			Date:      "2026-09-07",
			StartTime: start,
			Type:      "NEW",
		}
	}

	first, err := u.bookSlot(nil, doctor, request("09:00"), testMonday, "09:00", entity.AppointmentTypeNew)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.TokenNo)

	second, err := u.bookSlot(nil, doctor, request("09:15"), testMonday, "09:15", entity.AppointmentTypeNew)
	assert.NoError(t, err)
	assert.Equal(t, 2, second.TokenNo)

	// A taken slot is rejected
	_, err = u.bookSlot(nil, doctor, request("09:00"), testMonday, "09:00", entity.AppointmentTypeNew)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Cancellation releases the slot but retires the token number
	affected, err := store.UpdateStatusFrom(nil, first.ID, entity.AppointmentStatusScheduled, entity.AppointmentStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	third, err := u.bookSlot(nil, doctor, request("09:00"), testMonday, "09:00", entity.AppointmentTypeNew)
	assert.NoError(t, err)
	assert.Equal(t, "09:00", third.StartTime)
	assert.Equal(t, 3, third.TokenNo, "cancelled token 1 must not be reissued")
}
