package usecase

import (
	"testing"
	"time"

	"hospital-management-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testDoctor() *entity.DoctorProfile {
	return &entity.DoctorProfile{
		WorkStart:       "09:00",
		WorkEnd:         "10:00",
		SlotDurationMin: 15,
		WorkingDays:     "1,2,3,4,5",
	}
}

// 2026-09-07 is a Monday
var testMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestAvailableSlotsEmptyDay(t *testing.T) {
	slots := availableSlots(testDoctor(), testMonday, nil)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slots)
}

func TestAvailableSlotsBookingRemovesSlot(t *testing.T) {
	appointments := []entity.Appointment{
		{StartTime: "09:15", Status: entity.AppointmentStatusScheduled},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Equal(t, []string{"09:00", "09:30", "09:45"}, slots)
}

func TestAvailableSlotsCancelledReleasesSlot(t *testing.T) {
	appointments := []entity.Appointment{
		{StartTime: "09:15", Status: entity.AppointmentStatusCancelled},
		{StartTime: "09:30", Status: entity.AppointmentStatusNoShow},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slots)
}

func TestAvailableSlotsRebookedAfterCancellation(t *testing.T) {
	// The slot was cancelled once and rebooked; the active row wins
	appointments := []entity.Appointment{
		{StartTime: "09:00", Status: entity.AppointmentStatusCancelled},
		{StartTime: "09:00", Status: entity.AppointmentStatusScheduled},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Equal(t, []string{"09:15", "09:30", "09:45"}, slots)
}

func TestAvailableSlotsCompletedStillBlocks(t *testing.T) {
	appointments := []entity.Appointment{
		{StartTime: "09:00", Status: entity.AppointmentStatusCompleted},
		{StartTime: "09:15", Status: entity.AppointmentStatusInProgress},
		{StartTime: "09:30", Status: entity.AppointmentStatusCheckedIn},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Equal(t, []string{"09:45"}, slots)
}

func TestAvailableSlotsDayOff(t *testing.T) {
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	slots := availableSlots(testDoctor(), sunday, nil)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlotsFullyBooked(t *testing.T) {
	appointments := []entity.Appointment{
		{StartTime: "09:00", Status: entity.AppointmentStatusScheduled},
		{StartTime: "09:15", Status: entity.AppointmentStatusScheduled},
		{StartTime: "09:30", Status: entity.AppointmentStatusScheduled},
		{StartTime: "09:45", Status: entity.AppointmentStatusScheduled},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Empty(t, slots)
}

func TestAvailableSlotsDatabaseTimeFormat(t *testing.T) {
	// Postgres TIME columns scan back with seconds
	appointments := []entity.Appointment{
		{StartTime: "09:15:00", Status: entity.AppointmentStatusScheduled},
	}
	slots := availableSlots(testDoctor(), testMonday, appointments)
	assert.Equal(t, []string{"09:00", "09:30", "09:45"}, slots)
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:15", normalizeClock("09:15:00"))
	assert.Equal(t, "09:15", normalizeClock("09:15"))
	assert.Equal(t, "9:15", normalizeClock("9:15"))
}
