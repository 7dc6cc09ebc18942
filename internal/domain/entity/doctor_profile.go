package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds doctor master data plus the working-hours configuration
// the slot generator runs against. Times are "HH:MM", WorkingDays is a
// comma-separated list of ISO weekday numbers (1=Monday .. 7=Sunday).
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNo       string          `gorm:"column:license_no;type:varchar(50);uniqueIndex;not null" json:"license_no"`
	Department      string          `gorm:"type:varchar(100);not null;index" json:"department"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	WorkStart       string          `gorm:"type:time;not null;default:'09:00'" json:"work_start"`
	WorkEnd         string          `gorm:"type:time;not null;default:'17:00'" json:"work_end"`
	SlotDurationMin int             `gorm:"not null;default:15" json:"slot_duration_min"`
	WorkingDays     string          `gorm:"type:varchar(20);not null;default:'1,2,3,4,5'" json:"working_days"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// AcceptsAppointments reports whether the doctor is open to new bookings.
// Deactivated accounts keep their history but are closed to scheduling.
// Requires the User relation to be loaded.
func (d *DoctorProfile) AcceptsAppointments() bool {
	return d.User.IsActive
}

// WorksOn reports whether the doctor takes appointments on the given weekday
func (d *DoctorProfile) WorksOn(day time.Weekday) bool {
	iso := int(day)
	if iso == 0 {
		iso = 7 // Sunday
	}
	for _, part := range strings.Split(d.WorkingDays, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if n == iso {
			return true
		}
	}
	return false
}

// CandidateSlots returns every slot start time in the working window, in
// ascending order. The window is half-open: a slot starting at WorkEnd is
// excluded, and a trailing partial slot is dropped rather than rounded up.
// Occupancy is not considered here.
func (d *DoctorProfile) CandidateSlots() []string {
	start, err := parseClock(d.WorkStart)
	if err != nil {
		return nil
	}
	end, err := parseClock(d.WorkEnd)
	if err != nil {
		return nil
	}
	if d.SlotDurationMin <= 0 || !end.After(start) {
		return nil
	}

	step := time.Duration(d.SlotDurationMin) * time.Minute
	slots := make([]string, 0, int(end.Sub(start)/step))
	for t := start; !t.Add(step).After(end); t = t.Add(step) {
		slots = append(slots, t.Format("15:04"))
	}
	return slots
}

func parseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	return t, nil
}
