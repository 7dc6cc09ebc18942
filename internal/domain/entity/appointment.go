package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusCheckedIn  AppointmentStatus = "CHECKED_IN"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
	AppointmentStatusNoShow     AppointmentStatus = "NO_SHOW"
)

// statusTransitions is the workflow edge set. Any (from, to) pair not listed
// here is rejected, including self-transitions and transitions out of
// terminal states.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled:  {AppointmentStatusCheckedIn, AppointmentStatusCancelled, AppointmentStatusNoShow},
	AppointmentStatusCheckedIn:  {AppointmentStatusInProgress, AppointmentStatusCancelled},
	AppointmentStatusInProgress: {AppointmentStatusCompleted},
}

// IsValid reports whether s is a known status value
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCheckedIn, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo reports whether the workflow allows moving from s to target
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.IsValid()
}

// BlocksSlot reports whether an appointment in this status keeps its time
// slot reserved. Cancelled and no-show appointments release the slot back
// into availability; everything else keeps it blocked.
func (s AppointmentStatus) BlocksSlot() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusNoShow
}

// AppointmentType classifies a visit. Two vocabularies exist; the active one
// is picked by SchedulingConfig.TypeSet.
type AppointmentType string

// Visit-based set (appointment list page)
const (
	AppointmentTypeNew       AppointmentType = "NEW"
	AppointmentTypeFollowup  AppointmentType = "FOLLOWUP"
	AppointmentTypeEmergency AppointmentType = "EMERGENCY"
)

// Clinical set (intake form)
const (
	AppointmentTypeConsultation AppointmentType = "CONSULTATION"
	AppointmentTypeFollowUp     AppointmentType = "FOLLOW_UP"
	AppointmentTypeProcedure    AppointmentType = "PROCEDURE"
	AppointmentTypeLab          AppointmentType = "LAB"
	AppointmentTypeRadiology    AppointmentType = "RADIOLOGY"
)

// AppointmentTypeSet returns the allowed type values for a configured set
// name. Unknown names fall back to the visit-based set.
func AppointmentTypeSet(name string) []AppointmentType {
	if name == "clinical" {
		return []AppointmentType{
			AppointmentTypeConsultation, AppointmentTypeFollowUp,
			AppointmentTypeProcedure, AppointmentTypeLab, AppointmentTypeRadiology,
		}
	}
	return []AppointmentType{AppointmentTypeNew, AppointmentTypeFollowup, AppointmentTypeEmergency}
}

// Appointment represents a booked slot on a doctor's day. Appointments are
// never deleted; cancellation is a terminal status.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentNo string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"appointment_no"`
	PatientID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	Date          time.Time         `gorm:"type:date;not null;index:idx_appointments_doctor_date" json:"date"`
	StartTime     string            `gorm:"type:time;not null" json:"start_time"`
	DurationMin   int               `gorm:"not null" json:"duration_min"`
	TokenNo       int               `gorm:"not null" json:"token_no"`
	Type          AppointmentType   `gorm:"type:varchar(20);not null" json:"type"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Reason        string            `gorm:"type:text" json:"reason,omitempty"`
	Notes         string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status.BlocksSlot()
}

// CanCancel reports whether cancellation is currently allowed
func (a *Appointment) CanCancel() bool {
	return a.Status.CanTransitionTo(AppointmentStatusCancelled)
}
