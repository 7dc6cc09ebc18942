package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime string    `json:"start_time" validate:"required"` // Format: HH:MM
	Type      string    `json:"type" validate:"required"`
	Reason    string    `json:"reason" validate:"omitempty,max=500"`
	Notes     string    `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID            uuid.UUID        `json:"id"`
	AppointmentNo string           `json:"appointment_no"`
	PatientID     uuid.UUID        `json:"patient_id"`
	DoctorID      uuid.UUID        `json:"doctor_id"`
	Date          string           `json:"date"`
	StartTime     string           `json:"start_time"`
	DurationMin   int              `json:"duration_min"`
	TokenNo       int              `json:"token_no"`
	Type          string           `json:"type"`
	Status        string           `json:"status"`
	Reason        string           `json:"reason,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Patient       *PatientResponse `json:"patient,omitempty"`
	Doctor        *DoctorResponse  `json:"doctor,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}

type SlotListResponse struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	Date     string    `json:"date"`
	Slots    []string  `json:"slots"`
}
