package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateDoctorRequest struct {
	FullName        string          `json:"full_name" validate:"omitempty,min=3,max=255"`
	Department      string          `json:"department" validate:"omitempty,max=100"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	WorkStart       string          `json:"work_start" validate:"omitempty"`        // Format: HH:MM
	WorkEnd         string          `json:"work_end" validate:"omitempty"`          // Format: HH:MM
	SlotDurationMin int             `json:"slot_duration_min" validate:"omitempty,min=5,max=120"`
	WorkingDays     string          `json:"working_days" validate:"omitempty"` // e.g. "1,2,3,4,5"
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Department      string          `json:"department"`
	LicenseNo       string          `json:"license_no,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	WorkStart       string          `json:"work_start,omitempty"`
	WorkEnd         string          `json:"work_end,omitempty"`
	SlotDurationMin int             `json:"slot_duration_min,omitempty"`
	WorkingDays     string          `json:"working_days,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
