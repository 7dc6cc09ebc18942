package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	FullName         string `json:"full_name" validate:"required,min=3,max=255"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Email            string `json:"email" validate:"omitempty,email"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"required,oneof=M F"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,max=5"`
	Address          string `json:"address" validate:"omitempty,max=500"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
}

type UpdatePatientRequest struct {
	FullName         string `json:"full_name" validate:"omitempty,min=3,max=255"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Email            string `json:"email" validate:"omitempty,email"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty"`
	Gender           string `json:"gender" validate:"omitempty,oneof=M F"`
	BloodGroup       string `json:"blood_group" validate:"omitempty,max=5"`
	Address          string `json:"address" validate:"omitempty,max=500"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	MRN              string    `json:"mrn"`
	FullName         string    `json:"full_name"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	Email            string    `json:"email,omitempty"`
	DateOfBirth      string    `json:"date_of_birth"`
	Gender           string    `json:"gender"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
}
