package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RegisterDoctorRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=8"`
	FullName        string          `json:"full_name" validate:"required,min=3,max=255"`
	LicenseNo       string          `json:"license_no" validate:"required,max=50"`
	Department      string          `json:"department" validate:"required,max=100"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	WorkStart       string          `json:"work_start" validate:"omitempty"` // Format: HH:MM, default 09:00
	WorkEnd         string          `json:"work_end" validate:"omitempty"`   // Format: HH:MM, default 17:00
	SlotDurationMin int             `json:"slot_duration_min" validate:"omitempty,min=5,max=120"`
	WorkingDays     string          `json:"working_days" validate:"omitempty"` // default "1,2,3,4,5"
}

type RegisterStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
