package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Date     string    // Format: YYYY-MM-DD
	DoctorID uuid.UUID // Zero value means no doctor filter
	Status   AppointmentStatus
}
