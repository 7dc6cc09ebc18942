package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:            appointment.ID,
		AppointmentNo: appointment.AppointmentNo,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.Date.Format("2006-01-02"),
		StartTime:     appointment.StartTime,
		DurationMin:   appointment.DurationMin,
		TokenNo:       appointment.TokenNo,
		Type:          string(appointment.Type),
		Status:        string(appointment.Status),
		Reason:        appointment.Reason,
		Notes:         appointment.Notes,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}

	// Include patient and doctor info if preloaded
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}
	if appointment.Doctor.UserID != uuid.Nil {
		response.Doctor = DoctorProfileToResponse(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		resp := AppointmentToResponse(&appointments[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
