package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO.
// The display name comes from the linked user account when preloaded.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              profile.UserID,
		Name:            profile.User.FullName,
		Department:      profile.Department,
		LicenseNo:       profile.LicenseNo,
		ConsultationFee: profile.ConsultationFee,
		WorkStart:       profile.WorkStart,
		WorkEnd:         profile.WorkEnd,
		SlotDurationMin: profile.SlotDurationMin,
		WorkingDays:     profile.WorkingDays,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to response DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		resp := DoctorProfileToResponse(&profiles[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
