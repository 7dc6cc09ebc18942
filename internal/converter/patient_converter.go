package converter

import (
	"hospital-management-service/internal/delivery/dto"
	"hospital-management-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.ID,
		MRN:              patient.MRN,
		FullName:         patient.FullName,
		PhoneNumber:      patient.PhoneNumber,
		Email:            patient.Email,
		DateOfBirth:      patient.DateOfBirth.Format("2006-01-02"),
		Gender:           patient.Gender,
		BloodGroup:       patient.BloodGroup,
		Address:          patient.Address,
		EmergencyContact: patient.EmergencyContact,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		resp := PatientToResponse(&patients[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
