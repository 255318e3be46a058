package converter

import (
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              profile.UserID,
		Email:           profile.User.Email,
		FullName:        profile.User.FullName,
		Specialization:  profile.Specialization,
		PhoneNumber:     profile.PhoneNumber,
		ConsultationFee: profile.ConsultationFee,
		IsBlacklisted:   profile.IsBlacklisted,
	}

	if profile.Department != nil {
		response.Department = DepartmentToResponse(profile.Department)
	}

	if len(profile.Windows) > 0 {
		response.Windows = AvailabilityWindowsToResponses(profile.Windows)
	}

	return response
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i, profile := range profiles {
		resp := DoctorProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
