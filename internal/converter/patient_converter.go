package converter

import (
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            profile.UserID,
		Email:         profile.User.Email,
		FullName:      profile.User.FullName,
		Age:           profile.Age,
		Gender:        profile.Gender,
		PhoneNumber:   profile.PhoneNumber,
		Address:       profile.Address,
		IsBlacklisted: profile.IsBlacklisted,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to slice of PatientResponse DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i, profile := range profiles {
		resp := PatientProfileToResponse(&profile)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
