package converter

import (
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
)

// AvailabilityWindowToResponse converts an AvailabilityWindow entity to AvailabilityResponse DTO
func AvailabilityWindowToResponse(window *entity.AvailabilityWindow) *dto.AvailabilityResponse {
	if window == nil {
		return nil
	}

	return &dto.AvailabilityResponse{
		ID:        window.ID,
		DoctorID:  window.DoctorID,
		StartDate: window.StartDate.Format(entity.DateLayout),
		EndDate:   window.EndDate.Format(entity.DateLayout),
		StartTime: entity.NormalizeClock(window.StartTime),
		EndTime:   entity.NormalizeClock(window.EndTime),
	}
}

// AvailabilityWindowsToResponses converts a slice of AvailabilityWindow entities to slice of AvailabilityResponse DTOs
func AvailabilityWindowsToResponses(windows []entity.AvailabilityWindow) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(windows))
	for i, window := range windows {
		resp := AvailabilityWindowToResponse(&window)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
