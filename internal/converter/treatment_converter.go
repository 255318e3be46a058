package converter

import (
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
)

// TreatmentToResponse converts a Treatment entity to TreatmentResponse DTO
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:            treatment.ID,
		AppointmentID: treatment.AppointmentID,
		Diagnosis:     treatment.Diagnosis,
		Prescription:  treatment.Prescription,
		Notes:         treatment.Notes,
		UpdatedAt:     treatment.UpdatedAt,
	}
}
