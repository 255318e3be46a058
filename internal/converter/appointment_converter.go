package converter

import (
	"github.com/SamarthX9/hospital-management/internal/delivery/dto"
	"github.com/SamarthX9/hospital-management/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date.Format(entity.DateLayout),
		Time:      entity.NormalizeClock(appointment.Time),
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
	}

	// Include names when the profile relations were preloaded
	if appointment.Patient.User.FullName != "" {
		response.PatientName = appointment.Patient.User.FullName
	}
	if appointment.Doctor.User.FullName != "" {
		response.DoctorName = appointment.Doctor.User.FullName
	}

	if appointment.Treatment != nil {
		response.Treatment = TreatmentToResponse(appointment.Treatment)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
