package dto

import "github.com/google/uuid"

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	Date     string    `json:"date" validate:"required"`
	Time     string    `json:"time" validate:"required"`
	Reason   string    `json:"reason" validate:"omitempty,max=255"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

type AppointmentResponse struct {
	ID          int                `json:"id"`
	PatientID   uuid.UUID          `json:"patient_id"`
	PatientName string             `json:"patient_name,omitempty"`
	DoctorID    uuid.UUID          `json:"doctor_id"`
	DoctorName  string             `json:"doctor_name,omitempty"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Status      string             `json:"status"`
	Reason      string             `json:"reason,omitempty"`
	Treatment   *TreatmentResponse `json:"treatment,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// DoctorAgendaResponse backs the doctor's appointment view: full history,
// status counts and the slice falling within the next seven days.
type DoctorAgendaResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	BookedCount  int                   `json:"booked_count"`
	DoneCount    int                   `json:"done_count"`
	Upcoming     []AppointmentResponse `json:"upcoming"`
}
