package dto

import "time"

type SaveTreatmentRequest struct {
	Diagnosis    string `json:"diagnosis" validate:"required,max=2000"`
	Prescription string `json:"prescription" validate:"omitempty,max=2000"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}

type TreatmentResponse struct {
	ID            int       `json:"id"`
	AppointmentID int       `json:"appointment_id"`
	Diagnosis     string    `json:"diagnosis"`
	Prescription  string    `json:"prescription,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
