package dto

import "github.com/google/uuid"

type UpdatePatientSelfRequest struct {
	OldPassword string `json:"old_password" validate:"omitempty"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	FullName    string `json:"full_name" validate:"omitempty,min=2"`
	Age         *int   `json:"age" validate:"omitempty,min=0,max=150"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=6,max=50"`
	Address     string `json:"address" validate:"omitempty,max=255"`
}

type PatientResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsBlacklisted bool      `json:"is_blacklisted"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
