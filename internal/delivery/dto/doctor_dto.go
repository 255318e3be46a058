package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email           string          `json:"email" validate:"required,email"`
	Password        string          `json:"password" validate:"required,min=6"`
	FullName        string          `json:"full_name" validate:"required,min=2"`
	Specialization  string          `json:"specialization" validate:"required"`
	PhoneNumber     string          `json:"phone_number" validate:"omitempty,min=6,max=50"`
	DepartmentID    *int            `json:"department_id" validate:"omitempty,min=1"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Email           string           `json:"email" validate:"omitempty,email"`
	FullName        string           `json:"full_name" validate:"omitempty,min=2"`
	Specialization  string           `json:"specialization" validate:"omitempty"`
	PhoneNumber     string           `json:"phone_number" validate:"omitempty,min=6,max=50"`
	DepartmentID    *int             `json:"department_id" validate:"omitempty,min=1"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
}

type DoctorUpdateSelfRequest struct {
	OldPassword    string `json:"old_password" validate:"omitempty"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	FullName       string `json:"full_name" validate:"omitempty,min=2"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=6,max=50"`
	Specialization string `json:"specialization" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID              `json:"id"`
	Email           string                 `json:"email"`
	FullName        string                 `json:"full_name"`
	Specialization  string                 `json:"specialization"`
	PhoneNumber     string                 `json:"phone_number,omitempty"`
	Department      *DepartmentResponse    `json:"department,omitempty"`
	ConsultationFee decimal.Decimal        `json:"consultation_fee"`
	IsBlacklisted   bool                   `json:"is_blacklisted"`
	Windows         []AvailabilityResponse `json:"windows,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// DoctorSearchResponse is the patient-facing search result: matching
// doctors with their availability plus the specialization filter values.
type DoctorSearchResponse struct {
	Doctors         []DoctorResponse `json:"doctors"`
	Specializations []string         `json:"specializations"`
	Total           int              `json:"total"`
}
