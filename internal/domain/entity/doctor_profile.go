package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data.
// Blacklisted doctors are hidden from patient-facing search and
// rejected by the booking flow.
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(150);not null;index" json:"specialization"`
	PhoneNumber     string          `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	DepartmentID    *int            `gorm:"index" json:"department_id,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	IsBlacklisted   bool            `gorm:"not null;default:false;index" json:"is_blacklisted"`

	// Relationships
	User         User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department   *Department          `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Windows      []AvailabilityWindow `gorm:"foreignKey:DoctorID" json:"windows,omitempty"`
	Appointments []Appointment        `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
