package entity

import "github.com/google/uuid"

// PatientProfile represents patient-specific profile data.
// Blacklisted patients are rejected at login, not at booking.
type PatientProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age           int       `gorm:"default:0" json:"age,omitempty"`
	Gender        string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	PhoneNumber   string    `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	Address       string    `gorm:"type:varchar(300)" json:"address,omitempty"`
	IsBlacklisted bool      `gorm:"not null;default:false;index" json:"is_blacklisted"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
