package entity

import "time"

// Treatment is the clinical record a doctor writes for an appointment.
// At most one treatment exists per appointment.
type Treatment struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int       `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Diagnosis     string    `gorm:"type:varchar(1000);not null" json:"diagnosis"`
	Prescription  string    `gorm:"type:varchar(1000)" json:"prescription,omitempty"`
	Notes         string    `gorm:"type:varchar(2000)" json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}
