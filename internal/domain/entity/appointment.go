package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusBooked, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is one entry of the ledger: a patient holding a slot
// (doctor, date, time) with a status lifecycle booked -> completed|cancelled.
type Appointment struct {
	ID        int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time      string            `gorm:"type:time;not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'booked';index" json:"status"`
	Reason    string            `gorm:"type:varchar(500)" json:"reason,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor    DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Treatment *Treatment     `gorm:"foreignKey:AppointmentID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsBooked checks if the appointment is still active
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsCompleted checks if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the status change is allowed. Only booked
// appointments may move; completed and cancelled are terminal.
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if !ValidStatus(target) {
		return false
	}
	return a.Status == AppointmentStatusBooked && target != AppointmentStatusBooked
}
