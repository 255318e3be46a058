package repository

import (
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	// ExistsForDoctorSlot reports whether any row of any status occupies
	// (doctor, date, time); excludeID skips one appointment (reschedule).
	ExistsForDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, clock string, excludeID int) (bool, error)
	// ExistsForPatientSlot reports whether the patient holds any row of any
	// status at (date, time), regardless of doctor.
	ExistsForPatientSlot(db *gorm.DB, patientID uuid.UUID, date time.Time, clock string) (bool, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// UpdateStatusFromBooked flips status only while the row is still booked.
	// Returns affected rows: 0 means the appointment already left booked.
	UpdateStatusFromBooked(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
