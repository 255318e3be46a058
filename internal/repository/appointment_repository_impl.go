package repository

import (
	"errors"
	"time"

	"github.com/SamarthX9/hospital-management/internal/domain/entity"
	domainRepo "github.com/SamarthX9/hospital-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").Preload("Treatment").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Treatment").
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Treatment").
		Where("doctor_id = ?", doctorID).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// Conflict checks deliberately look at every status: a cancelled row still
// blocks its slot. See the booking validator tests for the documented
// behavior.
func (r *appointmentRepository) ExistsForDoctorSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, clock string, excludeID int) (bool, error) {
	var count int64
	query := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, clock)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) ExistsForPatientSlot(db *gorm.DB, patientID uuid.UUID, date time.Time, clock string) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("patient_id = ? AND date = ? AND time = ?", patientID, date, clock).
		Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Doctor", "Patient", "Treatment").Save(appointment).Error
}

// UpdateStatusFromBooked atomically moves an appointment out of booked.
// Returns affected rows: 1 = success, 0 = already completed or cancelled
// (prevents double-cancel and cancel-after-complete races).
func (r *appointmentRepository) UpdateStatusFromBooked(db *gorm.DB, id int, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusBooked).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}
