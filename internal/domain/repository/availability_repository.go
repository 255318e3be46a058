package repository

import (
	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, window *entity.AvailabilityWindow) error
	FindByID(db *gorm.DB, id int) (*entity.AvailabilityWindow, error)
	// FirstByDoctorID returns the doctor's oldest window, or nil when the
	// doctor has declared no availability at all.
	FirstByDoctorID(db *gorm.DB, doctorID uuid.UUID) (*entity.AvailabilityWindow, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilityWindow, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
