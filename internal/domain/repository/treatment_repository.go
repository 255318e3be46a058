package repository

import (
	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type TreatmentRepository interface {
	Create(db *gorm.DB, treatment *entity.Treatment) error
	FindByAppointmentID(db *gorm.DB, appointmentID int) (*entity.Treatment, error)
	Update(db *gorm.DB, treatment *entity.Treatment) error
}
