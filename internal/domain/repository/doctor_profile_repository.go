package repository

import (
	"github.com/SamarthX9/hospital-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Search(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error)
	Specializations(db *gorm.DB, excludeBlocked bool) ([]string, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}
